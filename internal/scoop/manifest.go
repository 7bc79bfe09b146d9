package scoop

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DiscoverRoot locates the scoop installation directory: scoop's own config
// file first, then the SCOOP environment variable, then ~/scoop.
func DiscoverRoot() string {
	if home, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(home, ".config", "scoop", "config.json")
		if data, err := os.ReadFile(configPath); err == nil {
			var cfg struct {
				RootPath string `json:"root_path"`
			}
			if err := json.Unmarshal(data, &cfg); err == nil && cfg.RootPath != "" {
				return cfg.RootPath
			}
		}
	}

	if env := os.Getenv("SCOOP"); env != "" {
		return env
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "scoop"
	}
	return filepath.Join(home, "scoop")
}

// AppDir returns the "current" directory of an installed app
func AppDir(root, name string) string {
	return filepath.Join(root, "apps", name, "current")
}

// ReadManifest reads manifest.json for an installed app. Absence or a parse
// failure is non-fatal and reported as a missing manifest.
func ReadManifest(root, name string) (map[string]any, bool) {
	return readJSONFile(filepath.Join(AppDir(root, name), "manifest.json"))
}

// ReadInstallInfo reads install.json, which records the bucket the app was
// installed from
func ReadInstallInfo(root, name string) (map[string]any, bool) {
	return readJSONFile(filepath.Join(AppDir(root, name), "install.json"))
}

func readJSONFile(path string) (map[string]any, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}

// InstalledApp is an app discovered by scanning the apps directory
type InstalledApp struct {
	Name     string
	Version  string
	Bucket   string
	Manifest map[string]any
}

// ScanInstalled lists installed apps by reading each app's manifest directly
// from the filesystem. Apps without a current/manifest.json are skipped.
func ScanInstalled(root string) []InstalledApp {
	apps := []InstalledApp{}
	entries, err := os.ReadDir(filepath.Join(root, "apps"))
	if err != nil {
		return apps
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, err := os.Stat(AppDir(root, name)); err != nil {
			continue
		}

		manifest, ok := ReadManifest(root, name)
		if !ok {
			continue
		}

		app := InstalledApp{
			Name:     name,
			Version:  "unknown",
			Bucket:   "unknown",
			Manifest: manifest,
		}
		if version, ok := manifest["version"].(string); ok {
			app.Version = version
		}
		if info, ok := ReadInstallInfo(root, name); ok {
			if bucket, ok := info["bucket"].(string); ok {
				app.Bucket = bucket
			}
		}
		apps = append(apps, app)
	}
	return apps
}
