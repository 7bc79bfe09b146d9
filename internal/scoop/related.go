package scoop

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// RelatedApp is an installed app sharing at least one executable name with
// the target app
type RelatedApp struct {
	Name       string
	Version    string
	Bucket     string
	SharedBins []string
}

// FindRelated cross-references installed apps by shared executable names.
// The target itself is excluded by case-insensitive name; an app with an
// empty executable set is never related to anything.
func FindRelated(root, name string, targetManifest map[string]any, installed []InstalledApp) []RelatedApp {
	targetBins := Executables(root, name, targetManifest)
	if len(targetBins) == 0 {
		return []RelatedApp{}
	}

	related := []RelatedApp{}
	for _, app := range installed {
		if strings.EqualFold(app.Name, name) {
			continue
		}
		if app.Manifest == nil {
			continue
		}

		shared := intersect(targetBins, Executables(root, app.Name, app.Manifest))
		if len(shared) == 0 {
			continue
		}
		related = append(related, RelatedApp{
			Name:       app.Name,
			Version:    app.Version,
			Bucket:     app.Bucket,
			SharedBins: shared,
		})
	}
	return related
}

// Executables returns the lower-cased, extension-stripped executable names
// an app provides: the manifest's bin declarations when present, otherwise
// .exe files found under its env_add_path directories.
func Executables(root, name string, manifest map[string]any) map[string]struct{} {
	bins := binNames(manifest["bin"])
	if len(bins) > 0 {
		return bins
	}

	appDir := AppDir(root, name)
	for _, dir := range stringOrList(manifest["env_add_path"]) {
		entries, err := os.ReadDir(filepath.Join(appDir, filepath.FromSlash(dir)))
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(entry.Name()), ".exe") {
				bins[stem(entry.Name())] = struct{}{}
			}
		}
	}
	return bins
}

// binNames extracts executable names from a manifest bin field, which may be
// a string, a list of strings, or a list of [path, alias] pairs (the alias
// wins for the pair form).
func binNames(binField any) map[string]struct{} {
	bins := map[string]struct{}{}
	switch value := binField.(type) {
	case string:
		bins[stem(value)] = struct{}{}
	case []any:
		for _, item := range value {
			switch entry := item.(type) {
			case string:
				bins[stem(entry)] = struct{}{}
			case []any:
				if len(entry) >= 2 {
					if alias, ok := entry[1].(string); ok {
						bins[stem(alias)] = struct{}{}
					}
				}
			}
		}
	}
	return bins
}

func stringOrList(field any) []string {
	switch value := field.(type) {
	case string:
		return []string{value}
	case []any:
		list := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return list
	}
	return nil
}

// stem lower-cases the base filename and strips its extension. Manifest
// paths use backslashes regardless of host platform.
func stem(p string) string {
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	return strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
}

func intersect(a, b map[string]struct{}) []string {
	shared := []string{}
	for name := range a {
		if _, ok := b[name]; ok {
			shared = append(shared, name)
		}
	}
	sort.Strings(shared)
	return shared
}
