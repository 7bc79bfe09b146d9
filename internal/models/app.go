package models

// AppInfo represents an installed application merged from `scoop list` and
// `scoop status`
type AppInfo struct {
	Name          string  `json:"name"`
	Version       string  `json:"version"`
	Bucket        string  `json:"bucket"`
	Updated       *string `json:"updated,omitempty"`
	Held          bool    `json:"held"`
	HasUpdate     bool    `json:"has_update"`
	LatestVersion *string `json:"latest_version,omitempty"`
}

// VersionInfo is one installable version of an app found across buckets
type VersionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Bucket  string `json:"bucket"`
}

// BucketInfo represents a configured bucket
type BucketInfo struct {
	Name      string  `json:"name"`
	Source    string  `json:"source"`
	Updated   *string `json:"updated,omitempty"`
	Manifests *int    `json:"manifests,omitempty"`
}

// SearchResult is one hit from the search tooling
type SearchResult struct {
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Bucket      string  `json:"bucket"`
	Description *string `json:"description,omitempty"`
}

// RelatedApp is an installed app sharing executables with a target app
type RelatedApp struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Bucket     string   `json:"bucket"`
	SharedBins []string `json:"shared_bins"`
}
