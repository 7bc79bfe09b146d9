package scoop

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// ListedApp is one row of `scoop list` output
type ListedApp struct {
	Name    string
	Version string
	Bucket  string
	Updated string
	Held    bool
}

// BucketRow is one row of `scoop bucket list` output
type BucketRow struct {
	Name      string
	Source    string
	Updated   string
	Manifests *int
}

// SearchEntry is one hit from either search tool's output
type SearchEntry struct {
	Name    string
	Version string
	Bucket  string
}

// ParseList parses `scoop list` output. Header, separator and blank lines
// are skipped; a garbled line never fails the whole parse.
func ParseList(output string) []ListedApp {
	apps := []ListedApp{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "Installed") ||
			strings.HasPrefix(line, "Name") || strings.HasPrefix(line, "-") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		app := ListedApp{
			Name:    parts[0],
			Version: parts[1],
			Bucket:  "main",
		}
		if len(parts) > 2 {
			app.Bucket = parts[2]
		}
		if len(parts) > 3 {
			app.Updated = parts[3]
			if len(parts) > 4 {
				app.Updated = parts[3] + " " + parts[4]
			}
		}
		// scoop flags held apps with a literal "Held" marker; its column
		// position varies between versions
		if strings.Contains(line, "Held") {
			app.Held = true
		}
		apps = append(apps, app)
	}
	return apps
}

// ParseStatus parses `scoop status` output into a name -> latest version
// mapping. Warning lines, headers and held rows are skipped. If the output
// repeats a name, the last occurrence wins.
func ParseStatus(output string) map[string]string {
	updates := map[string]string{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.Contains(line, "WARN") || strings.Contains(line, "Name") ||
			strings.HasPrefix(line, "-") || strings.Contains(strings.ToLower(line), "held") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 3 {
			updates[parts[0]] = parts[2]
		}
	}
	return updates
}

// ParseBuckets parses `scoop bucket list` output
func ParseBuckets(output string) []BucketRow {
	buckets := []BucketRow{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "Name") || strings.HasPrefix(line, "-") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		bucket := BucketRow{Name: parts[0], Source: parts[1]}
		if len(parts) >= 4 {
			bucket.Updated = parts[2] + " " + parts[3]
			if len(parts) >= 5 {
				if count, err := strconv.Atoi(parts[4]); err == nil {
					bucket.Manifests = &count
				}
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// groupedHitPattern matches scoop-search result lines: "name (version)"
var groupedHitPattern = regexp.MustCompile(`^(\S+)\s+\(([^)]+)\)`)

// ParseSearchTable parses `scoop search` output (tabular shape:
// name/version/source columns)
func ParseSearchTable(output string) []SearchEntry {
	results := []SearchEntry{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.Contains(line, "Results") ||
			strings.HasPrefix(line, "-") || strings.HasPrefix(line, "Name") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 3 {
			results = append(results, SearchEntry{
				Name:    parts[0],
				Version: parts[1],
				Bucket:  parts[2],
			})
		}
	}
	return results
}

// ParseSearchGrouped parses `scoop-search` output (grouped shape: a bucket
// announcement line like "'main' bucket:" followed by "name (version)"
// lines). The current bucket is carried across lines within one pass.
func ParseSearchGrouped(output string) []SearchEntry {
	results := []SearchEntry{}
	currentBucket := "unknown"
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "'") && strings.Contains(strings.ToLower(line), "bucket") {
			if parts := strings.Split(line, "'"); len(parts) > 1 {
				currentBucket = parts[1]
			} else {
				currentBucket = "unknown"
			}
			continue
		}
		if strings.HasPrefix(line, "Results") {
			continue
		}
		match := groupedHitPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		results = append(results, SearchEntry{
			Name:    match[1],
			Version: match[2],
			Bucket:  currentBucket,
		})
	}
	return results
}

// FilterVersions keeps entries whose name equals the query or begins with
// "query-", case-insensitively. Scoop buckets publish pinned versions under
// names like "git-2.40" next to "git".
func FilterVersions(entries []SearchEntry, query string) []SearchEntry {
	q := strings.ToLower(query)
	filtered := []SearchEntry{}
	for _, entry := range entries {
		name := strings.ToLower(entry.Name)
		if name == q || strings.HasPrefix(name, q+"-") {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
