package scoop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	output := `Installed apps:

Name    Version   Source   Updated
---     -------   ------   -------
git     2.44.0    main     2024-01-02 10:00
7zip    23.01     main     2024-01-01
jq      1.7       extras   2024-02-10 09:30 Held
old-tool 0.1
`
	apps := ParseList(output)
	require.Len(t, apps, 4)

	assert.Equal(t, "git", apps[0].Name)
	assert.Equal(t, "2.44.0", apps[0].Version)
	assert.Equal(t, "main", apps[0].Bucket)
	assert.Equal(t, "2024-01-02 10:00", apps[0].Updated)
	assert.False(t, apps[0].Held)

	assert.Equal(t, "2024-01-01", apps[1].Updated)

	assert.True(t, apps[2].Held)
	assert.Equal(t, "extras", apps[2].Bucket)

	// no bucket column defaults to main
	assert.Equal(t, "main", apps[3].Bucket)
	assert.Empty(t, apps[3].Updated)
}

func TestParseListHeldAnyColumn(t *testing.T) {
	apps := ParseList("foo 1.0 main Held")
	require.Len(t, apps, 1)
	assert.True(t, apps[0].Held)
}

func TestParseListTotal(t *testing.T) {
	for _, input := range []string{"", "Name Version", "----", "\n\n\n", "garbage", "x"} {
		assert.NotNil(t, ParseList(input), "input %q", input)
	}
}

func TestParseStatus(t *testing.T) {
	output := `WARN  Scoop out of date.
Name   Installed Version  Latest Version
----   -----------------  --------------
git    2.43.0             2.44.0
jq     1.6                1.7 (held)
7zip   22.0               23.01
`
	updates := ParseStatus(output)
	assert.Equal(t, map[string]string{
		"git":  "2.44.0",
		"7zip": "23.01",
	}, updates)
}

func TestParseStatusLastOccurrenceWins(t *testing.T) {
	output := "foo 1.0 2.0\nfoo 1.0 3.0\n"
	updates := ParseStatus(output)
	assert.Equal(t, map[string]string{"foo": "3.0"}, updates)
}

func TestParseStatusTotal(t *testing.T) {
	for _, input := range []string{"", "WARN everything broken", "---- ---- ----", "one two"} {
		assert.Empty(t, ParseStatus(input), "input %q", input)
	}
}

func TestParseBuckets(t *testing.T) {
	output := `Name    Source                                     Updated            Manifests
----    ------                                     -------            ---------
main    https://github.com/ScoopInstaller/Main     2024-01-05 12:00   1300
extras  https://github.com/ScoopInstaller/Extras   2024-01-04 11:30   notanumber
local   C:\buckets\local
`
	buckets := ParseBuckets(output)
	require.Len(t, buckets, 3)

	assert.Equal(t, "main", buckets[0].Name)
	assert.Equal(t, "https://github.com/ScoopInstaller/Main", buckets[0].Source)
	assert.Equal(t, "2024-01-05 12:00", buckets[0].Updated)
	require.NotNil(t, buckets[0].Manifests)
	assert.Equal(t, 1300, *buckets[0].Manifests)

	// non-numeric manifest column is ignored
	assert.Nil(t, buckets[1].Manifests)

	assert.Empty(t, buckets[2].Updated)
	assert.Nil(t, buckets[2].Manifests)
}

func TestParseSearchTable(t *testing.T) {
	output := `Results from local buckets...

Name      Version  Source
----      -------  ------
git       2.44.0   main
git-lfs   3.4.1    main
`
	results := ParseSearchTable(output)
	require.Len(t, results, 2)
	assert.Equal(t, SearchEntry{Name: "git", Version: "2.44.0", Bucket: "main"}, results[0])
	assert.Equal(t, SearchEntry{Name: "git-lfs", Version: "3.4.1", Bucket: "main"}, results[1])
}

func TestParseSearchGrouped(t *testing.T) {
	output := `'main' bucket:
    git (2.44.0)
    git-lfs (3.4.1)

'extras' bucket:
    gitkraken (9.12.0)
`
	results := ParseSearchGrouped(output)
	require.Len(t, results, 3)
	assert.Equal(t, "main", results[0].Bucket)
	assert.Equal(t, "git", results[0].Name)
	assert.Equal(t, "2.44.0", results[0].Version)
	assert.Equal(t, "extras", results[2].Bucket)
	assert.Equal(t, "gitkraken", results[2].Name)
}

func TestParseSearchGroupedBucketResetsPerCall(t *testing.T) {
	// a hit before any bucket announcement falls under "unknown"
	results := ParseSearchGrouped("stray (1.0)\n")
	require.Len(t, results, 1)
	assert.Equal(t, "unknown", results[0].Bucket)
}

func TestParsersNeverPanicOnGarbage(t *testing.T) {
	garbage := "\x00\xff ( ( ] } 'quote\nResults\n---\nName\n"
	assert.NotPanics(t, func() {
		ParseList(garbage)
		ParseStatus(garbage)
		ParseBuckets(garbage)
		ParseSearchTable(garbage)
		ParseSearchGrouped(garbage)
	})
}

func TestFilterVersions(t *testing.T) {
	entries := []SearchEntry{
		{Name: "Git", Version: "2.44.0", Bucket: "main"},
		{Name: "git-lfs", Version: "3.4.1", Bucket: "main"},
		{Name: "gitkraken", Version: "9.12.0", Bucket: "extras"},
		{Name: "digit", Version: "1.0", Bucket: "main"},
	}
	filtered := FilterVersions(entries, "git")
	require.Len(t, filtered, 2)
	assert.Equal(t, "Git", filtered[0].Name)
	assert.Equal(t, "git-lfs", filtered[1].Name)
}
