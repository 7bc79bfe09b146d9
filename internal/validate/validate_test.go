package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppName(t *testing.T) {
	valid := []string{"git", "7zip", "git-lfs", "python3.12", "my_tool"}
	for _, name := range valid {
		assert.True(t, AppName(name), name)
	}

	invalid := []string{"", "git lfs", "git;rm", "../escape", "a/b", "name$", "git\n"}
	for _, name := range invalid {
		assert.False(t, AppName(name), name)
	}
}

func TestBucketName(t *testing.T) {
	assert.True(t, BucketName("extras"))
	assert.True(t, BucketName("nirsoft_2"))

	// buckets are stricter than apps: no dots
	assert.False(t, BucketName("my.bucket"))
	assert.False(t, BucketName(""))
	assert.False(t, BucketName("a b"))
}

func TestURL(t *testing.T) {
	assert.True(t, URL("https://github.com/ScoopInstaller/Extras"))
	assert.True(t, URL("http://example.com/bucket.git"))

	assert.False(t, URL("ftp://example.com"))
	assert.False(t, URL("https://bad url"))
	assert.False(t, URL("github.com/no/scheme"))
	assert.False(t, URL(""))
}

func TestSearchQuery(t *testing.T) {
	assert.True(t, SearchQuery("git"))
	assert.True(t, SearchQuery("visual studio code"))
	assert.True(t, SearchQuery("python3.12"))

	assert.False(t, SearchQuery(""))
	assert.False(t, SearchQuery("git;ls"))
	assert.False(t, SearchQuery("q&a"))
}
