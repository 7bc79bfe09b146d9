// Package validate holds the identifier predicates applied at the API
// boundary before any command text is assembled.
package validate

import "regexp"

var (
	appNamePattern     = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	versionPattern     = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	bucketNamePattern  = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)
	urlPattern         = regexp.MustCompile(`^https?://[^\s]+$`)
	searchQueryPattern = regexp.MustCompile(`^[a-zA-Z0-9_\-\.\s]+$`)
)

func AppName(name string) bool {
	return appNamePattern.MatchString(name)
}

func Version(version string) bool {
	return versionPattern.MatchString(version)
}

func BucketName(name string) bool {
	return bucketNamePattern.MatchString(name)
}

func URL(url string) bool {
	return urlPattern.MatchString(url)
}

func SearchQuery(query string) bool {
	return searchQueryPattern.MatchString(query)
}
