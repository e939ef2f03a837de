package storage

import "strings"

const publicPathPrefix = "/storage/v1/object/public/"

// ResolveKey extracts the bucket-relative object key from a public storage
// URL. It reports false when the URL does not carry the public prefix for the
// given bucket, including empty or malformed input; it never panics.
func ResolveKey(rawURL, bucket string) (string, bool) {
	if rawURL == "" || bucket == "" {
		return "", false
	}

	marker := publicPathPrefix + bucket + "/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return "", false
	}

	key := strings.TrimSpace(rawURL[idx+len(marker):])
	if key == "" {
		return "", false
	}

	return key, true
}
