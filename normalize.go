package prefetchcache

import "strings"

// Normalize canonicalizes a virtual path into the cache key form: replace
// every backslash with a forward slash, then strip one leading slash if
// present. Normalization is idempotent: Normalize(Normalize(x)) ==
// Normalize(x) for every x.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "/")
	return p
}
