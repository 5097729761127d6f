// Package walkdemo provides a tiny directory-walk helper for the
// prefetchdemo command, adapted from the teacher's concurrent
// fs.WalkDir-style enumerator (internal/walk) down to a synchronous
// single-purpose sampler: collect the first N regular files in a
// directory, in traversal order, to feed Manager.Request for a demo run.
package walkdemo

import (
	"io/fs"
	"os"
	"path/filepath"
)

// SampleFiles walks root and returns up to n paths to regular files,
// relative to root, in traversal order.
func SampleFiles(root string, n int) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if len(out) >= n {
			return filepath.SkipAll
		}
		if d.Type().IsRegular() {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil && err != filepath.SkipAll {
		return nil, err
	}
	if len(out) == 0 {
		return nil, &os.PathError{Op: "walk", Path: root, Err: fs.ErrNotExist}
	}
	return out, nil
}
