// Package icon resolves achievement icon references to files on disk.
package icon

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Resolver looks icons up through an ordered list of candidate locations.
// It never fails: an icon that cannot be found resolves to its reference unchanged,
// which callers display as a broken image.
type Resolver struct {
	fs afero.Fs
}

// NewResolver creates a Resolver over fs. A nil fs means the host filesystem.
func NewResolver(fs afero.Fs) *Resolver {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Resolver{fs: fs}
}

// Candidates returns the locations Resolve checks, in order:
//  1. iconRef as given (absolute, or relative to the working directory)
//  2. baseDir/iconRef
//  3. baseDir/fallbackKey, where fallbackKey is the achievement name
//
// Empty references are skipped so the base directory itself is never a candidate.
func Candidates(iconRef, baseDir, fallbackKey string) []string {
	out := make([]string, 0, 3)
	if iconRef != "" {
		out = append(out, iconRef, filepath.Join(baseDir, iconRef))
	}
	if fallbackKey != "" {
		out = append(out, filepath.Join(baseDir, fallbackKey))
	}
	return out
}

// Resolve returns the absolute path of the first candidate that exists,
// or iconRef verbatim when none do.
func (r *Resolver) Resolve(iconRef, baseDir, fallbackKey string) string {
	for _, candidate := range Candidates(iconRef, baseDir, fallbackKey) {
		if !r.exists(candidate) {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return candidate
		}
		return abs
	}
	return iconRef
}

func (r *Resolver) exists(path string) bool {
	_, err := r.fs.Stat(path)
	return err == nil
}
