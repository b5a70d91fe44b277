// Package localize picks display strings out of per-language mappings.
package localize

import (
	"sort"

	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
)

// DefaultLanguages is the built-in fallback order, consulted after the caller's preference list.
var DefaultLanguages = []string{
	"schinese",
	"tchinese",
	"chinese",
	"english",
	"japanese",
	"french",
}

// Resolve returns the best string in m for the given preference order.
//
// Lookup order:
//  1. each language in preferred, in order
//  2. each language in DefaultLanguages, in order
//  3. any remaining entry (the lowest language code, so results are stable)
//
// An empty mapping has no reasonable answer and returns an EMPTY_LOCALIZATION error.
func Resolve(m map[string]string, preferred []string) (string, error) {
	if len(m) == 0 {
		return "", errors.ErrEmptyLocalization("language mapping")
	}

	for _, lang := range preferred {
		if s, ok := m[lang]; ok {
			return s, nil
		}
	}

	for _, lang := range DefaultLanguages {
		if s, ok := m[lang]; ok {
			return s, nil
		}
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return m[keys[0]], nil
}

// Resolver binds a preference list so callers don't thread it through every lookup.
type Resolver struct {
	preferred []string
}

// NewResolver creates a Resolver for the given preference order. The slice is copied.
func NewResolver(preferred []string) *Resolver {
	p := make([]string, len(preferred))
	copy(p, preferred)
	return &Resolver{preferred: p}
}

// Preferred returns a copy of the configured preference order.
func (r *Resolver) Preferred() []string {
	out := make([]string, len(r.preferred))
	copy(out, r.preferred)
	return out
}

// Resolve picks a string from m using the bound preference order.
func (r *Resolver) Resolve(m map[string]string) (string, error) {
	return Resolve(m, r.preferred)
}
