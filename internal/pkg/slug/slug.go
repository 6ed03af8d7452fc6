// Package slug builds URL-safe identifiers from titles and resolves
// collisions with a numeric suffix (almora, almora-1, almora-2, ...).
package slug

import (
	"context"
	"errors"
	"strconv"

	gosimple "github.com/gosimple/slug"
)

// MaxAttempts bounds the suffix search.
const MaxAttempts = 1000

var (
	ErrEmpty     = errors.New("cannot derive slug from empty title")
	ErrExhausted = errors.New("no free slug found")
)

// ExistsFunc reports whether candidate is already used.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Make converts a title into a lowercase hyphenated slug.
func Make(title string) string {
	return gosimple.Make(title)
}

// Unique returns the first of base, base-1, base-2, ... for which exists
// reports false.
func Unique(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := Make(title)
	if base == "" {
		return "", ErrEmpty
	}

	candidate := base
	for i := 1; i <= MaxAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
	return "", ErrExhausted
}
