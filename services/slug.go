package services

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const maxSlugAttempts = 6

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name, collapses every non-alphanumeric run to a
// single dash and trims the edges. Names that slugify to nothing fall back
// to "mentor".
func Slugify(name string) string {
	s := slugCleaner.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "mentor"
	}
	return s
}

// SlugProber reports whether a candidate slug is already taken.
type SlugProber interface {
	SlugExists(slug string) (bool, error)
}

// AllocateSlug finds a free slug for the name: the bare base first, then a
// bounded number of random-suffix candidates. The probe count is capped so a
// pathological collision run fails fast with ErrSlugExhausted instead of
// hammering the store.
func AllocateSlug(p SlugProber, name string) (string, error) {
	base := Slugify(name)

	candidate := base
	for i := 0; i < maxSlugAttempts; i++ {
		taken, err := p.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + uuid.NewString()[:4]
	}
	return "", ErrSlugExhausted
}
