package db

import "strings"

// Sanitize drops every character outside [a-zA-Z0-9_-]. The kept characters
// stay in order and keep their case.
func Sanitize(input string) string {
	return strings.Map(func(r rune) rune {
		if isSlugRune(r) {
			return r
		}
		return -1
	}, input)
}

// ValidSlug reports whether s is a non-empty, already sanitized slug.
func ValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isSlugRune(r) {
			return false
		}
	}
	return true
}

func isSlugRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}
