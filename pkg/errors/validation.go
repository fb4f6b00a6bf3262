package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateSymbolName validates a symbol name for safety and correctness.
// Symbol names end up in file paths, URLs and cache keys, so names that
// could be used for path traversal or injection are rejected.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., /, \)
//   - Maximum length of 128 characters
func ValidateSymbolName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSymbol, "symbol name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidSymbol, "symbol name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSymbol, "symbol name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidSymbol, "symbol name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

var (
	hexColorRe   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	namedColorRe = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)
	funcColorRe  = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\([0-9.,%\s]+\)$`)
)

// ValidateColor checks that s looks like a CSS color a caller may pass as a
// stroke or fill: a hex color, a named color (including "none"), or an
// rgb()/hsl() function. Colors arriving over HTTP or the command line are
// interpolated into SVG attributes, so anything else is rejected.
func ValidateColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if hexColorRe.MatchString(s) || namedColorRe.MatchString(s) || funcColorRe.MatchString(s) {
		return nil
	}
	return New(ErrCodeInvalidColor, "invalid color: %q", s)
}
