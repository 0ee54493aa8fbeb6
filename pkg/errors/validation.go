package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches 3, 4, 6 or 8 digit hex colors without the leading '#'.
var hexColorRegex = regexp.MustCompile(`^([A-Fa-f0-9]{8}|[A-Fa-f0-9]{6}|[A-Fa-f0-9]{4}|[A-Fa-f0-9]{3})$`)

// IsHexColor reports whether s is a bare hex color such as "2f80ed".
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// ValidateColor validates a color override.
// Accepted forms are a bare hex color or a gradient "angle,hex,hex[,hex...]".
// An empty value is valid and means "use the theme color".
func ValidateColor(name, value string) error {
	if value == "" || IsHexColor(value) {
		return nil
	}
	if IsGradient(value) {
		return nil
	}
	return New(ErrCodeInvalidColor, "%s must be a hex color, got %q", name, value)
}

// IsGradient reports whether value is a gradient specification: an angle
// followed by at least two hex colors, comma-separated.
func IsGradient(value string) bool {
	parts := strings.Split(value, ",")
	if len(parts) < 3 {
		return false
	}
	for _, p := range parts[1:] {
		if !IsHexColor(p) {
			return false
		}
	}
	return true
}

// ValidateNumberFormat validates the number_format option.
func ValidateNumberFormat(format string) error {
	switch strings.ToLower(format) {
	case "", "short", "long":
		return nil
	}
	return New(ErrCodeInvalidNumberFormat, "number_format must be 'short' or 'long', got %q", format)
}

// ValidateRankIcon validates the rank_icon option.
func ValidateRankIcon(icon string) error {
	switch icon {
	case "", "default", "github", "percentile":
		return nil
	}
	return New(ErrCodeInvalidRankIcon, "rank_icon must be one of default, github, percentile; got %q", icon)
}

// usernameRegex matches GitHub-style login names.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,38})$`)

// ValidateUsername validates a username before it is used as a lookup key.
// It rejects names that could be used for path traversal when stats are
// read from files.
func ValidateUsername(name string) error {
	if name == "" {
		return New(ErrCodeInvalidUsername, "username cannot be empty")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidUsername, "username contains invalid control characters")
		}
	}
	if !usernameRegex.MatchString(name) {
		return New(ErrCodeInvalidUsername, "invalid username: %q", name)
	}
	return nil
}
