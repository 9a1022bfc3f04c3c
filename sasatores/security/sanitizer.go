package security

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaskValue replaces the value of every redacted key=value pair.
const MaskValue = "********"

// ErrNoSensitiveKeys is returned when a sanitizer is built without any
// usable key names.
var ErrNoSensitiveKeys = errors.New("sanitizer requires at least one sensitive key")

// Sanitizer redacts the values of sensitive key=value pairs inside
// free-form text.
//
// Matching is case-insensitive and delimiter-bounded: a key matches only
// as the whole left-hand side of a token delimited by start-of-string,
// '&', whitespace, or ','. Keys that merely contain a sensitive name
// inside a longer word ("usertoken", "tokens") are left alone. Values are
// maximal runs of characters excluding '&', whitespace, and ','.
type Sanitizer struct {
	pattern *regexp.Regexp
}

// NewSanitizer builds a sanitizer for the given key names. Keys match
// literally (regex metacharacters are escaped) and case-insensitively;
// empty key names are ignored. Returns ErrNoSensitiveKeys when no usable
// key remains.
func NewSanitizer(keys ...string) (*Sanitizer, error) {
	quoted := make([]string, 0, len(keys))

	for _, key := range keys {
		if key == "" {
			continue
		}

		quoted = append(quoted, regexp.QuoteMeta(key))
	}

	if len(quoted) == 0 {
		return nil, ErrNoSensitiveKeys
	}

	// RE2 has no lookbehind, so the leading delimiter is captured and
	// re-emitted by the replacement template.
	pattern, err := regexp.Compile(`(?i)(^|[&\s,])(` + strings.Join(quoted, "|") + `)=[^&\s,]*`)
	if err != nil {
		return nil, fmt.Errorf("compile sensitive pattern: %w", err)
	}

	return &Sanitizer{pattern: pattern}, nil
}

// Sanitize returns details with every sensitive key=value pair rewritten
// to key=********. The key keeps its exact original text and casing; all
// other content is preserved byte-for-byte. Empty input is returned
// unchanged.
func (s *Sanitizer) Sanitize(details string) string {
	if details == "" {
		return details
	}

	return s.pattern.ReplaceAllString(details, `${1}${2}=`+MaskValue)
}

// defaultSanitizer covers the DefaultSensitiveKeys set. The key list is
// static, so construction cannot fail at runtime.
var defaultSanitizer = func() *Sanitizer {
	s, err := NewSanitizer(defaultSensitiveKeys...)
	if err != nil {
		panic(err)
	}

	return s
}()

// Sanitize redacts details using the default sensitive key set.
func Sanitize(details string) string {
	return defaultSanitizer.Sanitize(details)
}
