package strength

import (
	"fmt"
	"regexp"
	"strings"
)

// Dictionary holds the denylist of known-weak passwords and the anchored
// patterns that describe common password shapes. A Dictionary is immutable
// after construction and may be shared between goroutines.
type Dictionary struct {
	denylist map[string]struct{}
	patterns []*regexp.Regexp
}

// NewDictionary builds a Dictionary from denylist words and pattern sources.
// Words are lowercased and trimmed; empty words are skipped. Patterns are
// compiled as given and are matched against the lowercased password.
func NewDictionary(words []string, patterns []string) (*Dictionary, error) {
	d := &Dictionary{
		denylist: make(map[string]struct{}, len(words)),
		patterns: make([]*regexp.Regexp, 0, len(patterns)),
	}

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		d.denylist[w] = struct{}{}
	}

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, p, err)
		}
		d.patterns = append(d.patterns, re)
	}

	return d, nil
}

// MustNewDictionary is like [NewDictionary] but panics on an invalid pattern.
// It is meant for package-level tables built from constants.
func MustNewDictionary(words []string, patterns []string) *Dictionary {
	d, err := NewDictionary(words, patterns)
	if err != nil {
		panic(err)
	}
	return d
}

// DefaultDictionary returns the built-in dictionary shared by the package-level
// evaluation functions.
func DefaultDictionary() *Dictionary {
	return defaultDictionary
}

// Extend returns a new Dictionary holding the receiver's entries plus the
// given words and patterns. The receiver is left unchanged.
func (d *Dictionary) Extend(words []string, patterns []string) (*Dictionary, error) {
	extra, err := NewDictionary(words, patterns)
	if err != nil {
		return nil, err
	}

	for w := range d.denylist {
		extra.denylist[w] = struct{}{}
	}
	extra.patterns = append(append([]*regexp.Regexp(nil), d.patterns...), extra.patterns...)

	return extra, nil
}

// IsCommon reports whether the lowercased password is on the denylist.
func (d *Dictionary) IsCommon(lowered string) bool {
	_, ok := d.denylist[lowered]
	return ok
}

// MatchesPattern reports whether the lowercased password matches any pattern.
func (d *Dictionary) MatchesPattern(lowered string) bool {
	for _, re := range d.patterns {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}

// Size returns the number of denylist entries and patterns.
func (d *Dictionary) Size() (words, patterns int) {
	return len(d.denylist), len(d.patterns)
}

var commonPasswords = []string{
	"password", "password1", "password123", "passw0rd", "p@ssw0rd", "p@ssword",
	"123456", "1234567", "12345678", "123456789", "1234567890", "12345", "1234",
	"qwerty", "qwerty123", "qwertyuiop", "abc123", "111111", "000000", "123123",
	"654321", "666666", "121212", "112233", "letmein", "welcome", "welcome1",
	"welcome123", "monkey", "dragon", "master", "login", "admin", "admin123",
	"administrator", "root", "toor", "iloveyou", "sunshine", "princess", "football",
	"baseball", "shadow", "superman", "batman", "trustno1", "starwars", "hello",
	"hello123", "freedom", "whatever", "qazwsx", "1q2w3e4r", "1qaz2wsx", "zaq12wsx",
	"asdfgh", "asdfghjkl", "zxcvbnm", "michael", "jennifer", "secret", "changeme",
	"default", "guest", "test", "test123", "akwaaba", "akwaabahomes",
}

var commonPatterns = []string{
	`^12345`,
	`^54321`,
	`^(?:123)+$`,
	`^(?:12)+$`,
	`^qwert`,
	`^asdfg`,
	`^zxcvb`,
	`^1q2w3e`,
	`^1qaz2wsx`,
	`^qazwsx`,
	`^password`,
	`^passw0rd`,
	`^p@ssw[o0]rd`,
	`^admin`,
	`^root`,
	`^letmein`,
	`^welcome`,
	`^iloveyou`,
	`^abc123`,
	`^monkey`,
	`^dragon`,
	`^changeme`,
	`^(?:0+|1+|2+|3+|4+|5+|6+|7+|8+|9+)$`,
	`^[0-9]+$`,
	`^(?:19|20)[0-9]{2}$`,
	`^(?:abc)+$`,
}

var defaultDictionary = MustNewDictionary(commonPasswords, commonPatterns)
