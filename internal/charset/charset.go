// Package charset defines the character classes a password can draw from.
package charset

import (
	"errors"
	"fmt"
	"strings"
)

// Class is one of the fixed character classes. The zero value is not a valid class.
type Class int

const (
	Lowercase Class = iota + 1
	Uppercase
	Digits
	Special
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var ErrUnknownClass = errors.New("unknown character class")

// All returns every class in canonical order.
func All() []Class {
	return []Class{Lowercase, Uppercase, Digits, Special}
}

// Chars returns the members of the class. Unknown classes have no members.
func (c Class) Chars() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digits:
		return digitChars
	case Special:
		return specialChars
	}
	return ""
}

// String returns the canonical name of the class.
func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lower"
	case Uppercase:
		return "upper"
	case Digits:
		return "digits"
	case Special:
		return "special"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Description is the human readable label used in prompts.
func (c Class) Description() string {
	switch c {
	case Lowercase:
		return "lowercase letters"
	case Uppercase:
		return "uppercase letters"
	case Digits:
		return "digits"
	case Special:
		return "special characters"
	}
	return c.String()
}

// Valid reports whether c is one of the defined classes.
func (c Class) Valid() bool {
	return c >= Lowercase && c <= Special
}

// Contains reports whether b is a member of the class.
func (c Class) Contains(b byte) bool {
	return strings.IndexByte(c.Chars(), b) >= 0
}

// ParseClass resolves a class by name. Matching is case-insensitive and
// accepts a few common aliases.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lower", "lowercase":
		return Lowercase, nil
	case "upper", "uppercase":
		return Uppercase, nil
	case "digit", "digits", "number", "numbers":
		return Digits, nil
	case "special", "symbol", "symbols", "punctuation":
		return Special, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// ParseClasses resolves every name, returning the first failure.
func ParseClasses(names []string) ([]Class, error) {
	classes := make([]Class, 0, len(names))
	for _, name := range names {
		c, err := ParseClass(name)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return Dedupe(classes), nil
}

// Dedupe drops repeated classes, keeping first-seen order.
func Dedupe(classes []Class) []Class {
	seen := make(map[Class]bool, len(classes))
	out := make([]Class, 0, len(classes))
	for _, c := range classes {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Union returns the deduplicated characters of all given classes.
func Union(classes ...Class) string {
	var seen [256]bool
	var sb strings.Builder
	for _, c := range classes {
		chars := c.Chars()
		for i := 0; i < len(chars); i++ {
			if seen[chars[i]] {
				continue
			}
			seen[chars[i]] = true
			sb.WriteByte(chars[i])
		}
	}
	return sb.String()
}

// Names returns the canonical names of classes.
func Names(classes []Class) []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}
