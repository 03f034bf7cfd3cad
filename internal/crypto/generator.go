package crypto

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen-go/internal/charset"
	"github.com/vaultpass/passgen-go/internal/random"
)

var (
	ErrInvalidLength   = errors.New("invalid password length")
	ErrNoClassSelected = errors.New("at least one character class must be selected")
)

// Generator assembles passwords from a random source.
type Generator struct {
	src random.Source
}

// NewGenerator returns a Generator drawing from src, or from crypto/rand when src is nil.
func NewGenerator(src random.Source) *Generator {
	if src == nil {
		src = random.Crypto()
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a password with the default crypto/rand source.
func Generate(length int, classes ...charset.Class) (string, error) {
	return defaultGenerator.Generate(length, classes...)
}

// Generate returns a password of exactly length characters that contains at
// least one character from every class in classes. Repeated classes count once.
func (g *Generator) Generate(length int, classes ...charset.Class) (string, error) {
	classes = charset.Dedupe(classes)
	if len(classes) == 0 {
		return "", ErrNoClassSelected
	}
	for _, c := range classes {
		if !c.Valid() {
			return "", fmt.Errorf("%w: %s", charset.ErrUnknownClass, c)
		}
	}
	if length < 1 {
		return "", fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidLength, length)
	}
	if length < len(classes) {
		return "", fmt.Errorf("%w: %d is shorter than the %d selected character classes", ErrInvalidLength, length, len(classes))
	}

	result := make([]byte, 0, length)

	// Guarantee at least one character from each selected class.
	for _, c := range classes {
		ch, err := g.src.Choice(c.Chars())
		if err != nil {
			return "", fmt.Errorf("drawing %s character: %w", c, err)
		}
		result = append(result, ch)
	}

	// Fill the remaining positions from the union pool.
	fill, err := g.src.Choices(charset.Union(classes...), length-len(classes))
	if err != nil {
		return "", fmt.Errorf("filling password: %w", err)
	}
	result = append(result, fill...)

	if err := g.src.Shuffle(result); err != nil {
		return "", fmt.Errorf("shuffling password: %w", err)
	}

	return string(result), nil
}
