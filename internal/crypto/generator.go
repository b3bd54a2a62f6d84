package crypto

import (
	"errors"
	"fmt"
	"strings"
)

// CharacterClass tags one of the fixed alphabets a password can draw from.
type CharacterClass uint8

// Character classes in their stable order. Coverage characters are drawn in
// this order, which also decides which classes survive when a password is
// shorter than the number of requested classes.
const (
	Uppercase CharacterClass = iota
	Lowercase
	Digit
	Symbol

	numClasses = 4
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+~`|}{[]:;?><,./-="

	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 16
)

var (
	classAlphabets = [numClasses]string{uppercaseChars, lowercaseChars, digitChars, symbolChars}
	classNames     = [numClasses]string{"uppercase", "lowercase", "digit", "symbol"}
)

var (
	ErrLengthTooShort  = errors.New("password length is below the minimum")
	ErrLengthTooLong   = errors.New("password length is above the maximum")
	ErrNoClassSelected = errors.New("at least one character type must be selected")
	ErrUnknownClass    = errors.New("unknown character class")
)

// Alphabet returns the characters belonging to c, or "" for an unknown class.
func (c CharacterClass) Alphabet() string {
	if c >= numClasses {
		return ""
	}
	return classAlphabets[c]
}

func (c CharacterClass) String() string {
	if c >= numClasses {
		return fmt.Sprintf("class(%d)", uint8(c))
	}
	return classNames[c]
}

// ParseClass maps a class name to its tag. "number", "numbers" and "digits"
// are accepted for Digit, plurals for the others.
func ParseClass(name string) (CharacterClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uppercase", "upper":
		return Uppercase, nil
	case "lowercase", "lower":
		return Lowercase, nil
	case "digit", "digits", "number", "numbers":
		return Digit, nil
	case "symbol", "symbols":
		return Symbol, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// ClassSet is a set of character classes.
type ClassSet uint8

// NewClassSet returns the set holding the given classes. Unknown classes are ignored.
func NewClassSet(classes ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// AllClasses is the set of every character class.
func AllClasses() ClassSet {
	return NewClassSet(Uppercase, Lowercase, Digit, Symbol)
}

// With returns s with c added.
func (s ClassSet) With(c CharacterClass) ClassSet {
	if c >= numClasses {
		return s
	}
	return s | 1<<c
}

// Has reports whether c is in s.
func (s ClassSet) Has(c CharacterClass) bool {
	return c < numClasses && s&(1<<c) != 0
}

// Classes lists the members of s in stable class order.
func (s ClassSet) Classes() []CharacterClass {
	var out []CharacterClass
	for c := CharacterClass(0); c < numClasses; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of classes in s.
func (s ClassSet) Len() int {
	return len(s.Classes())
}

// Pool returns the concatenated alphabets of every class in s.
func (s ClassSet) Pool() string {
	var b strings.Builder
	for _, c := range s.Classes() {
		b.WriteString(c.Alphabet())
	}
	return b.String()
}

// GenerationRequest asks for one password of Length characters drawn from Classes.
type GenerationRequest struct {
	Length  int
	Classes ClassSet
}

// GeneratorOptions configures the password generator with one flag per class.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Request converts the flag form into a GenerationRequest.
func (o GeneratorOptions) Request() GenerationRequest {
	var set ClassSet
	if o.Uppercase {
		set = set.With(Uppercase)
	}
	if o.Lowercase {
		set = set.With(Lowercase)
	}
	if o.Numbers {
		set = set.With(Digit)
	}
	if o.Symbols {
		set = set.With(Symbol)
	}
	return GenerationRequest{Length: o.Length, Classes: set}
}

// Generator produces passwords. The zero value is not usable; use NewGenerator.
type Generator struct {
	src       Source
	minLength int
	maxLength int
}

// GeneratorOption customises a Generator.
type GeneratorOption func(*Generator)

// WithSource replaces the default crypto/rand source.
func WithSource(src Source) GeneratorOption {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithLengthBounds overrides the accepted length range. min is clamped to 1
// and max to at least min.
func WithLengthBounds(min, max int) GeneratorOption {
	return func(g *Generator) {
		if min < 1 {
			min = 1
		}
		if max < min {
			max = min
		}
		g.minLength, g.maxLength = min, max
	}
}

// NewGenerator returns a generator using crypto/rand and lengths in [MinLength, MaxLength].
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		src:       CryptoSource{},
		minLength: MinLength,
		maxLength: MaxLength,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Bounds returns the accepted length range.
func (g *Generator) Bounds() (min, max int) {
	return g.minLength, g.maxLength
}

// Generate creates a random password holding at least one character of every
// requested class, as far as the length allows.
func (g *Generator) Generate(req GenerationRequest) (string, error) {
	classes := req.Classes.Classes()
	if len(classes) == 0 {
		return "", ErrNoClassSelected
	}
	if req.Length < g.minLength {
		return "", fmt.Errorf("%w (minimum %d)", ErrLengthTooShort, g.minLength)
	}
	if req.Length > g.maxLength {
		return "", fmt.Errorf("%w (maximum %d)", ErrLengthTooLong, g.maxLength)
	}

	pool := req.Classes.Pool()
	result := make([]byte, req.Length)

	// One coverage character per class, truncated to the first Length classes.
	covered := min(len(classes), req.Length)
	for i := 0; i < covered; i++ {
		ch, err := pick(g.src, classes[i].Alphabet())
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := covered; i < req.Length; i++ {
		ch, err := pick(g.src, pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := shuffle(g.src, result); err != nil {
		return "", err
	}

	return string(result), nil
}

var defaultGenerator = NewGenerator()

// Generate creates a cryptographically secure random password based on the given options.
func Generate(opts GeneratorOptions) (string, error) {
	return defaultGenerator.Generate(opts.Request())
}
