package password

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// ambiguousChars are easily confused in common fonts.
	ambiguousChars = "0O1lI"
)

// DefaultLength is used by callers that do not choose a length.
const DefaultLength = 16

type settings struct {
	uppercase        bool
	lowercase        bool
	digits           bool
	symbols          bool
	excludeAmbiguous bool
	excluded         string
}

// Option is a functional option for Generate.
type Option func(*settings)

// WithoutUppercase removes A-Z from the pool.
func WithoutUppercase() Option {
	return func(s *settings) { s.uppercase = false }
}

// WithoutLowercase removes a-z from the pool.
func WithoutLowercase() Option {
	return func(s *settings) { s.lowercase = false }
}

// WithoutDigits removes 0-9 from the pool.
func WithoutDigits() Option {
	return func(s *settings) { s.digits = false }
}

// WithoutSymbols removes punctuation from the pool.
func WithoutSymbols() Option {
	return func(s *settings) { s.symbols = false }
}

// WithoutAmbiguous removes characters that are easily confused (0O1lI).
func WithoutAmbiguous() Option {
	return func(s *settings) { s.excludeAmbiguous = true }
}

// WithExcluded removes the given characters from the pool.
func WithExcluded(chars string) Option {
	return func(s *settings) { s.excluded = chars }
}

// Generate returns a random password of the given length drawn uniformly
// from the configured character pool.
func Generate(length int, opts ...Option) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	s := settings{uppercase: true, lowercase: true, digits: true, symbols: true}
	for _, opt := range opts {
		opt(&s)
	}

	var pool strings.Builder
	if s.uppercase {
		pool.WriteString(uppercaseChars)
	}
	if s.lowercase {
		pool.WriteString(lowercaseChars)
	}
	if s.digits {
		pool.WriteString(digitChars)
	}
	if s.symbols {
		pool.WriteString(symbolChars)
	}
	if pool.Len() == 0 {
		return "", ErrNoCharacterSets
	}

	exclude := s.excluded
	if s.excludeAmbiguous {
		exclude += ambiguousChars
	}
	charset := pool.String()
	if exclude != "" {
		var filtered strings.Builder
		for _, c := range charset {
			if !strings.ContainsRune(exclude, c) {
				filtered.WriteRune(c)
			}
		}
		charset = filtered.String()
	}
	if charset == "" {
		return "", ErrEmptyCharacterPool
	}

	result := make([]byte, length)
	poolSize := big.NewInt(int64(len(charset)))
	for i := range result {
		idx, err := rand.Int(rand.Reader, poolSize)
		if err != nil {
			return "", err
		}
		result[i] = charset[idx.Int64()]
	}
	return string(result), nil
}
