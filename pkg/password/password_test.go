package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devswiss/pkg/password"
)

func TestGenerateLength(t *testing.T) {
	t.Parallel()

	for _, length := range []int{1, 8, password.DefaultLength, 64, 256} {
		pw, err := password.Generate(length)
		require.NoError(t, err)
		assert.Len(t, pw, length)
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	t.Parallel()

	for _, length := range []int{0, -1, -100} {
		_, err := password.Generate(length)
		require.ErrorIs(t, err, password.ErrInvalidLength, length)
	}
}

func TestGenerateCharsetExclusions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   []password.Option
		banned string
	}{
		{"no uppercase", []password.Option{password.WithoutUppercase()}, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"no lowercase", []password.Option{password.WithoutLowercase()}, "abcdefghijklmnopqrstuvwxyz"},
		{"no digits", []password.Option{password.WithoutDigits()}, "0123456789"},
		{"no symbols", []password.Option{password.WithoutSymbols()}, "!@#$%^&*()_+-=[]{}|;:,.<>?"},
		{"no ambiguous", []password.Option{password.WithoutAmbiguous()}, "0O1lI"},
		{"custom excluded", []password.Option{password.WithExcluded("aeiouAEIOU")}, "aeiouAEIOU"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Long enough that a banned character would almost surely appear
			// if it were still in the pool.
			pw, err := password.Generate(512, tc.opts...)
			require.NoError(t, err)
			assert.False(t, strings.ContainsAny(pw, tc.banned), "password %q contains banned characters from %q", pw, tc.banned)
		})
	}
}

func TestGenerateDigitsOnly(t *testing.T) {
	t.Parallel()

	pw, err := password.Generate(128,
		password.WithoutUppercase(),
		password.WithoutLowercase(),
		password.WithoutSymbols(),
	)
	require.NoError(t, err)
	for _, c := range pw {
		assert.True(t, strings.ContainsRune("0123456789", c), "unexpected character %q", c)
	}
}

func TestGenerateNoCharacterSets(t *testing.T) {
	t.Parallel()

	_, err := password.Generate(16,
		password.WithoutUppercase(),
		password.WithoutLowercase(),
		password.WithoutDigits(),
		password.WithoutSymbols(),
	)
	require.ErrorIs(t, err, password.ErrNoCharacterSets)
}

func TestGenerateEmptyCharacterPool(t *testing.T) {
	t.Parallel()

	// Digits are the only set left and every digit is excluded.
	_, err := password.Generate(16,
		password.WithoutUppercase(),
		password.WithoutLowercase(),
		password.WithoutSymbols(),
		password.WithExcluded("0123456789"),
	)
	require.ErrorIs(t, err, password.ErrEmptyCharacterPool)
}

func TestGenerateUniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 20 {
		pw, err := password.Generate(32)
		require.NoError(t, err)
		assert.False(t, seen[pw], "duplicate password generated")
		seen[pw] = true
	}
}
