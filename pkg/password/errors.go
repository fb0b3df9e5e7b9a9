package password

import "errors"

var (
	// ErrInvalidLength indicates a non-positive password length.
	ErrInvalidLength = errors.New("password length must be positive")

	// ErrNoCharacterSets indicates every character set was disabled.
	ErrNoCharacterSets = errors.New("at least one character set must be enabled")

	// ErrEmptyCharacterPool indicates the exclusions removed every
	// candidate character.
	ErrEmptyCharacterPool = errors.New("no characters available after applying exclusions")
)
