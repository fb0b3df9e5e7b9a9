package artgen

import "errors"

var (
	// ErrInvalidAPIKey indicates an invalid or missing API key.
	ErrInvalidAPIKey = errors.New("invalid or missing API key")

	// ErrRequestFailed indicates a transport failure or a non-success
	// response from the generation service.
	ErrRequestFailed = errors.New("art generation request failed")

	// ErrInvalidResponse indicates a success response whose payload could
	// not be parsed or decoded.
	ErrInvalidResponse = errors.New("invalid art generation response")
)
