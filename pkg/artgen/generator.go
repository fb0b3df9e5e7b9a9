package artgen

import "context"

// Generator produces an encoded background image for a text prompt.
type Generator interface {
	// Generate issues a single generation request and returns the encoded
	// image bytes. It blocks for the duration of the request and is never
	// retried internally.
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
