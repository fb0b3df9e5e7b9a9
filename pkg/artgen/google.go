package artgen

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GoogleImagen3 is the default Imagen model.
const GoogleImagen3 = "imagen-3.0-generate-002"

// Google implements Generator using Google's Imagen models via the Gemini
// API.
type Google struct {
	client *genai.Client
	model  string
}

// GoogleOption is a functional option for configuring Google.
type GoogleOption func(*Google)

// WithGoogleModel sets the Imagen model to use.
func WithGoogleModel(model string) GoogleOption {
	return func(g *Google) {
		if model != "" {
			g.model = model
		}
	}
}

// NewGoogle creates an Imagen generator with API key authentication.
func NewGoogle(ctx context.Context, apiKey string, opts ...GoogleOption) (*Google, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}

	g := &Google{client: client, model: GoogleImagen3}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate requests a single 1:1 PNG for the prompt and returns its bytes.
func (g *Google) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.Models.GenerateImages(ctx, g.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "1:1",
		OutputMIMEType: "image/png",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, err.Error())
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, fmt.Errorf("%w: no image returned", ErrInvalidResponse)
	}
	return resp.GeneratedImages[0].Image.ImageBytes, nil
}
