package artgen

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI implements Generator using OpenAI's image generation API.
type OpenAI struct {
	client     openai.Client
	model      string
	httpClient *http.Client
}

// OpenAIOption is a functional option for configuring OpenAI.
type OpenAIOption func(*OpenAI)

// WithOpenAIModel sets the image model to use.
func WithOpenAIModel(model string) OpenAIOption {
	return func(o *OpenAI) {
		if model != "" {
			o.model = model
		}
	}
}

// WithOpenAIHTTPClient sets a custom HTTP client.
func WithOpenAIHTTPClient(client *http.Client) OpenAIOption {
	return func(o *OpenAI) {
		o.httpClient = client
	}
}

// NewOpenAI creates an OpenAI image generator.
func NewOpenAI(apiKey string, opts ...OpenAIOption) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	o := &OpenAI{model: openai.ImageModelDallE3}
	for _, opt := range opts {
		opt(o)
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(o.httpClient))
	}
	o.client = openai.NewClient(clientOpts...)
	return o, nil
}

// Generate requests a single square image for the prompt and returns its
// bytes.
func (o *OpenAI) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := o.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModel(o.model),
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
		Size:           openai.ImageGenerateParamsSize1024x1024,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, err.Error())
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("%w: no image returned", ErrInvalidResponse)
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image payload: %s", ErrInvalidResponse, err.Error())
	}
	return raw, nil
}
