// Package artgen provides implementations of the art-generation capability
// used for AI-styled QR backgrounds, behind a common Generator interface.
//
// Three providers are supported: Stability AI's styled-image endpoint
// (the default), Google Imagen via the genai SDK, and OpenAI image
// generation. All of them return encoded image bytes; decoding and
// compositing stay with the caller.
//
// # Usage
//
//	gen, err := artgen.NewStability(os.Getenv("STABILITY_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	raw, err := gen.Generate(ctx, "a watercolor mountain landscape")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Switching providers:
//
//	func newGenerator(provider, apiKey string) (artgen.Generator, error) {
//		switch provider {
//		case "stability":
//			return artgen.NewStability(apiKey)
//		case "google":
//			return artgen.NewGoogle(ctx, apiKey)
//		case "openai":
//			return artgen.NewOpenAI(apiKey)
//		default:
//			return nil, fmt.Errorf("unsupported provider: %s", provider)
//		}
//	}
//
// No provider retries internally and no timeout is imposed here; callers
// needing bounded latency should pass a custom HTTP client or a context
// with a deadline.
package artgen
