package vision

import "context"

// Engine is a vision-capable generative model client.
type Engine interface {
	Name() string
	GetModel() string
	// Generate sends the prompt together with one image and returns the raw
	// reply envelope. Transport, auth and quota problems surface as errors.
	Generate(ctx context.Context, prompt string, image []byte, mime string) (Response, error)
}
