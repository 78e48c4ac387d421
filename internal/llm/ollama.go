package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"
)

const defaultOllamaHost = "http://localhost:11434"

// OllamaGenerator runs the prompt against a local Ollama server.
type OllamaGenerator struct {
	client *api.Client
}

func NewOllamaGenerator(hostURL string) (*OllamaGenerator, error) {
	if hostURL == "" {
		hostURL = defaultOllamaHost
	}
	parsed, err := url.Parse(hostURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama host %q: %w", hostURL, err)
	}
	return &OllamaGenerator{client: api.NewClient(parsed, http.DefaultClient)}, nil
}

func (o *OllamaGenerator) Generate(ctx context.Context, model, instruction string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  model,
		Prompt: instruction,
		Stream: &stream,
	}

	var text string
	err := o.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		text += resp.Response
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("Ollama API error: %w", err)
	}

	return text, nil
}
