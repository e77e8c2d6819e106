package provider

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

// DefaultOllamaURL is the generate endpoint of a local Ollama daemon
const DefaultOllamaURL = "http://localhost:11434/api/generate"

// OllamaProvider uses Ollama's native generate API, mainly for local runs
type OllamaProvider struct {
	BaseURL string
	client  *http.Client
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

func NewOllamaProvider(baseURL string, client *http.Client) *OllamaProvider {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	return &OllamaProvider{
		BaseURL: baseURL,
		client:  newHTTPClient(client),
	}
}

func (p *OllamaProvider) Name() string {
	return "ollama"
}

func (p *OllamaProvider) Generate(ctx context.Context, c Completion) (string, error) {
	payload := ollamaRequest{
		Model:  c.Model,
		Prompt: c.Prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: c.Temperature,
			NumPredict:  c.MaxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	// Only sent when Ollama sits behind an authenticating proxy.
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", statusError(p.Name(), resp)
	}

	var result struct {
		Response *string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if result.Response == nil {
		return "", fmt.Errorf("%w: no response field returned from %s", ErrMalformedResponse, p.Name())
	}

	return *result.Response, nil
}
