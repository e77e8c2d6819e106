package provider

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

// DefaultOpenAIURL is the xAI OpenAI-compatible chat completions endpoint
const DefaultOpenAIURL = "https://api.x.ai/v1/chat/completions"

// OpenAIProvider talks to any OpenAI-compatible chat completions endpoint
type OpenAIProvider struct {
	BaseURL string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewOpenAIProvider returns a provider posting to baseURL. A nil client gets
// one with DefaultTimeout.
func NewOpenAIProvider(baseURL string, client *http.Client) *OpenAIProvider {
	if baseURL == "" {
		baseURL = DefaultOpenAIURL
	}
	return &OpenAIProvider{
		BaseURL: baseURL,
		client:  newHTTPClient(client),
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Generate(ctx context.Context, c Completion) (string, error) {
	payload := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "user", Content: c.Prompt},
		},
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
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

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned from %s", ErrMalformedResponse, p.Name())
	}

	content := result.Choices[0].Message.Content
	if content == nil {
		return "", fmt.Errorf("%w: no message content returned from %s", ErrMalformedResponse, p.Name())
	}

	return *content, nil
}
