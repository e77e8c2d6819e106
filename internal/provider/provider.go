package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// DefaultTimeout bounds a single completion round trip
const DefaultTimeout = 45 * time.Second

// maxErrorBody caps how much of a failed response is read for its message
const maxErrorBody = 64 << 10

// LLMProvider defines the interface for AI model integration
type LLMProvider interface {
	Generate(ctx context.Context, c Completion) (string, error)
	Name() string
}

// Completion is a single-prompt generation call. The credential travels
// with the call and is never kept by a provider.
type Completion struct {
	Model       string
	Prompt      string
	APIKey      string
	Temperature float64
	MaxTokens   int
}

// ErrMalformedResponse marks a 2xx reply whose body could not be used
var ErrMalformedResponse = errors.New("malformed completion response")

// StatusError is returned when the provider answers with a non-2xx status
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s returned status: %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}

func newHTTPClient(client *http.Client) *http.Client {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: DefaultTimeout}
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// statusError reads the provider's error payload, which is either
// {"error": {"message": "..."}} or {"error": "..."}.
func statusError(name string, resp *http.Response) *StatusError {
	se := &StatusError{Provider: name, StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return se
	}

	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Error) == 0 {
		return se
	}

	var detailed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload.Error, &detailed); err == nil && detailed.Message != "" {
		se.Message = detailed.Message
		return se
	}

	var plain string
	if err := json.Unmarshal(payload.Error, &plain); err == nil {
		se.Message = plain
	}
	return se
}
