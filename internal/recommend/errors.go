package recommend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/knowledge-engine/recommender/internal/provider"
)

// DefaultDocsURL is where users are pointed when a call fails
const DefaultDocsURL = "https://x.ai/api"

// MissingCredential is returned, without any network call, for a blank credential
const MissingCredential = "missing credential"

// ErrorKind classifies why a recommendation failed
type ErrorKind string

const (
	KindNone          ErrorKind = ""
	KindConfiguration ErrorKind = "configuration"
	KindTransport     ErrorKind = "transport"
	KindAuth          ErrorKind = "auth"
	KindProvider      ErrorKind = "provider"
	KindMalformed     ErrorKind = "malformed"
)

// Classify maps a provider error to its kind. Anything that is neither a
// status error nor a malformed body is treated as a transport failure.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	if errors.Is(err, provider.ErrMalformedResponse) {
		return KindMalformed
	}

	var se *provider.StatusError
	if errors.As(err, &se) {
		if se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden {
			return KindAuth
		}
		return KindProvider
	}

	return KindTransport
}

// FormatError builds the display text for a failed call
func FormatError(err error, docsURL string) string {
	if docsURL == "" {
		docsURL = DefaultDocsURL
	}
	return fmt.Sprintf("Error: %s. Check your API key and model availability at %s.", err.Error(), docsURL)
}
