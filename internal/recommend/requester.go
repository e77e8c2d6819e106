// Package recommend turns a free-text preference into a product
// recommendation by prompting a completion provider with the catalog.
package recommend

import (
	"context"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/recommender/internal/catalog"
	"github.com/knowledge-engine/recommender/internal/metrics"
	"github.com/knowledge-engine/recommender/internal/provider"
)

// Sampling settings sent with every completion
const (
	Temperature = 0.7
	MaxTokens   = 800
)

// Request is a single recommendation call
type Request struct {
	Preference string
	Credential string
	Model      string
}

// Response carries either the model's reply or a display-ready error
type Response struct {
	Text  string    `json:"text,omitempty"`
	Error string    `json:"error,omitempty"`
	Model string    `json:"model,omitempty"`
	Kind  ErrorKind `json:"kind,omitempty"`
}

// OK reports whether the call produced a reply
func (r Response) OK() bool {
	return r.Error == ""
}

// Display returns the text a UI should render for either outcome
func (r Response) Display() string {
	if r.OK() {
		return r.Text
	}
	return r.Error
}

// Requester builds prompts from the catalog and sends them to the provider.
// It keeps no per-call state and may be used from many goroutines.
type Requester struct {
	Catalog *catalog.Catalog
	LLM     provider.LLMProvider
	DocsURL string
	Logger  *logrus.Entry
}

// NewRequester wires a Requester. A nil logger logs to the logrus standard logger.
func NewRequester(c *catalog.Catalog, llm provider.LLMProvider, docsURL string, logger *logrus.Entry) *Requester {
	if docsURL == "" {
		docsURL = DefaultDocsURL
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Requester{
		Catalog: c,
		LLM:     llm,
		DocsURL: docsURL,
		Logger:  logger,
	}
}

// Recommend runs one recommendation. It never returns an error: failures
// come back as Response.Error so callers can show them as-is.
func (r *Requester) Recommend(ctx context.Context, req Request) Response {
	log := r.Logger.WithField("request_id", requestID(ctx))

	if strings.TrimSpace(req.Credential) == "" {
		metrics.RecommendationsTotal.WithLabelValues(string(KindConfiguration)).Inc()
		log.WithField("kind", KindConfiguration).Warn("Recommendation rejected: missing credential")
		return Response{Error: MissingCredential, Kind: KindConfiguration}
	}

	modelID, known := ResolveModel(req.Model)
	if !known {
		metrics.ModelFallbacks.Inc()
		log.WithFields(logrus.Fields{
			"label": req.Model,
			"model": modelID,
		}).Warn("Unrecognized model label, using default model")
	}
	log = log.WithFields(logrus.Fields{"model": modelID, "provider": r.LLM.Name()})

	prompt := provider.BuildPrompt(r.Catalog.Render(), req.Preference)

	start := time.Now()
	text, err := r.LLM.Generate(ctx, provider.Completion{
		Model:       modelID,
		Prompt:      prompt,
		APIKey:      req.Credential,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	elapsed := time.Since(start)
	metrics.CompletionDuration.Observe(elapsed.Seconds())

	if err != nil {
		kind := Classify(err)
		metrics.RecommendationsTotal.WithLabelValues(string(kind)).Inc()
		log.WithError(err).WithFields(logrus.Fields{
			"kind":     kind,
			"duration": elapsed,
		}).Error("Recommendation failed")
		return Response{Error: FormatError(err, r.DocsURL), Model: modelID, Kind: kind}
	}

	metrics.RecommendationsTotal.WithLabelValues("ok").Inc()
	log.WithField("duration", elapsed).Info("Recommendation completed")
	return Response{Text: strings.TrimSpace(text), Model: modelID}
}

// requestID reuses the id chi assigned to the HTTP request, if any
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
