package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/knowledge-engine/recommender/internal/api"
	"github.com/knowledge-engine/recommender/internal/catalog"
	"github.com/knowledge-engine/recommender/internal/provider"
	"github.com/knowledge-engine/recommender/internal/recommend"
)

// Mocks

type MockLLMProvider struct {
	mock.Mock
}

func (m *MockLLMProvider) Generate(ctx context.Context, c provider.Completion) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

func (m *MockLLMProvider) Name() string {
	return "mock"
}

func setupServer() (*api.Server, *MockLLMProvider) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	entry := logger.WithField("test", "api")

	mockLLM := new(MockLLMProvider)
	requester := recommend.NewRequester(catalog.Default(), mockLLM, "", entry)

	return api.NewServer(requester, entry, nil), mockLLM
}

func TestHandleHealth(t *testing.T) {
	server, _ := setupServer()

	req, _ := http.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestHandleRecommend(t *testing.T) {
	server, mockLLM := setupServer()

	mockLLM.On("Generate", mock.Anything, mock.MatchedBy(func(c provider.Completion) bool {
		return c.APIKey == "xai-key" && c.Model == "grok-4" && strings.Contains(c.Prompt, "User request: phone under $500")
	})).Return("  Samsung Galaxy A54  ", nil)

	body := strings.NewReader(`{"preference": "phone under $500", "model": "grok-4 (flagship)", "api_key": "xai-key"}`)
	req, _ := http.NewRequest("POST", "/api/v1/recommendations", body)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.RecommendResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "Samsung Galaxy A54", resp.Text)
	assert.Equal(t, "Samsung Galaxy A54", resp.Display)
	assert.Equal(t, "grok-4", resp.Model)
	mockLLM.AssertExpectations(t)
}

func TestHandleRecommendBearerCredential(t *testing.T) {
	server, mockLLM := setupServer()

	mockLLM.On("Generate", mock.Anything, mock.MatchedBy(func(c provider.Completion) bool {
		return c.APIKey == "header-key"
	})).Return("ok", nil)

	req, _ := http.NewRequest("POST", "/api/v1/recommendations", strings.NewReader(`{"preference": "laptop"}`))
	req.Header.Set("Authorization", "Bearer header-key")
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockLLM.AssertExpectations(t)
}

func TestHandleRecommendMissingCredential(t *testing.T) {
	server, mockLLM := setupServer()

	req, _ := http.NewRequest("POST", "/api/v1/recommendations", strings.NewReader(`{"preference": "laptop", "api_key": "  "}`))
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp api.RecommendResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, recommend.MissingCredential, resp.Display)
	assert.Equal(t, recommend.KindConfiguration, resp.Kind)
	mockLLM.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestHandleRecommendProviderFailure(t *testing.T) {
	server, mockLLM := setupServer()

	mockLLM.On("Generate", mock.Anything, mock.Anything).
		Return("", &provider.StatusError{Provider: "openai", StatusCode: 429, Message: "rate limited"})

	req, _ := http.NewRequest("POST", "/api/v1/recommendations", strings.NewReader(`{"preference": "laptop", "api_key": "k"}`))
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)

	var resp api.RecommendResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.True(t, strings.HasPrefix(resp.Display, "Error: openai returned status 429: rate limited."))
	assert.Equal(t, recommend.KindProvider, resp.Kind)
}

func TestHandleRecommendTransportFailure(t *testing.T) {
	server, mockLLM := setupServer()

	mockLLM.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("network unreachable"))

	req, _ := http.NewRequest("POST", "/api/v1/recommendations", strings.NewReader(`{"preference": "laptop", "api_key": "k"}`))
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "network unreachable")
}

func TestHandleRecommendInvalidJSON(t *testing.T) {
	server, _ := setupServer()

	req, _ := http.NewRequest("POST", "/api/v1/recommendations", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid JSON", resp.Error)
}

func TestHandleRecommendMethodNotAllowed(t *testing.T) {
	server, _ := setupServer()

	req, _ := http.NewRequest("GET", "/api/v1/recommendations", nil)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHandleCatalog(t *testing.T) {
	server, _ := setupServer()

	req, _ := http.NewRequest("GET", "/api/v1/catalog", nil)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.CatalogResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 13)
	assert.Equal(t, "iPhone 15 Pro", resp.Products[0].Name)
	assert.Equal(t, float64(999), resp.Products[0].Price)
	assert.Equal(t, catalog.Default().Render(), resp.Listing)
}

func TestHandleModels(t *testing.T) {
	server, _ := setupServer()

	req, _ := http.NewRequest("GET", "/api/v1/models", nil)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.ModelsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, recommend.ModelLabels(), resp.Models)
	assert.Equal(t, recommend.DefaultModelLabel, resp.Default)
}

func TestMetricsEndpoint(t *testing.T) {
	server, _ := setupServer()

	// generate at least one counted request first
	warm, _ := http.NewRequest("GET", "/healthz", nil)
	server.Router.ServeHTTP(httptest.NewRecorder(), warm)

	req, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "recommender_http_requests_total")
}
