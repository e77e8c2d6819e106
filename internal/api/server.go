package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/recommender/internal/recommend"
)

const maxBodyBytes = 64 << 10

type Server struct {
	Requester *recommend.Requester
	Logger    *logrus.Entry
	Router    chi.Router
}

func NewServer(requester *recommend.Requester, logger *logrus.Entry, corsOrigins []string) *Server {
	s := &Server{
		Requester: requester,
		Logger:    logger,
		Router:    chi.NewRouter(),
	}
	s.middleware(corsOrigins)
	s.routes()
	return s
}

func (s *Server) middleware(corsOrigins []string) {
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	s.Router.Use(s.accessLog)
}

func (s *Server) routes() {
	s.Router.Get("/healthz", s.handleHealth)
	s.Router.Handle("/metrics", promhttp.Handler())

	s.Router.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", s.handleRecommend)
		r.Get("/catalog", s.handleCatalog)
		r.Get("/models", s.handleModels)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		// a request may legitimately wait for the whole provider timeout
		WriteTimeout: writeTimeout + 15*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Infof("Starting API Server on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.Logger.Info("Shutting down API Server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Responses
type ErrorResponse struct {
	Error string `json:"error"`
}

type RecommendRequest struct {
	Preference string `json:"preference"`
	Model      string `json:"model"`
	APIKey     string `json:"api_key"`
}

type RecommendResponse struct {
	OK      bool                `json:"ok"`
	Text    string              `json:"text,omitempty"`
	Error   string              `json:"error,omitempty"`
	Display string              `json:"display"`
	Model   string              `json:"model,omitempty"`
	Kind    recommend.ErrorKind `json:"kind,omitempty"`
}

type ProductView struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Specs    string  `json:"specs"`
}

type CatalogResponse struct {
	Products []ProductView `json:"products"`
	Listing  string        `json:"listing"`
}

type ModelsResponse struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}

// Handlers

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	credential := req.APIKey
	if credential == "" {
		credential = bearerToken(r)
	}

	resp := s.Requester.Recommend(r.Context(), recommend.Request{
		Preference: req.Preference,
		Credential: credential,
		Model:      req.Model,
	})

	jsonResponse(w, statusFor(resp), RecommendResponse{
		OK:      resp.OK(),
		Text:    resp.Text,
		Error:   resp.Error,
		Display: resp.Display(),
		Model:   resp.Model,
		Kind:    resp.Kind,
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	products := s.Requester.Catalog.Products()

	resp := CatalogResponse{
		Products: make([]ProductView, len(products)),
		Listing:  s.Requester.Catalog.Render(),
	}
	for i, p := range products {
		resp.Products[i] = ProductView{
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
			Specs:    p.Specs,
		}
	}

	jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, ModelsResponse{
		Models:  recommend.ModelLabels(),
		Default: recommend.DefaultModelLabel,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusFor(resp recommend.Response) int {
	switch resp.Kind {
	case recommend.KindNone:
		return http.StatusOK
	case recommend.KindConfiguration:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
