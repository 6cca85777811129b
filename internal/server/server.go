package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ragstack/ragview/internal/history"
	"github.com/ragstack/ragview/internal/llm"
	"github.com/ragstack/ragview/internal/vectordb"
)

// Config holds server configuration.
type Config struct {
	Port         int
	DocumentsDir string // directory containing the indexed source documents
	TopK         int    // retrieval depth for /api/ask
	AllowAll     bool   // allow all CORS origins (dev mode)
}

// Server is the document viewer web server.
type Server struct {
	cfg         Config
	store       vectordb.VectorStore
	llmProvider llm.Provider
	llmModel    string
	history     *history.Store
	router      chi.Router
	httpServer  *http.Server
}

// New creates a new server with all dependencies. The history store and
// LLM provider may be nil; the affected endpoints degrade gracefully.
func New(cfg Config, store vectordb.VectorStore, llmProvider llm.Provider, llmModel string, historyStore *history.Store) *Server {
	if cfg.TopK <= 0 {
		cfg.TopK = 10
	}

	s := &Server{
		cfg:         cfg,
		store:       store,
		llmProvider: llmProvider,
		llmModel:    llmModel,
		history:     historyStore,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Post("/api/ask", s.handleAsk)
	r.Post("/api/search", s.handleSearch)
	r.Get("/api/stats", s.handleStats)
	r.Get("/api/history", s.handleHistory)
	r.Get("/ws/viewer", s.handleViewerSocket)

	s.registerDocumentRoutes(r)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("server: listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
