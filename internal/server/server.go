// Package server exposes scene generation over HTTP: a static file host for
// the web front end, a generate endpoint that calls the LLM server-side (so
// API keys never reach a browser), and a websocket feed that pushes each
// freshly generated scene description to connected viewers.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"dreamscene/internal/describe"
	"dreamscene/internal/llm"
	"dreamscene/internal/logger"
)

// Server is the generation HTTP server.
type Server struct {
	httpServer *http.Server
	router     *mux.Router
	client     llm.Client
	model      string
	log        *logger.Logger
	hub        *Hub
}

// New returns a server on addr. staticDir is served at / (the web viewer);
// pass "" to disable static serving.
func New(addr, staticDir string, client llm.Client, model string, log *logger.Logger) *Server {
	router := mux.NewRouter()
	s := &Server{
		router: router,
		client: client,
		model:  model,
		log:    log,
		hub:    NewHub(log),
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 90 * time.Second, // generation can take a while
			IdleTimeout:  60 * time.Second,
		},
	}
	router.Use(corsMiddleware)
	router.HandleFunc("/api/generate-scene", s.handleGenerate).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/ws/scenes", s.hub.HandleWebSocket)
	if staticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	}
	return s
}

// Start runs the listener in a goroutine.
func (s *Server) Start() {
	go func() {
		s.log.Infof("HTTP server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Warnf("HTTP server error: %v", err)
		}
	}()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Warnf("HTTP server shutdown error: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model,omitempty"`
}

// handleGenerate runs prompt → LLM → batch validation and returns the raw
// scene description JSON. Per-object sanitizing stays client-side so every
// consumer of the feed applies the same degradation rules; only batch-level
// structural failures are reported here.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "request must be JSON with a non-empty prompt")
		return
	}
	model := req.Model
	if model == "" {
		model = s.model
	}

	reply, err := llm.GenerateScene(r.Context(), s.client, model, req.Prompt)
	if err != nil {
		s.log.Warnf("generation failed: %v", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	raw, err := describe.ExtractJSON(reply)
	if err != nil {
		s.log.Warnf("LLM reply unusable: %v", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if _, err := describe.Decode([]byte(raw)); err != nil {
		s.log.Warnf("LLM reply rejected: %v", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.hub.Broadcast([]byte(raw))
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(raw))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
