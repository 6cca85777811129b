package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/ragstack/ragview/internal/history"
)

// statsResponse is the JSON response for the stats endpoint.
type statsResponse struct {
	Chunks         int    `json:"chunks"`
	QuestionsAsked int    `json:"questions_asked"`
	Model          string `json:"model"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	asked := 0
	if s.history != nil {
		n, err := s.history.Count(r.Context())
		if err != nil {
			log.Printf("server: counting history: %v", err)
		} else {
			asked = n
		}
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Chunks:         s.store.Count(),
		QuestionsAsked: asked,
		Model:          s.llmModel,
	})
}

// historyResponse is the JSON response for the history endpoint.
type historyResponse struct {
	Entries []history.Entry `json:"entries"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusOK, historyResponse{Entries: []history.Entry{}})
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}

	writeJSON(w, http.StatusOK, historyResponse{Entries: entries})
}
