package server

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/ragstack/ragview/internal/answer"
	"github.com/ragstack/ragview/internal/charts"
	"github.com/ragstack/ragview/internal/history"
	"github.com/ragstack/ragview/internal/library"
	"github.com/ragstack/ragview/internal/llm"
	"github.com/ragstack/ragview/internal/render"
	"github.com/ragstack/ragview/internal/vectordb"
)

// askRequest is the JSON body for the /api/ask endpoint.
type askRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k,omitempty"`
}

// askData is the payload of a successful /api/ask response. GalleryHTML
// is the server-rendered gallery fragment for the related images; the
// page inserts it as-is.
type askData struct {
	Query       string          `json:"query"`
	AnswerHTML  template.HTML   `json:"answer_html"`
	Charts      []charts.Config `json:"charts"`
	Sources     []string        `json:"sources"`
	Images      []render.Image  `json:"images"`
	GalleryHTML template.HTML   `json:"gallery_html"`
}

// askResponse is the JSON envelope for the /api/ask endpoint.
type askResponse struct {
	Success bool     `json:"success"`
	Data    *askData `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if s.llmProvider == nil {
		writeJSON(w, http.StatusServiceUnavailable, askResponse{Error: "LLM provider not configured"})
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, askResponse{Error: "invalid request body"})
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		writeJSON(w, http.StatusBadRequest, askResponse{Error: "question is required"})
		return
	}

	topK := req.TopK
	if topK <= 0 || topK > 20 {
		topK = s.cfg.TopK
	}

	ctx := r.Context()
	results, err := s.store.Search(ctx, question, topK, nil)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, askResponse{Error: "search failed: " + err.Error()})
		return
	}

	resp, err := s.llmProvider.Complete(ctx, llm.CompletionRequest{
		Model:       s.llmModel,
		Messages:    llm.BuildAskMessages(question, vectordb.FormatContext(results)),
		Temperature: 0.2,
	})
	if err != nil {
		writeJSON(w, http.StatusBadGateway, askResponse{Error: "completion failed: " + err.Error()})
		return
	}

	extraction := answer.Extract(resp.Content)

	answerHTML, err := render.Markdown(extraction.CleanAnswer)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, askResponse{Error: "rendering failed: " + err.Error()})
		return
	}

	chartConfigs := make([]charts.Config, len(extraction.Charts))
	for i, payload := range extraction.Charts {
		chartConfigs[i] = charts.Configure(payload)
	}

	sources := vectordb.SourceFiles(results)
	images := library.CollectRelated(s.cfg.DocumentsDir, sources, 0)

	if s.history != nil {
		_, err := s.history.Save(ctx, history.Entry{
			Question:     question,
			Answer:       extraction.CleanAnswer,
			Model:        resp.Model,
			Sources:      sources,
			ChartCount:   len(extraction.Charts),
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
		})
		if err != nil {
			log.Printf("server: saving ask history: %v", err)
		}
	}

	if sources == nil {
		sources = []string{}
	}
	if images == nil {
		images = []render.Image{}
	}

	writeJSON(w, http.StatusOK, askResponse{
		Success: true,
		Data: &askData{
			Query:       question,
			AnswerHTML:  answerHTML,
			Charts:      chartConfigs,
			Sources:     sources,
			Images:      images,
			GalleryHTML: render.Gallery(images),
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
