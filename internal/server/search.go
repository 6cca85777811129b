package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ragstack/ragview/internal/vectordb"
)

// searchRequest is the JSON body for the /api/search endpoint.
type searchRequest struct {
	Query      string `json:"query"`
	Limit      int    `json:"limit,omitempty"`
	SourceFile string `json:"source_file,omitempty"` // restrict results to one document
}

// searchResponseItem is one result in the /api/search response.
type searchResponseItem struct {
	SourceFile string  `json:"source_file"`
	FileType   string  `json:"file_type"`
	Similarity float64 `json:"similarity"`
	Content    string  `json:"content"`
	ChunkIndex int     `json:"chunk_index"`
}

// searchResponse is the JSON response for the /api/search endpoint.
type searchResponse struct {
	Results []searchResponseItem `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > 20 {
		limit = 8
	}

	results, err := s.store.Search(r.Context(), query, limit, sourceFilter(req.SourceFile))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "search failed: " + err.Error()})
		return
	}

	items := make([]searchResponseItem, len(results))
	for i, res := range results {
		content := res.Document.Content
		if len(content) > 500 {
			content = content[:500] + "..."
		}
		items[i] = searchResponseItem{
			SourceFile: res.Document.Metadata.SourceFile,
			FileType:   string(res.Document.Metadata.FileType),
			Similarity: float64(res.Similarity),
			Content:    content,
			ChunkIndex: res.Document.Metadata.ChunkIndex,
		}
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: items})
}

func sourceFilter(sourceFile string) *vectordb.SearchFilter {
	if sourceFile == "" {
		return nil
	}
	return &vectordb.SearchFilter{SourceFile: &sourceFile}
}
