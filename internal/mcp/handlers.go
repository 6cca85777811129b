package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ragstack/ragview/internal/answer"
	"github.com/ragstack/ragview/internal/llm"
	"github.com/ragstack/ragview/internal/vectordb"
)

// handleAskDocuments retrieves context, asks the LLM, and separates any
// embedded chart blocks from the answer.
func (s *Server) handleAskDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	if s.llmProvider == nil {
		return mcp.NewToolResultError("LLM provider not configured"), nil
	}

	topK := request.GetInt("top_k", s.topK)
	if topK <= 0 {
		topK = s.topK
	}

	results, err := s.store.Search(ctx, question, topK, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	resp, err := s.llmProvider.Complete(ctx, llm.CompletionRequest{
		Model:       s.llmModel,
		Messages:    llm.BuildAskMessages(question, vectordb.FormatContext(results)),
		Temperature: 0.2,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("completion failed: %v", err)), nil
	}

	extraction := answer.Extract(resp.Content)

	var sb strings.Builder
	sb.WriteString(extraction.CleanAnswer)

	if sources := vectordb.SourceFiles(results); len(sources) > 0 {
		sb.WriteString("\n\nSources:\n")
		for _, src := range sources {
			sb.WriteString("- " + src + "\n")
		}
	}

	if len(extraction.Charts) > 0 {
		payload, err := json.MarshalIndent(extraction.Charts, "", "  ")
		if err == nil {
			sb.WriteString("\nChart data:\n")
			sb.Write(payload)
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleSearchDocuments performs semantic search over the document store.
func (s *Server) handleSearchDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	var filter *vectordb.SearchFilter
	if typeStr := request.GetString("file_type", ""); typeStr != "" {
		fileType := vectordb.FileType(typeStr)
		filter = &vectordb.SearchFilter{FileType: &fileType}
	}

	results, err := s.store.Search(ctx, query, limit, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(results) == 0 {
		return mcp.NewToolResultText("No results found. The documents may not be indexed yet. Run `ragview index` to index them."), nil
	}

	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

// handleExtractCharts runs the chart block extractor over arbitrary text.
func (s *Server) handleExtractCharts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}

	extraction := answer.Extract(text)

	out := struct {
		CleanText string                `json:"clean_text"`
		Charts    []answer.ChartPayload `json:"charts"`
	}{
		CleanText: extraction.CleanAnswer,
		Charts:    extraction.Charts,
	}
	if out.Charts == nil {
		out.Charts = []answer.ChartPayload{}
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}

// formatSearchResults converts search results into a rich text format optimized
// for AI agent consumption.
func formatSearchResults(results []vectordb.SearchResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n", len(results)))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))

		if r.Document.Metadata.SourceFile != "" {
			location := r.Document.Metadata.SourceFile
			if r.Document.Metadata.ChunkCount > 1 {
				location += fmt.Sprintf(" (part %d/%d)", r.Document.Metadata.ChunkIndex+1, r.Document.Metadata.ChunkCount)
			}
			sb.WriteString(fmt.Sprintf("File: %s\n", location))
		}
		if r.Document.Metadata.FileType != "" {
			sb.WriteString(fmt.Sprintf("Type: %s\n", r.Document.Metadata.FileType))
		}
		sb.WriteString(fmt.Sprintf("Similarity: %.1f%%\n", r.Similarity*100))

		sb.WriteString("\n")
		sb.WriteString(r.Document.Content)
		sb.WriteString("\n")
	}

	return sb.String()
}
