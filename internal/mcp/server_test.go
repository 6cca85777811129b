package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ragstack/ragview/internal/llm"
	"github.com/ragstack/ragview/internal/vectordb"
)

// mockStore implements vectordb.VectorStore for testing.
type mockStore struct {
	docs []vectordb.Document
}

func (m *mockStore) AddDocuments(_ context.Context, docs []vectordb.Document) error {
	m.docs = append(m.docs, docs...)
	return nil
}

func (m *mockStore) Search(_ context.Context, query string, limit int, filter *vectordb.SearchFilter) ([]vectordb.SearchResult, error) {
	var results []vectordb.SearchResult
	for _, doc := range m.docs {
		if filter != nil && filter.FileType != nil && doc.Metadata.FileType != *filter.FileType {
			continue
		}
		results = append(results, vectordb.SearchResult{
			Document:   doc,
			Similarity: 0.95,
		})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

func (m *mockStore) GetBySourceFile(_ context.Context, sourceFile string) ([]vectordb.Document, error) {
	var results []vectordb.Document
	for _, doc := range m.docs {
		if doc.Metadata.SourceFile == sourceFile {
			results = append(results, doc)
		}
	}
	return results, nil
}

func (m *mockStore) DeleteBySourceFile(_ context.Context, _ string) error { return nil }
func (m *mockStore) Persist(_ context.Context, _ string) error            { return nil }
func (m *mockStore) Load(_ context.Context, _ string) error               { return nil }
func (m *mockStore) Count() int                                           { return len(m.docs) }

// mockProvider implements llm.Provider with a canned answer.
type mockProvider struct {
	content string
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Content: m.content, Model: "mock-model"}, nil
}

func testDocs() []vectordb.Document {
	return []vectordb.Document{
		{
			ID:      "1",
			Content: "Totals rose from 30 to 45 between March and April.",
			Metadata: vectordb.DocumentMetadata{
				SourceFile: "reports/q1.md",
				FileType:   vectordb.FileTypeMarkdown,
				ChunkIndex: 0, ChunkCount: 2,
			},
		},
		{
			ID:      "2",
			Content: "Plain notes about staffing.",
			Metadata: vectordb.DocumentMetadata{
				SourceFile: "notes/staff.txt",
				FileType:   vectordb.FileTypeText,
				ChunkCount: 1,
			},
		},
	}
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"ask_documents", askDocumentsTool, "ask_documents"},
		{"search_documents", searchDocumentsTool, "search_documents"},
		{"extract_charts", extractChartsTool, "extract_charts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	store := &mockStore{}
	srv := NewServer(store, nil, "gpt-4o-mini", 0)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.store != store {
		t.Error("store not set correctly")
	}
	if srv.topK != 10 {
		t.Errorf("topK = %d, want default 10", srv.topK)
	}
}

func TestHandleSearchDocuments(t *testing.T) {
	store := &mockStore{docs: testDocs()}
	srv := NewServer(store, nil, "gpt-4o-mini", 10)
	ctx := context.Background()

	t.Run("basic search", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"query": "totals",
		}

		result, err := srv.handleSearchDocuments(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("search with file type filter", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"query":     "notes",
			"file_type": "text",
		}

		result, err := srv.handleSearchDocuments(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("missing query", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleSearchDocuments(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing query")
		}
	})

	t.Run("empty store", func(t *testing.T) {
		emptySrv := NewServer(&mockStore{}, nil, "gpt-4o-mini", 10)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"query": "anything",
		}

		result, err := emptySrv.handleSearchDocuments(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Error("empty results should not be an error")
		}
	})
}

func TestHandleAskDocuments(t *testing.T) {
	store := &mockStore{docs: testDocs()}
	provider := &mockProvider{content: "Totals rose (reports/q1.md).\n\n" +
		`<!--CHART_DATA {"type": "bar", "labels": ["Mar", "Apr"], "data": [30, 45]} CHART_DATA-->`}
	srv := NewServer(store, provider, "gpt-4o-mini", 10)
	ctx := context.Background()

	t.Run("answer with chart", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"question": "how did totals change?",
		}

		result, err := srv.handleAskDocuments(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}

		text := resultText(t, result)
		if strings.Contains(text, "CHART_DATA") {
			t.Error("chart markers leaked into tool output")
		}
		if !strings.Contains(text, "Chart data:") {
			t.Error("extracted chart payload missing from output")
		}
		if !strings.Contains(text, "reports/q1.md") {
			t.Error("sources missing from output")
		}
	})

	t.Run("missing question", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleAskDocuments(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing question")
		}
	})

	t.Run("nil provider", func(t *testing.T) {
		noLLM := NewServer(store, nil, "gpt-4o-mini", 10)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"question": "anything",
		}

		result, err := noLLM.handleAskDocuments(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error with nil provider")
		}
	})
}

func TestHandleExtractCharts(t *testing.T) {
	srv := NewServer(&mockStore{}, nil, "gpt-4o-mini", 10)
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"text": `before <!--CHART_DATA {"type": "pie", "labels": ["a"], "data": [1]} CHART_DATA--> after`,
	}

	result, err := srv.handleExtractCharts(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}

	var out struct {
		CleanText string `json:"clean_text"`
		Charts    []struct {
			Kind string `json:"type"`
		} `json:"charts"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if out.CleanText != "before  after" {
		t.Errorf("clean text = %q", out.CleanText)
	}
	if len(out.Charts) != 1 || out.Charts[0].Kind != "pie" {
		t.Errorf("unexpected charts: %+v", out.Charts)
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("unexpected content type: %T", result.Content[0])
	}
	return text.Text
}
