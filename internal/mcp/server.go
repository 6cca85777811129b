package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ragstack/ragview/internal/llm"
	"github.com/ragstack/ragview/internal/vectordb"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes document question-answering tools.
type Server struct {
	store       vectordb.VectorStore
	llmProvider llm.Provider
	llmModel    string
	topK        int
	mcp         *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies. The
// LLM provider may be nil; ask_documents then reports an error while the
// retrieval and extraction tools keep working.
func NewServer(store vectordb.VectorStore, llmProvider llm.Provider, llmModel string, topK int) *Server {
	if topK <= 0 {
		topK = 10
	}

	s := &Server{
		store:       store,
		llmProvider: llmProvider,
		llmModel:    llmModel,
		topK:        topK,
	}

	s.mcp = server.NewMCPServer(
		"ragview",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(askDocumentsTool, s.handleAskDocuments)
	s.mcp.AddTool(searchDocumentsTool, s.handleSearchDocuments)
	s.mcp.AddTool(extractChartsTool, s.handleExtractCharts)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
