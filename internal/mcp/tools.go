package mcp

import "github.com/mark3labs/mcp-go/mcp"

// askDocumentsTool defines the ask_documents MCP tool.
var askDocumentsTool = mcp.NewTool("ask_documents",
	mcp.WithDescription("Ask a natural-language question over the indexed documents. Returns a grounded answer plus any chart data the answer embeds."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("The question to answer"),
	),
	mcp.WithNumber("top_k",
		mcp.Description("Number of document chunks to retrieve (default 10)"),
	),
)

// searchDocumentsTool defines the search_documents MCP tool.
var searchDocumentsTool = mcp.NewTool("search_documents",
	mcp.WithDescription("Search the indexed documents semantically. Returns matching chunks with their source files."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
	mcp.WithString("file_type",
		mcp.Description("Filter results by source file type"),
		mcp.Enum("markdown", "text"),
	),
)

// extractChartsTool defines the extract_charts MCP tool.
var extractChartsTool = mcp.NewTool("extract_charts",
	mcp.WithDescription("Extract embedded chart data blocks from answer text. Returns the cleaned text and the parsed chart payloads."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Text that may contain embedded chart data blocks"),
	),
)
