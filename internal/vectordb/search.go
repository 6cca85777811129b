package vectordb

import (
	"fmt"
	"strings"
)

// FormatContext renders search results as numbered excerpts for the LLM prompt.
func FormatContext(results []SearchResult) string {
	if len(results) == 0 {
		return "No matching excerpts."
	}

	var sb strings.Builder
	for i, r := range results {
		sb.WriteString(fmt.Sprintf("[%d] %s", i+1, r.Document.Metadata.SourceFile))
		if r.Document.Metadata.ChunkCount > 1 {
			sb.WriteString(fmt.Sprintf(" (part %d/%d)", r.Document.Metadata.ChunkIndex+1, r.Document.Metadata.ChunkCount))
		}
		sb.WriteString("\n")
		sb.WriteString(r.Document.Content)
		sb.WriteString("\n\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// SourceFiles returns the distinct source files of the results, in rank order.
func SourceFiles(results []SearchResult) []string {
	seen := make(map[string]bool, len(results))
	var files []string
	for _, r := range results {
		f := r.Document.Metadata.SourceFile
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		files = append(files, f)
	}
	return files
}
