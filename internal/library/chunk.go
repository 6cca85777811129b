package library

import "strings"

const (
	// chunkTarget is the soft maximum chunk size in runes. Paragraphs
	// are packed until adding another would cross it.
	chunkTarget = 1200
)

// SplitChunks breaks document content into retrieval-sized chunks on
// paragraph boundaries. A single paragraph longer than the target
// becomes its own chunk rather than being split mid-sentence.
func SplitChunks(content string) []string {
	paragraphs := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		text := strings.TrimSpace(current.String())
		if text != "" {
			chunks = append(chunks, text)
		}
		current.Reset()
		currentLen = 0
	}

	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		runes := len([]rune(p))
		if currentLen > 0 && currentLen+runes > chunkTarget {
			flush()
		}
		if currentLen > 0 {
			current.WriteString("\n\n")
			currentLen += 2
		}
		current.WriteString(p)
		currentLen += runes
	}
	flush()

	return chunks
}
