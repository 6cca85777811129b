package vectordb

import "time"

// FileType categorizes the source file a chunk was taken from.
type FileType string

const (
	FileTypeMarkdown FileType = "markdown"
	FileTypeText     FileType = "text"
)

// Document represents one chunk of a source file stored for retrieval.
type Document struct {
	ID       string
	Content  string
	Metadata DocumentMetadata
}

// DocumentMetadata holds structured information about a chunk.
type DocumentMetadata struct {
	SourceFile  string // path relative to the documents root
	FileType    FileType
	ChunkIndex  int
	ChunkCount  int
	ContentHash string
	LastUpdated time.Time
}

// SearchResult pairs a document with its similarity score.
type SearchResult struct {
	Document   Document
	Similarity float32
}

// SearchFilter allows narrowing search results by metadata fields.
type SearchFilter struct {
	SourceFile *string
	FileType   *FileType
}
