package vectordb

import "context"

// VectorStore defines the interface for storing and searching document chunks by embeddings.
type VectorStore interface {
	// AddDocuments adds or updates chunks in the store.
	AddDocuments(ctx context.Context, docs []Document) error

	// Search performs a semantic search using the query text.
	Search(ctx context.Context, query string, limit int, filter *SearchFilter) ([]SearchResult, error)

	// GetBySourceFile retrieves all chunks of the given source file.
	GetBySourceFile(ctx context.Context, sourceFile string) ([]Document, error)

	// DeleteBySourceFile removes all chunks of the given source file.
	DeleteBySourceFile(ctx context.Context, sourceFile string) error

	// Persist saves the store's data to the given directory.
	Persist(ctx context.Context, dir string) error

	// Load restores the store's data from the given directory.
	Load(ctx context.Context, dir string) error

	// Count returns the total number of chunks in the store.
	Count() int
}
