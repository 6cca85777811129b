package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ragstack/ragview/internal/config"
	"github.com/ragstack/ragview/internal/embeddings"
	"github.com/ragstack/ragview/internal/llm"
	"github.com/ragstack/ragview/internal/vectordb"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `ragview init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// createEmbedder creates the embedder used for both indexing and querying.
func createEmbedder(cfg *config.Config) (embeddings.Embedder, error) {
	apiKey := config.APIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}
	return embeddings.NewOpenAIEmbedder(apiKey, cfg.EmbeddingModel), nil
}

// createProvider creates the LLM provider for answering questions.
func createProvider(cfg *config.Config) (llm.Provider, error) {
	apiKey := config.APIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}
	return llm.NewOpenAIProvider(apiKey, cfg.Model), nil
}

// vectorDir returns where the vector store is persisted.
func vectorDir(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, "vectordb")
}

// openStore creates the vector store and loads the persisted index if
// one exists. A missing index is reported but not fatal.
func openStore(cfg *config.Config, embedder embeddings.Embedder) (vectordb.VectorStore, error) {
	store, err := vectordb.NewChromemStore(embedder)
	if err != nil {
		return nil, fmt.Errorf("creating vector store: %w", err)
	}

	dir := vectorDir(cfg)
	if err := store.Load(context.Background(), dir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load vector store from %s: %v\n", dir, err)
		fmt.Fprintf(os.Stderr, "Search results will be empty. Run `ragview index` first.\n")
	}
	return store, nil
}
