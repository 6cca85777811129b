package config

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Model:          "gpt-4o-mini",
		EmbeddingModel: "text-embedding-3-small",
		Port:           5001,
		DataDir:        ".ragview",
		DocumentsDir:   "documents",
		Include:        []string{"**/*.md", "**/*.txt"},
		TopK:           10,
	}
}
