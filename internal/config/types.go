package config

// Config is the top-level ragview configuration, corresponding to
// .ragview.yml.
type Config struct {
	Model          string   `yaml:"model" koanf:"model"`
	EmbeddingModel string   `yaml:"embedding_model" koanf:"embedding_model"`
	Port           int      `yaml:"port" koanf:"port"`
	DataDir        string   `yaml:"data_dir" koanf:"data_dir"`
	DocumentsDir   string   `yaml:"documents_dir" koanf:"documents_dir"`
	Include        []string `yaml:"include" koanf:"include"`
	TopK           int      `yaml:"top_k" koanf:"top_k"`
	AllowAllCORS   bool     `yaml:"allow_all_cors" koanf:"allow_all_cors"`
}
