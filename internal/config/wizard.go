package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .ragview.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to ragview! Let's configure your viewer.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Chat model.
	modelPrompt := promptui.Select{
		Label: "Select answer model",
		Items: []string{"gpt-4o-mini", "gpt-4o", "gpt-4.1-mini"},
	}
	_, model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}
	cfg.Model = model

	// 2. Documents directory.
	docsPrompt := promptui.Prompt{
		Label:   "Documents directory",
		Default: cfg.DocumentsDir,
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("documents dir: %w", err)
	}
	cfg.DocumentsDir = docsDir

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Save(".ragview.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Saved .ragview.yml. Run `ragview index` to index your documents,")
	fmt.Println("then `ragview serve` to start the viewer.")

	return cfg, nil
}
