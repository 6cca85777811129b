package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ragstack/ragview/internal/answer"
	"github.com/ragstack/ragview/internal/charts"
	"github.com/ragstack/ragview/internal/render"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render <answer-file>",
	Short: "Render an answer file to HTML and SVG charts offline",
	Long: `Reads raw answer text (for example a saved LLM response), strips the
embedded chart data blocks, renders the remaining markdown to HTML, and
draws each chart as an SVG file. Useful for inspecting answers without
running the server.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading answer file: %w", err)
		}

		if err := os.MkdirAll(renderOut, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		extraction := answer.Extract(string(raw))

		html, err := render.Markdown(extraction.CleanAnswer)
		if err != nil {
			return fmt.Errorf("rendering markdown: %w", err)
		}

		htmlPath := filepath.Join(renderOut, "answer.html")
		if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", htmlPath, err)
		}
		fmt.Printf("Wrote %s\n", htmlPath)

		if len(extraction.Charts) == 0 {
			return nil
		}

		renderer := charts.NewRenderer(charts.NewSVGBackend(), &dirResolver{dir: renderOut})
		for i, payload := range extraction.Charts {
			name := fmt.Sprintf("chart-%d.svg", i)
			if h := renderer.Draw(charts.Configure(payload), name); h != nil {
				fmt.Printf("Wrote %s\n", filepath.Join(renderOut, name))
			}
		}
		return nil
	},
}

// dirResolver maps chart target names to files in the output directory.
type dirResolver struct {
	dir string
}

func (r *dirResolver) Resolve(targetID string) (charts.Surface, bool) {
	f, err := os.Create(filepath.Join(r.dir, targetID))
	if err != nil {
		return nil, false
	}
	return f, true
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "rendered", "output directory")
	rootCmd.AddCommand(renderCmd)
}
