package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ragview",
	Short: "Ask questions over your documents and view grounded, chart-aware answers",
	Long: `ragview indexes a folder of markdown and text documents into a semantic
vector store, answers questions about them with an LLM, and serves the
answers as safe HTML with extracted charts and related images.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".ragview.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
