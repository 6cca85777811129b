package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ragstack/ragview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ragview configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure ragview for your document folder and generates a .ragview.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
