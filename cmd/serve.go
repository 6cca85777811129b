package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ragstack/ragview/internal/db"
	"github.com/ragstack/ragview/internal/history"
	"github.com/ragstack/ragview/internal/server"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the document viewer web server",
	Long:  `Starts the web server: the viewer page, the ask/search API, the document file tree, and the modal WebSocket channel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}
		if serveAllowAll {
			cfg.AllowAllCORS = true
		}

		embedder, err := createEmbedder(cfg)
		if err != nil {
			return err
		}

		store, err := openStore(cfg, embedder)
		if err != nil {
			return err
		}

		provider, err := createProvider(cfg)
		if err != nil {
			return err
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "ragview.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:         cfg.Port,
			DocumentsDir: cfg.DocumentsDir,
			TopK:         cfg.TopK,
			AllowAll:     cfg.AllowAllCORS,
		}, store, provider, cfg.Model, history.NewStore(database))

		// Shut down cleanly on interrupt.
		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "shutting down...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
