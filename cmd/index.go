package cmd

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ragstack/ragview/internal/library"
	"github.com/ragstack/ragview/internal/progress"
	"github.com/ragstack/ragview/internal/vectordb"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the document folder into the vector store",
	Long:  `Scans the configured documents directory, chunks each text file, embeds the chunks, and persists the vector store. Reindexing rebuilds the store from scratch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		embedder, err := createEmbedder(cfg)
		if err != nil {
			return err
		}

		files, err := library.ScanText(cfg.DocumentsDir, cfg.Include)
		if err != nil {
			return fmt.Errorf("scanning documents: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no documents matched %v under %s", cfg.Include, cfg.DocumentsDir)
		}

		// Full rebuild: a fresh store replaces the persisted one.
		store, err := vectordb.NewChromemStore(embedder)
		if err != nil {
			return fmt.Errorf("creating vector store: %w", err)
		}

		ctx := context.Background()
		reporter := progress.NewReporter()
		reporter.Start(len(files))

		now := time.Now().UTC()
		totalChunks := 0
		for i, f := range files {
			chunks := library.SplitChunks(f.Content)
			docs := make([]vectordb.Document, len(chunks))
			for j, chunk := range chunks {
				hash := sha256.Sum256([]byte(chunk))
				docs[j] = vectordb.Document{
					ID:      fmt.Sprintf("%s#%d", f.RelPath, j),
					Content: chunk,
					Metadata: vectordb.DocumentMetadata{
						SourceFile:  f.RelPath,
						FileType:    fileTypeOf(f.RelPath),
						ChunkIndex:  j,
						ChunkCount:  len(chunks),
						ContentHash: hex.EncodeToString(hash[:8]),
						LastUpdated: now,
					},
				}
			}

			if err := store.AddDocuments(ctx, docs); err != nil {
				reporter.Finish()
				return fmt.Errorf("indexing %s: %w", f.RelPath, err)
			}
			totalChunks += len(docs)
			reporter.Update(i+1, f.RelPath)
		}
		reporter.Finish()

		dir := vectorDir(cfg)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating vector store directory: %w", err)
		}
		if err := store.Persist(ctx, dir); err != nil {
			return fmt.Errorf("persisting vector store: %w", err)
		}

		fmt.Printf("Indexed %d files (%d chunks) into %s\n", len(files), totalChunks, dir)
		return nil
	},
}

// fileTypeOf maps a path to the metadata file type.
func fileTypeOf(path string) vectordb.FileType {
	if strings.EqualFold(filepath.Ext(path), ".md") {
		return vectordb.FileTypeMarkdown
	}
	return vectordb.FileTypeText
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
