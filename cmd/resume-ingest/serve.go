package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hireflow/resume-ingest/internal/config"
	"github.com/hireflow/resume-ingest/internal/db"
	"github.com/hireflow/resume-ingest/internal/extract"
	"github.com/hireflow/resume-ingest/internal/ingest"
	"github.com/hireflow/resume-ingest/internal/server"
	"github.com/hireflow/resume-ingest/internal/storage"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the upload API server",
	Long:  `Start an HTTP server that accepts resume uploads, serves stored documents, and records submissions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	// Environment overrides config file values
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("STORAGE_ROOT"); v != "" {
		cfg.StorageRoot = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	writer := storage.NewWriter(cfg.StorageRoot, cfg.BaseURL)
	svc := ingest.NewService(writer, extract.New(), database, log, cfg.Workers)

	srv := server.New(server.Config{
		Port:           cfg.Port,
		StorageRoot:    cfg.StorageRoot,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, svc, log)

	return srv.Start()
}
