package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cruxvision/holdscan/internal/config"
	"github.com/cruxvision/holdscan/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the hold detection HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if cfg.LogFile != "" {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, f))
		}

		srv := server.New(server.Config{
			Port:        cfg.Port,
			MinArea:     cfg.MinArea,
			MaxUploadMB: cfg.MaxUploadMB,
			OutputDir:   cfg.OutputDir,
		})
		return srv.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
