package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"task-suggestion/config"
	"task-suggestion/internal/app"
	"task-suggestion/pkg/log"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose keeps info level logging on stderr.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "taskctl",
	Short: "taskctl manages the task catalog and asks for task suggestions.",
	Long: `taskctl imports historical projects into the catalog, rebuilds the vector index,
and runs the suggestion pipeline against a project description.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(importCmd, reloadCmd, statusCmd, suggestCmd, validateCmd)
}

// loadApp reads the configuration and builds the application graph.
// The caller must Close the returned App.
func loadApp(ctx context.Context) (*app.App, log.Logger, error) {
	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return a, logger, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
