package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"task-suggestion/internal/catalog"
)

var recreate bool

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import projects and tasks into the catalog",
	Long: `Import reads a JSON file of projects, either {"projects": [...]} or a bare array,
and upserts them into the catalog. Run reload afterwards to index them.`,
	Example: `  taskctl import data/projects.json
  taskctl import data/projects.json && taskctl reload`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readImportFile(args[0])
		if err != nil {
			return err
		}

		a, _, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.Catalog.Import(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d projects, %d tasks.\n", out.Projects, out.Tasks)
		return nil
	},
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Re-embed the catalog into the vector index",
	Example: `  taskctl reload
  taskctl reload --recreate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.Catalog.Reload(cmd.Context(), catalog.ReloadInput{Recreate: recreate})
		if err != nil {
			return fmt.Errorf("reload failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d tasks, skipped %d.\n", out.Indexed, out.Skipped)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog and vector store status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.Catalog.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("status failed: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	reloadCmd.Flags().BoolVar(&recreate, "recreate", false, "drop and recreate the collection first")
}

func readImportFile(path string) (catalog.ImportInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.ImportInput{}, fmt.Errorf("read %s: %w", path, err)
	}
	return parseImport(data)
}

func parseImport(data []byte) (catalog.ImportInput, error) {
	var input catalog.ImportInput
	if err := json.Unmarshal(data, &input); err == nil {
		return input, nil
	}
	var projects []catalog.ProjectInput
	if err := json.Unmarshal(data, &projects); err != nil {
		return catalog.ImportInput{}, fmt.Errorf("parse import file: %w", err)
	}
	return catalog.ImportInput{Projects: projects}, nil
}
