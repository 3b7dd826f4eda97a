package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-suggestion/internal/suggestion"
)

var (
	numSuggestions int
	useHybrid      bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <description>",
	Short: "Suggest tasks for a project description",
	Example: `  taskctl suggest "Build an online store with payments"
  taskctl suggest -n 5 --hybrid "Mobile banking app with biometric login"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.Suggestion.Suggest(cmd.Context(), suggestion.SuggestInput{
			Description:    strings.Join(args, " "),
			NumSuggestions: numSuggestions,
			UseHybrid:      useHybrid,
		})
		if err != nil {
			return fmt.Errorf("suggest failed: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <text>",
	Short: "Score a project description without running the pipeline",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.Suggestion.Validate(cmd.Context(), suggestion.ValidateInput{Text: strings.Join(args, " ")})
		if err != nil {
			return fmt.Errorf("validate failed: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	suggestCmd.Flags().IntVarP(&numSuggestions, "num", "n", suggestion.DefaultNumSuggestions, "number of generated sequences (1-5)")
	suggestCmd.Flags().BoolVar(&useHybrid, "hybrid", false, "combine vector and full text search")
}
