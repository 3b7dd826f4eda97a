// Package mcp exposes the suggestion use case as MCP tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"task-suggestion/internal/suggestion"
	"task-suggestion/pkg/log"
)

// Register adds the suggestion tools to s.
func Register(s *server.MCPServer, l log.Logger, uc suggestion.UseCase) {
	suggestTool := NewSuggestTool(l, uc)
	s.AddTool(suggestTool.Definition(), suggestTool.Handle)

	validateTool := NewValidateTool(l, uc)
	s.AddTool(validateTool.Definition(), validateTool.Handle)
}

// SuggestTool handles the suggest_tasks MCP tool.
type SuggestTool struct {
	l  log.Logger
	uc suggestion.UseCase
}

// NewSuggestTool creates a SuggestTool.
func NewSuggestTool(l log.Logger, uc suggestion.UseCase) *SuggestTool {
	return &SuggestTool{l: l, uc: uc}
}

// Definition returns the MCP tool definition for suggest_tasks.
func (t *SuggestTool) Definition() mcp.Tool {
	return mcp.NewTool("suggest_tasks",
		mcp.WithDescription(
			"Suggest up to 5 concrete tasks for a project description, using similar "+
				"historical projects as context.",
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Natural language project description"),
		),
		mcp.WithNumber("num_suggestions",
			mcp.Description("Number of generation attempts, 1 to 5 (default: 3)"),
		),
		mcp.WithBoolean("use_hybrid",
			mcp.Description("Combine keyword and vector search (default: false)"),
		),
	)
}

// Handle processes the suggest_tasks tool call.
func (t *SuggestTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := t.uc.Suggest(ctx, suggestion.SuggestInput{
		Description:    req.GetString("description", ""),
		NumSuggestions: intArg(req, "num_suggestions", suggestion.DefaultNumSuggestions),
		UseHybrid:      boolArg(req, "use_hybrid", false),
	})
	if err != nil {
		if errors.Is(err, suggestion.ErrInvalidNumSuggestions) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		t.l.Errorf(ctx, "mcp.SuggestTool.Handle: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("suggestion failed: %v", err)), nil
	}

	var b strings.Builder
	if out.Rejected {
		b.WriteString("The description was not accepted as a project description.\n\n")
	}
	fmt.Fprintf(&b, "Suggested tasks (confidence: %s):\n", out.Confidence)
	for i, s := range out.Suggestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}

	if len(out.SimilarTasks) > 0 {
		b.WriteString("\nSimilar historical tasks:\n")
		for _, st := range out.SimilarTasks {
			fmt.Fprintf(&b, "- %s (%s, score %.2f)\n", st.TaskText, st.ProjectName, st.NormalizedScore)
		}
	}
	if out.Degraded {
		b.WriteString("\nNote: a backing service was unavailable, these are generic suggestions.\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

// ValidateTool handles the validate_description MCP tool.
type ValidateTool struct {
	l  log.Logger
	uc suggestion.UseCase
}

// NewValidateTool creates a ValidateTool.
func NewValidateTool(l log.Logger, uc suggestion.UseCase) *ValidateTool {
	return &ValidateTool{l: l, uc: uc}
}

// Definition returns the MCP tool definition for validate_description.
func (t *ValidateTool) Definition() mcp.Tool {
	return mcp.NewTool("validate_description",
		mcp.WithDescription("Check whether a project description is coherent and specific enough to suggest tasks for."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Project description to check"),
		),
	)
}

// Handle processes the validate_description tool call.
func (t *ValidateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, ok := req.GetArguments()["text"].(string)
	if !ok {
		return mcp.NewToolResultError("'text' is required"), nil
	}

	out, err := t.uc.Validate(ctx, suggestion.ValidateInput{Text: text})
	if err != nil {
		t.l.Errorf(ctx, "mcp.ValidateTool.Handle: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("validation failed: %v", err)), nil
	}

	md := out.Metadata
	var b strings.Builder
	fmt.Fprintf(&b, "Coherent: %t\nRelevance: %.2f (%s)\nWill be processed: %t\n",
		md.IsCoherent, md.RelevanceScore, md.Confidence, md.ShouldProcess)
	if md.EnhancementApplied {
		fmt.Fprintf(&b, "Search text: %s\n", out.EnhancedText)
	}
	b.WriteString("\nRecommendations:\n")
	for _, r := range out.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}
