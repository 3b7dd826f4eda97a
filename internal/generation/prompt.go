package generation

import (
	"fmt"
	"strings"

	"task-suggestion/internal/model"
	"task-suggestion/pkg/textnorm"
)

const (
	expertFramingThreshold    = 0.75
	assistantFramingThreshold = 0.5

	instructionExpert    = "You are an expert project manager. Use the similar projects below to propose concrete, actionable tasks for the new project."
	instructionAssistant = "You are a helpful project planning assistant. Use any relevant examples below to suggest tasks for the new project."
	instructionGeneric   = "Suggest practical tasks for the following project."

	directiveSpecific = "Based on the project description and similar tasks above, generate a list of %d specific tasks for this project. Format tasks as a numbered list:"
	directiveGeneral  = "Based on the project description above, generate a list of %d general tasks that would help start this project. Format tasks as a numbered list:"
)

// PromptConfig bounds how much context goes into a prompt.
type PromptConfig struct {
	MaxProjects        int
	MaxTasksPerProject int
	NumTasks           int
}

// DefaultPromptConfig returns the production prompt limits.
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		MaxProjects:        3,
		MaxTasksPerProject: 5,
		NumTasks:           5,
	}
}

// BuildPrompt assembles the generation prompt. Framing and directive get more
// specific as the assessment's context relevance grows.
func BuildPrompt(description string, projects []model.ProjectContext, a ContextAssessment, cfg PromptConfig) string {
	var b strings.Builder

	b.WriteString(instructionFor(a.ContextRelevance))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Project description: %s\n\n", textnorm.Clean(description))

	written := 0
	for _, p := range projects {
		if written == cfg.MaxProjects {
			break
		}
		if p.ProjectName == "" {
			continue
		}
		if written == 0 {
			b.WriteString("Similar projects and their tasks:\n")
		}
		written++

		fmt.Fprintf(&b, "Project %d: %s\n", written, textnorm.Clean(p.ProjectName))
		if desc := textnorm.Clean(p.ProjectDescription); desc != "" {
			fmt.Fprintf(&b, "Description: %s\n", desc)
		}

		texts := make([]string, len(p.Tasks))
		for i, t := range p.Tasks {
			texts[i] = t.TaskText
		}
		b.WriteString("Tasks:\n")
		b.WriteString(textnorm.FormatContext(texts, cfg.MaxTasksPerProject))
		b.WriteString("\n\n")
	}

	directive := directiveGeneral
	if a.ContextRelevance >= assistantFramingThreshold {
		directive = directiveSpecific
	}
	fmt.Fprintf(&b, directive, cfg.NumTasks)

	return b.String()
}

func instructionFor(contextRelevance float64) string {
	switch {
	case contextRelevance >= expertFramingThreshold:
		return instructionExpert
	case contextRelevance >= assistantFramingThreshold:
		return instructionAssistant
	default:
		return instructionGeneric
	}
}

// Sampling holds decoding parameters.
type Sampling struct {
	Temperature float64
	TopK        int
	TopP        float64
}

// SamplingFor returns decoding parameters for a confidence tier. Higher
// confidence samples more conservatively.
func SamplingFor(c Confidence) Sampling {
	switch c {
	case ConfidenceHigh:
		return Sampling{Temperature: 0.7, TopK: 50, TopP: 0.9}
	case ConfidenceMedium:
		return Sampling{Temperature: 0.8, TopK: 40, TopP: 0.85}
	default:
		return Sampling{Temperature: 0.9, TopK: 30, TopP: 0.8}
	}
}

// CapSequences clamps a requested sequence count into [1, max].
func CapSequences(requested, max int) int {
	if requested < 1 {
		return 1
	}
	if requested > max {
		return max
	}
	return requested
}
