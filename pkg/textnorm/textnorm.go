// Package textnorm cleans free text for embedding and prompting, formats
// retrieved tasks as prompt context and parses generated lists back into tasks.
package textnorm

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// NoTasksSentinel is returned by FormatContext when there is nothing to show.
	NoTasksSentinel = "No tasks available."

	// DefaultContextLimit is the number of tasks FormatContext lists by default.
	DefaultContextLimit = 10

	// MaxDescriptionWords bounds Preprocess output.
	MaxDescriptionWords = 200

	contextTaskMaxChars = 100
	ellipsis            = "..."
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,;:!?()\-]`)
)

// Clean strips characters outside letters, digits, underscore, whitespace and
// ". , ; : ! ? ( ) -", then collapses whitespace runs and trims.
// Clean(Clean(x)) == Clean(x).
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = disallowedRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Preprocess cleans a project description and keeps at most MaxDescriptionWords words.
func Preprocess(description string) string {
	cleaned := Clean(description)
	words := strings.Fields(cleaned)
	if len(words) <= MaxDescriptionWords {
		return cleaned
	}
	return strings.Join(words[:MaxDescriptionWords], " ")
}

// FormatContext renders up to limit non-empty task texts as a numbered list.
// Texts longer than 100 characters are cut and marked with "...".
// A limit <= 0 means DefaultContextLimit.
func FormatContext(tasks []string, limit int) string {
	if limit <= 0 {
		limit = DefaultContextLimit
	}

	lines := make([]string, 0, limit)
	for _, t := range tasks {
		if len(lines) == limit {
			break
		}
		text := Clean(t)
		if text == "" {
			continue
		}
		text = truncate(text, contextTaskMaxChars)
		lines = append(lines, strconv.Itoa(len(lines)+1)+". "+text)
	}

	if len(lines) == 0 {
		return NoTasksSentinel
	}
	return strings.Join(lines, "\n")
}

// WordCount counts whitespace separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func truncate(text string, maxChars int) string {
	if utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxChars]) + ellipsis
}
