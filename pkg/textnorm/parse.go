package textnorm

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minTaskWords = 3
	maxTaskWords = 30
	minTaskChars = 5
	maxTaskChars = 200
)

var (
	preamblePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*here are\s+(?:\d+\s+)?(?:\w+\s+)?tasks?\s*:?`),
		regexp.MustCompile(`(?im)^\s*based on[^\n]*?:`),
		regexp.MustCompile(`(?im)^\s*the following tasks?\s*:?`),
		regexp.MustCompile(`(?im)^\s*suggested tasks?\s*:?`),
		regexp.MustCompile(`(?im)^\s*project tasks?\s*:?`),
	}

	numberedMarkerRe = regexp.MustCompile(`(?:^|\s)\d{1,2}[.)]\s+`)
	bulletItemRe     = regexp.MustCompile(`(?m)^\s*[-•*]\s+(.+)$`)
	leadingMarkerRe  = regexp.MustCompile(`^(?:\d{1,2}[.)]|[-•*])\s*`)

	leadingStopWords = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	}
)

// ParseGenerated extracts distinct task strings from free-form model output.
// Numbered items are preferred, then bullet items, then plain lines.
// The first strategy yielding at least one acceptable task wins.
func ParseGenerated(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	body := StripPreambles(text)

	for _, extract := range []func(string) []string{numberedItems, bulletItems, lineItems} {
		if tasks := accept(extract(body)); len(tasks) > 0 {
			return tasks
		}
	}
	return nil
}

// StripPreambles removes conversational lead-ins such as "Here are 5 tasks:".
func StripPreambles(text string) string {
	for _, re := range preamblePatterns {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

func numberedItems(body string) []string {
	locs := numberedMarkerRe.FindAllStringIndex(body, -1)
	items := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		item := body[loc[1]:end]
		if nl := strings.IndexByte(item, '\n'); nl >= 0 {
			item = item[:nl]
		}
		items = append(items, item)
	}
	return items
}

func bulletItems(body string) []string {
	matches := bulletItemRe.FindAllStringSubmatch(body, -1)
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		items = append(items, m[1])
	}
	return items
}

func lineItems(body string) []string {
	lines := strings.Split(body, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		line = leadingMarkerRe.ReplaceAllString(strings.TrimSpace(line), "")
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// accept cleans candidates and keeps the plausible, first-seen ones.
func accept(candidates []string) []string {
	var tasks []string
	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		task := strings.TrimRight(Clean(c), " .")
		if !plausibleTask(task) {
			continue
		}
		if _, dup := seen[task]; dup {
			continue
		}
		seen[task] = struct{}{}
		tasks = append(tasks, task)
	}
	return tasks
}

func plausibleTask(task string) bool {
	n := utf8.RuneCountInString(task)
	if n <= minTaskChars || n >= maxTaskChars {
		return false
	}

	words := strings.Fields(task)
	if len(words) < minTaskWords || len(words) > maxTaskWords {
		return false
	}

	_, stop := leadingStopWords[strings.ToLower(words[0])]
	return !stop
}
