package agent

import "strings"

// labelPrefix marks forge-issue labels that pick an engine, e.g.
// "engine:runner" or "engine:runner:anthropic".
const labelPrefix = "engine:"

// Selection names the agent configuration for one execution.
type Selection struct {
	Kind     string
	Provider string
	Model    string
}

// IsZero reports whether nothing was selected.
func (s Selection) IsZero() bool {
	return s.Kind == "" && s.Provider == "" && s.Model == ""
}

// Route resolves the agent selection from, in priority order: the queue
// message's explicit hint, forge-issue labels, and system defaults. Only
// the highest-priority present source is consulted; lower sources never
// fill in individual fields.
func Route(hint *Selection, labels []string, defaults Selection) Selection {
	if hint != nil && !hint.IsZero() {
		return *hint
	}
	if sel, ok := fromLabels(labels); ok {
		return sel
	}
	return defaults
}

// fromLabels returns the selection encoded in the first engine label.
func fromLabels(labels []string) (Selection, bool) {
	for _, label := range labels {
		if !strings.HasPrefix(label, labelPrefix) {
			continue
		}
		parts := strings.Split(strings.TrimPrefix(label, labelPrefix), ":")
		sel := Selection{Kind: strings.TrimSpace(parts[0])}
		if sel.Kind == "" {
			continue
		}
		if len(parts) > 1 {
			sel.Provider = strings.TrimSpace(parts[1])
		}
		return sel, true
	}
	return Selection{}, false
}
