package breaker

import (
	"regexp"
	"strconv"
	"strings"
)

// Status-block STATUS values.
const (
	StatusInProgress         = "in-progress"
	StatusComplete           = "complete"
	StatusNeedsClarification = "needs-clarification"
	StatusBlocked            = "blocked"
)

// StatusBlock is the structured completion report a strategy appends to its
// final output. All fields are optional on the wire; absent fields keep
// their zero value.
type StatusBlock struct {
	Status                 string
	ExitSignal             bool
	FilesModified          int
	PRReady                bool
	ClarificationNeeded    bool
	ClarificationQuestions []string
	WorkSummary            string
}

var statusBlockKeyRe = regexp.MustCompile(`^([A-Z_]+):\s*(.*)$`)

// ParseStatusBlock scans output for a structured completion block. The
// second return is false when no STATUS line is present.
func ParseStatusBlock(output string) (*StatusBlock, bool) {
	var block StatusBlock
	found := false

	for _, line := range strings.Split(output, "\n") {
		m := statusBlockKeyRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		key, value := m[1], strings.TrimSpace(m[2])
		switch key {
		case "STATUS":
			block.Status = strings.ToLower(value)
			found = true
		case "EXIT_SIGNAL":
			block.ExitSignal = parseBool(value)
		case "FILES_MODIFIED":
			block.FilesModified = parseFileCount(value)
		case "PR_READY":
			block.PRReady = parseBool(value)
		case "CLARIFICATION_NEEDED":
			block.ClarificationNeeded = parseBool(value)
		case "CLARIFICATION_QUESTIONS":
			block.ClarificationQuestions = splitQuestions(value)
		case "WORK_SUMMARY":
			block.WorkSummary = value
		}
	}

	if !found {
		return nil, false
	}
	return &block, true
}

// parseFileCount accepts either a bare integer or a comma-separated file
// list, in which case the count is the number of entries.
func parseFileCount(value string) int {
	if value == "" {
		return 0
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	count := 0
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "1":
		return true
	default:
		return false
	}
}

func splitQuestions(value string) []string {
	var out []string
	for _, q := range strings.Split(value, "|") {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	return out
}

// ─── Error-signature extraction ──────────────────────────────────────────

// jsonErrorFieldRe matches JSON field names containing "error", e.g.
// `"is_error": false`. Those lines are tool-result payload, not failures.
var jsonErrorFieldRe = regexp.MustCompile(`"\w*error\w*"\s*:`)

// errorLineRe matches lines that report an actual failure.
var errorLineRe = regexp.MustCompile(`^(Error:|ERROR:|Exception|Fatal|failed:)`)

// ExtractErrorSignature runs the two-stage filter over agent output: drop
// lines that merely mention an error-named JSON field, then retain lines
// that start like a real error report. The signature is the retained lines
// concatenated; identical signatures across loops indicate a stuck loop.
func ExtractErrorSignature(output string) string {
	var retained []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || jsonErrorFieldRe.MatchString(line) {
			continue
		}
		if errorLineRe.MatchString(line) {
			retained = append(retained, line)
		}
	}
	return strings.Join(retained, "\n")
}

// ─── Analyzer ────────────────────────────────────────────────────────────

// Analyzer converts raw loop output into LoopOutcomes and feeds them
// through a Breaker. One Analyzer per request execution.
type Analyzer struct {
	breaker *Breaker

	// pendingFileChanges counts file-change events observed since the last
	// Analyze. They stand in for FILES_MODIFIED when the loop output has no
	// status block, so streamed edits still register as progress.
	pendingFileChanges int
}

// NewAnalyzer returns an Analyzer with a fresh closed circuit.
func NewAnalyzer() *Analyzer {
	return &Analyzer{breaker: New()}
}

// CircuitState exposes the underlying circuit state for error reporting.
func (a *Analyzer) CircuitState() State {
	return a.breaker.State()
}

// Reset reopens the loop for an explicit user retry.
func (a *Analyzer) Reset() {
	a.breaker.Reset()
	a.pendingFileChanges = 0
}

// ObserveFileChange records one streamed file edit for the current loop.
func (a *Analyzer) ObserveFileChange() {
	a.pendingFileChanges++
}

// Analyze derives this loop's outcome from the raw output and returns the
// circuit decision. With a status block present the outcome is taken from
// the block; otherwise keyword heuristics apply at lower confidence.
func (a *Analyzer) Analyze(output string) (LoopOutcome, Decision) {
	outcome := a.outcomeFor(output)
	a.pendingFileChanges = 0
	return outcome, a.breaker.Observe(outcome)
}

func (a *Analyzer) outcomeFor(output string) LoopOutcome {
	signature := ExtractErrorSignature(output)

	if block, ok := ParseStatusBlock(output); ok {
		return LoopOutcome{
			Status:              block.Status,
			PRReady:             block.PRReady,
			NeedsClarification:  block.ClarificationNeeded || block.Status == StatusNeedsClarification,
			FilesModified:       block.FilesModified,
			ErrorSignature:      signature,
			ExplicitComplete:    block.ExitSignal && block.Status == StatusComplete,
			HeuristicConfidence: true,
		}
	}

	lower := strings.ToLower(output)
	return LoopOutcome{
		PRReady:            strings.Contains(lower, "pull request") && (strings.Contains(lower, "created") || strings.Contains(lower, "opened")),
		NeedsClarification: strings.Contains(lower, "need") && strings.Contains(lower, "clarif"),
		FilesModified:      a.pendingFileChanges,
		ErrorSignature:     signature,
	}
}
