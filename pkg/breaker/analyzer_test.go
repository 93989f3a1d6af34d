package breaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusBlock(t *testing.T) {
	output := `Ran the tests, everything green.

STATUS: complete
EXIT_SIGNAL: true
FILES_MODIFIED: server.go, server_test.go, README.md
PR_READY: true
WORK_SUMMARY: Add /health endpoint`

	block, ok := ParseStatusBlock(output)
	require.True(t, ok)
	assert.Equal(t, StatusComplete, block.Status)
	assert.True(t, block.ExitSignal)
	assert.Equal(t, 3, block.FilesModified)
	assert.True(t, block.PRReady)
	assert.Equal(t, "Add /health endpoint", block.WorkSummary)
}

func TestParseStatusBlock_NumericFileCount(t *testing.T) {
	block, ok := ParseStatusBlock("STATUS: in-progress\nFILES_MODIFIED: 7")
	require.True(t, ok)
	assert.Equal(t, 7, block.FilesModified)
}

func TestParseStatusBlock_ClarificationQuestions(t *testing.T) {
	output := `STATUS: needs-clarification
CLARIFICATION_NEEDED: true
CLARIFICATION_QUESTIONS: Which database? | Should auth be required?`

	block, ok := ParseStatusBlock(output)
	require.True(t, ok)
	assert.True(t, block.ClarificationNeeded)
	assert.Equal(t, []string{"Which database?", "Should auth be required?"}, block.ClarificationQuestions)
}

func TestParseStatusBlock_AbsentWithoutStatusLine(t *testing.T) {
	_, ok := ParseStatusBlock("PR_READY: true\nno status line here")
	assert.False(t, ok)
}

func TestExtractErrorSignature(t *testing.T) {
	output := `running build
"is_error": false
Error: timeout reading config
some progress output
ERROR: could not resolve host
"tool_error": null`

	sig := ExtractErrorSignature(output)
	assert.Equal(t, "Error: timeout reading config\nERROR: could not resolve host", sig)
}

func TestExtractErrorSignature_JSONFieldsNotCounted(t *testing.T) {
	assert.Empty(t, ExtractErrorSignature(`"is_error": false`))
	assert.Empty(t, ExtractErrorSignature(`{"error": "none", "ok": true}`))
}

func TestExtractErrorSignature_RealErrorsCounted(t *testing.T) {
	assert.Equal(t, "Error: timeout reading config",
		ExtractErrorSignature("Error: timeout reading config"))
	assert.Equal(t, "Fatal signal received",
		ExtractErrorSignature("  Fatal signal received  "))
}

func TestAnalyzer_StuckLoopOpensCircuit(t *testing.T) {
	a := NewAnalyzer()
	output := `STATUS: in-progress
FILES_MODIFIED: 0
Error: ENOENT package.json`

	var last Decision
	for i := 0; i < 5; i++ {
		_, last = a.Analyze(output)
	}
	assert.Equal(t, DecisionHalt, last)
	assert.Equal(t, StateOpen, a.CircuitState())
}

func TestAnalyzer_CompleteFromStatusBlock(t *testing.T) {
	a := NewAnalyzer()
	output := `STATUS: complete
EXIT_SIGNAL: true
FILES_MODIFIED: 3
PR_READY: true`

	outcome, decision := a.Analyze(output)
	assert.Equal(t, DecisionComplete, decision)
	assert.True(t, outcome.HeuristicConfidence)
	assert.Equal(t, 3, outcome.FilesModified)
}

func TestAnalyzer_BlockLessOutputDoesNotTripCircuit(t *testing.T) {
	// Benign narration without a status block is unreadable, not stuck:
	// the zero-progress counters must not advance on it.
	a := NewAnalyzer()

	var last Decision
	for i := 0; i < 8; i++ {
		_, last = a.Analyze("Reading the repository layout and planning the change.")
	}
	assert.Equal(t, DecisionContinue, last)
	assert.Equal(t, StateClosed, a.CircuitState())
}

func TestAnalyzer_FileChangeEventsCountAsProgress(t *testing.T) {
	a := NewAnalyzer()

	// Two confident zero-progress loops put the circuit into probing.
	for i := 0; i < 2; i++ {
		a.Analyze("STATUS: in-progress\nFILES_MODIFIED: 0")
	}
	require.Equal(t, StateHalfOpen, a.CircuitState())

	// Streamed edits during the next loop stand in for FILES_MODIFIED
	// when the terminal output carries no block.
	a.ObserveFileChange()
	a.ObserveFileChange()
	outcome, decision := a.Analyze("Edited server.go and server_test.go, running tests next.")
	assert.Equal(t, 2, outcome.FilesModified)
	assert.True(t, outcome.Progress())
	assert.Equal(t, DecisionContinue, decision)
	assert.Equal(t, StateClosed, a.CircuitState())

	// The pending count is consumed by the analysis, not carried over.
	next, _ := a.Analyze("STATUS: in-progress\nFILES_MODIFIED: 0")
	assert.Zero(t, next.FilesModified)
}

func TestAnalyzer_HeuristicFallback(t *testing.T) {
	a := NewAnalyzer()

	outcome, decision := a.Analyze("Opened pull request #42, all done.")
	assert.Equal(t, DecisionComplete, decision)
	assert.False(t, outcome.HeuristicConfidence)

	a.Reset()
	outcome, decision = a.Analyze("I need clarification on the auth flow before continuing.")
	assert.Equal(t, DecisionClarify, decision)
	assert.False(t, outcome.HeuristicConfidence)
}
