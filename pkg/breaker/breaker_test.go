package breaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func zeroProgress() LoopOutcome {
	return LoopOutcome{Status: StatusInProgress, HeuristicConfidence: true}
}

func progress() LoopOutcome {
	return LoopOutcome{Status: StatusInProgress, FilesModified: 2, HeuristicConfidence: true}
}

func TestBreaker_ClosedToHalfOpenOnZeroProgress(t *testing.T) {
	b := New()

	assert.Equal(t, DecisionContinue, b.Observe(zeroProgress()))
	assert.Equal(t, StateClosed, b.State())

	assert.Equal(t, DecisionContinue, b.Observe(zeroProgress()))
	assert.Equal(t, StateHalfOpen, b.State())
}

func TestBreaker_HalfOpenToOpenOnThirdZeroProgress(t *testing.T) {
	b := New()
	b.Observe(zeroProgress())
	b.Observe(zeroProgress())
	assert.Equal(t, StateHalfOpen, b.State())

	assert.Equal(t, DecisionContinue, b.Observe(zeroProgress()))
	assert.Equal(t, DecisionContinue, b.Observe(zeroProgress()))
	assert.Equal(t, StateHalfOpen, b.State())

	assert.Equal(t, DecisionHalt, b.Observe(zeroProgress()))
	assert.Equal(t, StateOpen, b.State())
}

func TestBreaker_LowConfidenceOutcomesDoNotAdvanceZeroProgress(t *testing.T) {
	b := New()
	unreadable := LoopOutcome{} // keyword-derived, no status block

	for i := 0; i < 10; i++ {
		assert.Equal(t, DecisionContinue, b.Observe(unreadable))
	}
	assert.Equal(t, StateClosed, b.State())

	// Confident zero-progress outcomes still count as before.
	b.Observe(zeroProgress())
	b.Observe(zeroProgress())
	assert.Equal(t, StateHalfOpen, b.State())
}

func TestBreaker_IdenticalErrorsCountRegardlessOfConfidence(t *testing.T) {
	b := New()
	stuck := LoopOutcome{ErrorSignature: "Error: connection refused by sandbox proxy"}

	var last Decision
	for i := 0; i < 5; i++ {
		last = b.Observe(stuck)
	}
	assert.Equal(t, DecisionHalt, last)
	assert.Equal(t, StateOpen, b.State())
}

func TestBreaker_HalfOpenRecoversOnProgress(t *testing.T) {
	b := New()
	b.Observe(zeroProgress())
	b.Observe(zeroProgress())
	assert.Equal(t, StateHalfOpen, b.State())

	b.Observe(zeroProgress())
	assert.Equal(t, DecisionContinue, b.Observe(progress()))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_OpenOnFiveIdenticalErrorSignatures(t *testing.T) {
	b := New()
	stuck := LoopOutcome{
		Status:              StatusInProgress,
		ErrorSignature:      "Error: ENOENT package.json",
		HeuristicConfidence: true,
	}

	for i := 0; i < 4; i++ {
		b.Observe(stuck)
	}
	assert.NotEqual(t, StateOpen, b.State())

	assert.Equal(t, DecisionHalt, b.Observe(stuck))
	assert.Equal(t, StateOpen, b.State())
}

func TestBreaker_SignatureStreakResetsOnDifferentError(t *testing.T) {
	b := New()
	a := LoopOutcome{FilesModified: 1, ErrorSignature: "Error: ENOENT package.json", HeuristicConfidence: true}
	other := LoopOutcome{FilesModified: 1, ErrorSignature: "Error: permission denied", HeuristicConfidence: true}

	for i := 0; i < 4; i++ {
		b.Observe(a)
	}
	b.Observe(other)
	for i := 0; i < 4; i++ {
		b.Observe(a)
	}
	assert.NotEqual(t, StateOpen, b.State())
}

func TestBreaker_OpenIsTerminalUntilReset(t *testing.T) {
	b := New()
	for i := 0; i < 5; i++ {
		b.Observe(zeroProgress())
	}
	assert.Equal(t, StateOpen, b.State())

	// Progress no longer matters once open.
	assert.Equal(t, DecisionHalt, b.Observe(progress()))
	assert.Equal(t, StateOpen, b.State())

	b.Reset()
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, DecisionContinue, b.Observe(progress()))
}

func TestBreaker_CompleteDecision(t *testing.T) {
	b := New()

	out := LoopOutcome{Status: StatusComplete, PRReady: true, FilesModified: 3, HeuristicConfidence: true}
	assert.Equal(t, DecisionComplete, b.Observe(out))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_ClarifyDecision(t *testing.T) {
	b := New()

	out := LoopOutcome{Status: StatusNeedsClarification, NeedsClarification: true, HeuristicConfidence: true}
	assert.Equal(t, DecisionClarify, b.Observe(out))
}

func TestBreaker_CompleteWinsOverClarify(t *testing.T) {
	b := New()

	out := LoopOutcome{Status: StatusComplete, PRReady: true, NeedsClarification: true, FilesModified: 1, HeuristicConfidence: true}
	assert.Equal(t, DecisionComplete, b.Observe(out))
}
