// Package breaker decides when an autonomous agent loop should stop. The
// Breaker is a pure state machine over per-loop outcomes; the Analyzer
// (analyzer.go) turns raw agent output into those outcomes.
package breaker

// State is the circuit state governing loop termination.
type State string

const (
	StateClosed   State = "closed"
	StateHalfOpen State = "half-open"
	StateOpen     State = "open"
)

// Decision is the per-loop verdict handed back to the dispatcher.
type Decision string

const (
	DecisionContinue Decision = "continue"
	DecisionClarify  Decision = "clarify"
	DecisionComplete Decision = "complete"
	DecisionHalt     Decision = "halt"
)

const (
	// Consecutive zero-progress loops in closed before probing.
	closedZeroProgressLimit = 2
	// Consecutive zero-progress loops in half-open before tripping.
	halfOpenZeroProgressLimit = 3
	// Consecutive loops with an identical error signature before tripping.
	identicalErrorLimit = 5
)

// LoopOutcome is one loop's observable result.
type LoopOutcome struct {
	Status              string // status-block value, empty when absent
	PRReady             bool
	NeedsClarification  bool
	FilesModified       int
	ErrorSignature      string // empty when the loop produced no errors
	ExplicitComplete    bool
	HeuristicConfidence bool // false when derived without a status block
}

// Progress reports whether the loop moved the task forward.
func (o LoopOutcome) Progress() bool {
	return o.FilesModified > 0 || o.PRReady
}

// Breaker tracks the circuit over a single request's execution. Not safe
// for concurrent use; the dispatcher serializes per request.
type Breaker struct {
	state           State
	zeroProgress    int
	identicalErrors int
	lastSignature   string
}

// New returns a Breaker in the closed state.
func New() *Breaker {
	return &Breaker{state: StateClosed}
}

// State returns the current circuit state.
func (b *Breaker) State() State {
	return b.state
}

// Reset returns the circuit to closed. Called on a new request and on an
// explicit user retry.
func (b *Breaker) Reset() {
	b.state = StateClosed
	b.zeroProgress = 0
	b.identicalErrors = 0
	b.lastSignature = ""
}

// Observe feeds one loop outcome through the circuit and returns the
// decision for that loop. Deterministic given the sequence of outcomes.
func (b *Breaker) Observe(o LoopOutcome) Decision {
	if b.state == StateOpen {
		return DecisionHalt
	}

	b.observeSignature(o.ErrorSignature)
	b.observeProgress(o)

	if b.state == StateOpen {
		return DecisionHalt
	}
	if o.PRReady || o.ExplicitComplete || o.Status == StatusComplete {
		return DecisionComplete
	}
	if o.NeedsClarification || o.Status == StatusNeedsClarification {
		return DecisionClarify
	}
	return DecisionContinue
}

func (b *Breaker) observeSignature(sig string) {
	if sig == "" || sig != b.lastSignature {
		b.lastSignature = sig
		b.identicalErrors = boolToInt(sig != "")
		return
	}
	b.identicalErrors++
	if b.identicalErrors >= identicalErrorLimit {
		b.state = StateOpen
	}
}

func (b *Breaker) observeProgress(o LoopOutcome) {
	if b.state == StateOpen {
		return
	}
	if o.Progress() {
		// Any progress closes a probing circuit.
		b.state = StateClosed
		b.zeroProgress = 0
		return
	}

	// Keyword-derived outcomes carry strictly lower confidence: a loop
	// without a status block is unreadable, not stuck. Only confident
	// outcomes advance the zero-progress counters; the identical-error
	// streak above is a signal of its own and counts regardless.
	if !o.HeuristicConfidence {
		return
	}

	b.zeroProgress++
	switch b.state {
	case StateClosed:
		if b.zeroProgress >= closedZeroProgressLimit {
			b.state = StateHalfOpen
			b.zeroProgress = 0
		}
	case StateHalfOpen:
		if b.zeroProgress >= halfOpenZeroProgressLimit {
			b.state = StateOpen
		}
	}
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
