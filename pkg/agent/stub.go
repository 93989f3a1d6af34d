package agent

import (
	"context"
	"sync"
)

// KindStub is a scripted in-process strategy used by tests and local
// development. It performs no work; it replays the results it was given.
const KindStub = "stub"

// StubStrategy returns pre-scripted results in order, one per Execute.
type StubStrategy struct {
	mu       sync.Mutex
	results  []*Result
	errs     []error
	calls    int
	contexts []*Context
	aborted  bool
}

// NewStubStrategy scripts the given outcomes. Each Execute consumes one
// result/error pair; extra calls repeat the last pair.
func NewStubStrategy(results []*Result, errs []error) *StubStrategy {
	return &StubStrategy{results: results, errs: errs}
}

// StubManifest installs the stub under its own kind.
func StubManifest(s *StubStrategy) Manifest {
	return Manifest{
		Kind: KindStub,
		New:  func() (Strategy, error) { return s, nil },
	}
}

func (s *StubStrategy) Kind() string                               { return KindStub }
func (s *StubStrategy) SupportsStreaming() bool                    { return false }
func (s *StubStrategy) Capabilities() Capabilities                 { return Capabilities{SessionPersistence: true} }
func (s *StubStrategy) Validate(context.Context, *Context) []error { return nil }
func (s *StubStrategy) Cleanup()                                   {}

func (s *StubStrategy) Execute(ctx context.Context, ac *Context) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	i := s.calls
	s.calls++
	s.contexts = append(s.contexts, ac)

	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	var err error
	if i >= 0 && i < len(s.errs) {
		err = s.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return &Result{Success: true}, nil
	}
	return s.results[i], nil
}

func (s *StubStrategy) Abort(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aborted = true
	return nil
}

// Calls reports how many times Execute ran.
func (s *StubStrategy) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastContext returns the Context of the most recent Execute, or nil.
func (s *StubStrategy) LastContext() *Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.contexts) == 0 {
		return nil
	}
	return s.contexts[len(s.contexts)-1]
}

// Aborted reports whether Abort was called.
func (s *StubStrategy) Aborted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aborted
}
