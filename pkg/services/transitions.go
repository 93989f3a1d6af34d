package services

import "github.com/patchwork-dev/patchwork/ent/request"

// legalTransitions is the request state-machine graph. A status change is
// accepted only along these edges; everything else is an InvalidTransitionError.
//
// issue_created is a decorator status equivalent to pending for forge-origin
// rows — it shares pending's outgoing edges and is a legal target wherever
// pending is.
var legalTransitions = map[request.Status][]request.Status{
	request.StatusPending: {
		request.StatusProcessing, request.StatusCancelled, request.StatusIssueCreated,
	},
	request.StatusIssueCreated: {
		request.StatusProcessing, request.StatusCancelled,
	},
	request.StatusProcessing: {
		request.StatusAwaitingClarification, request.StatusPrCreated,
		request.StatusCompleted, request.StatusError, request.StatusCancelled,
	},
	request.StatusAwaitingClarification: {
		request.StatusProcessing, request.StatusCancelled,
	},
	request.StatusPrCreated: {
		request.StatusProcessing, request.StatusCompleted, request.StatusError,
	},
	request.StatusCompleted: {},
	request.StatusError: {
		request.StatusPending, request.StatusCancelled,
	},
	request.StatusCancelled: {
		request.StatusPending,
	},
}

// CanTransition reports whether from -> to is a legal state-machine edge.
// A no-op transition (from == to) is always legal.
func CanTransition(from, to request.Status) bool {
	if from == to {
		return true
	}
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status accepts no further work. Note that
// error and cancelled still accept a retry edge back to pending; completed
// is the only fully terminal state.
func IsTerminal(status request.Status) bool {
	return status == request.StatusCompleted ||
		status == request.StatusError ||
		status == request.StatusCancelled
}

// IsActive reports whether a request in this status still owns its chat
// thread — incoming utterances for the thread correlate to it.
func IsActive(status request.Status) bool {
	switch status {
	case request.StatusPending, request.StatusIssueCreated,
		request.StatusProcessing, request.StatusAwaitingClarification:
		return true
	default:
		return false
	}
}
