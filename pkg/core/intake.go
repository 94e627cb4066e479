package core

import (
	"context"
	"time"
)

// IntakeOutcome is the terminal state of a single demo request submission.
type IntakeOutcome int

// Terminal states of the intake state machine.
const (
	OutcomeInvalidInput IntakeOutcome = iota
	OutcomeStoredRemote
	OutcomeStoredLocalDirect
	OutcomeStoredLocalFallback
	OutcomeStorageFailed
	OutcomeUnexpectedError
)

// String returns the metric/log label for the outcome.
func (o IntakeOutcome) String() string {
	switch o {
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomeStoredRemote:
		return "stored_remote"
	case OutcomeStoredLocalDirect:
		return "stored_local_direct"
	case OutcomeStoredLocalFallback:
		return "stored_local_fallback"
	case OutcomeStorageFailed:
		return "storage_failed"
	default:
		return "unexpected_error"
	}
}

// Stored reports whether the request was persisted.
func (o IntakeOutcome) Stored() bool {
	return o == OutcomeStoredRemote || o == OutcomeStoredLocalDirect || o == OutcomeStoredLocalFallback
}

// IntakeResult is what the intake service reports for one submission.
type IntakeResult struct {
	Outcome IntakeOutcome
	// Storage is the label of the store that accepted the request, empty when nothing was stored.
	Storage string
	// Request is the persisted row, nil when nothing was stored.
	Request *DemoRequest
	// RemoteErr is kept when the remote insert failed, even if the fallback succeeded.
	RemoteErr error
	// LocalErr is set when the local insert failed.
	LocalErr error
	// Message is a human readable summary for failed submissions.
	Message string
}

// IntakeService accepts demo requests and records each in exactly one store.
type IntakeService interface {
	// Submit validates and persists a demo request.
	Submit(ctx context.Context, input DemoRequestInput) *IntakeResult
	// RemoteStatus reports whether remote storage is configured.
	RemoteStatus() RemoteStoreStatus
}

// IntakeRecorder observes intake outcomes.
type IntakeRecorder interface {
	Observe(outcome IntakeOutcome, duration time.Duration)
}
