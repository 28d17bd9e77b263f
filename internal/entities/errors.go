// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrCandidateNotFound is returned when no candidate exists for the id.
	ErrCandidateNotFound = errors.New("candidate not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidTransition signals an edge absent from the transition table.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrMissingField signals an incomplete payload for the attempted edge.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidSlot signals a malformed or past-dated interview slot.
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrConcurrentModification signals a stale expected version at commit.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrClockInvariant signals a history append that would break monotonic
	// ordering. Treated as an internal defect, never corrected silently.
	ErrClockInvariant = errors.New("history clock invariant violated")
)

// TransitionError reports a rejected edge. Matches ErrInvalidTransition.
type TransitionError struct {
	From   Status
	Target Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.Target)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// MissingFieldError names the payload field absent for the attempted edge.
// Matches ErrMissingField.
type MissingFieldError struct {
	From   Status
	Target Status
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q for transition %s -> %s", e.Field, e.From, e.Target)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// SlotError describes a rejected interview slot. Matches ErrInvalidSlot.
type SlotError struct {
	Index  int
	Reason string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("invalid slot %d: %s", e.Index, e.Reason)
}

func (e *SlotError) Unwrap() error { return ErrInvalidSlot }

// VersionError reports an optimistic concurrency conflict. Matches
// ErrConcurrentModification.
type VersionError struct {
	CandidateID string
	Expected    int64
	Actual      int64
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("candidate %s version is %d, caller expected %d", e.CandidateID, e.Actual, e.Expected)
}

func (e *VersionError) Unwrap() error { return ErrConcurrentModification }
