// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"candidate-pipeline/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// CandidateInterface exposes candidate record operations. SaveCandidate is the
// single commit unit of the pipeline: the record mutation and its history
// append either both persist or neither does, and the write is rejected with
// entities.ErrConcurrentModification when the stored version no longer equals
// expectedVersion.
type CandidateInterface interface {
	CreateCandidate(ctx context.Context, rec entities.Candidate, entry entities.HistoryEntry) (*entities.Candidate, error)
	GetCandidate(ctx context.Context, id string) (*entities.Candidate, error)
	SaveCandidate(ctx context.Context, rec entities.Candidate, entry entities.HistoryEntry, expectedVersion int64) (*entities.Candidate, error)
	ListCandidates(ctx context.Context, filter entities.CandidateFilter) ([]entities.Candidate, int64, error)
}

// HistoryInterface exposes the read-only projection of the audit trail.
type HistoryInterface interface {
	ListHistory(ctx context.Context, candidateID string, page, pageSize int) ([]entities.HistoryEntry, int64, error)
}
