package domain

import (
	"context"
	"fmt"

	"candidate-pipeline/internal/entities"

	"github.com/google/uuid"
)

// IntakeParams describes a candidate handed over by the ingestion pipeline.
type IntakeParams struct {
	Status    entities.Status
	Positions []string
	Notes     string
	ActorID   *string
}

// IntakeCandidate registers a new candidate in one of the initial statuses and
// writes the first history entry. Everything upstream of this call (resume
// parsing, document storage) lives outside this service.
func (u *Usecase) IntakeCandidate(ctx context.Context, params IntakeParams) (*entities.Candidate, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !params.Status.IsInitial() {
		return nil, fmt.Errorf("%w: %s is not an intake status", entities.ErrInvalidArgument, params.Status)
	}
	if len(params.Positions) == 0 {
		return nil, fmt.Errorf("%w: at least one position is required", entities.ErrInvalidArgument)
	}

	now := u.now().UTC()
	rec := entities.Candidate{
		ID:                 uuid.NewString(),
		Status:             params.Status,
		Positions:          params.Positions,
		SubmissionDate:     now,
		ConfirmationStatus: entities.ConfirmationNone,
		Notes:              params.Notes,
		Version:            1,
	}
	entry := entities.HistoryEntry{
		CandidateID: rec.ID,
		Timestamp:   now,
		Status:      params.Status,
		Notes:       params.Notes,
		UpdatedBy:   params.ActorID,
	}

	created, err := u.repo.CreateCandidate(ctx, rec, entry)
	if err != nil {
		return nil, err
	}
	u.log.Infow("candidate intake", "candidate_id", created.ID, "status", created.Status)
	return created, nil
}

// Candidate returns the record for id.
func (u *Usecase) Candidate(ctx context.Context, id string) (*entities.Candidate, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: candidate_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetCandidate(ctx, id)
}

// Candidates lists records matching the filter.
func (u *Usecase) Candidates(ctx context.Context, filter entities.CandidateFilter) ([]entities.Candidate, int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListCandidates(ctx, filter)
}
