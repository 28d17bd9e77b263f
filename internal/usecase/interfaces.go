package usecase

import (
	"context"

	"candidate-pipeline/internal/entities"
	"candidate-pipeline/internal/usecase/domain"
)

// CandidateUsecaseInterface abstracts candidate intake and read operations.
type CandidateUsecaseInterface interface {
	IntakeCandidate(ctx context.Context, params domain.IntakeParams) (*entities.Candidate, error)
	Candidate(ctx context.Context, id string) (*entities.Candidate, error)
	Candidates(ctx context.Context, filter entities.CandidateFilter) ([]entities.Candidate, int64, error)
}

// TransitionUsecaseInterface abstracts the pipeline state machine.
type TransitionUsecaseInterface interface {
	ApplyTransition(ctx context.Context, req domain.TransitionRequest) (*entities.Candidate, error)
}

// NegotiationUsecaseInterface abstracts the interview slot negotiation.
type NegotiationUsecaseInterface interface {
	ProposeInterview(ctx context.Context, params domain.ProposeInterviewParams) (*entities.Candidate, error)
	RecordCandidateResponse(ctx context.Context, candidateID string, resp domain.CandidateResponse, expectedVersion int64, actorID *string) (*entities.Candidate, error)
	CancelOrReschedule(ctx context.Context, candidateID string, expectedVersion int64, actorID *string) (*entities.Candidate, error)
}

// HistoryUsecaseInterface abstracts the audit trail projection.
type HistoryUsecaseInterface interface {
	GetHistory(ctx context.Context, candidateID string, page, pageSize int) (*entities.HistoryPage, error)
}
