package domain

import (
	"context"
	"fmt"

	"candidate-pipeline/internal/entities"
)

// GetHistory returns one page of the candidate's audit trail, most recent
// first. Page size defaults to entities.DefaultHistoryPageSize when the
// caller passes zero.
func (u *Usecase) GetHistory(ctx context.Context, candidateID string, page, pageSize int) (*entities.HistoryPage, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if candidateID == "" {
		return nil, fmt.Errorf("%w: candidate_id is required", entities.ErrInvalidArgument)
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = entities.DefaultHistoryPageSize
	}

	if _, err := u.repo.GetCandidate(ctx, candidateID); err != nil {
		return nil, err
	}

	entries, total, err := u.repo.ListHistory(ctx, candidateID, page, pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}

	return &entities.HistoryPage{Entries: entries, TotalPages: totalPages}, nil
}
