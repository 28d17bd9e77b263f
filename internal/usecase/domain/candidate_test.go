package domain

import (
	"context"
	"testing"
	"time"

	"candidate-pipeline/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestIntakeCandidate(t *testing.T) {
	now := baseTime.Add(time.Hour)
	store := newFakeStore()
	uc := newTestUsecase(store, now)

	actor := "ingest-worker"
	rec, err := uc.IntakeCandidate(context.Background(), IntakeParams{
		Status:    entities.StatusNeedsReview,
		Positions: []string{"Backend Engineer", "SRE"},
		Notes:     "resume parsed with warnings",
		ActorID:   &actor,
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, entities.StatusNeedsReview, rec.Status)
	require.Equal(t, int64(1), rec.Version)
	require.Equal(t, now, rec.SubmissionDate)

	require.Equal(t, 1, store.historyLen(rec.ID))
	first := store.lastEntry(rec.ID)
	require.Equal(t, int64(1), first.Seq)
	require.Equal(t, entities.StatusNeedsReview, first.Status)
	require.Nil(t, first.PreviousStatus)
	require.Equal(t, "resume parsed with warnings", first.Notes)
	require.NotNil(t, first.UpdatedBy)
	require.Equal(t, actor, *first.UpdatedBy)
}

func TestIntakeCandidate_RejectsNonInitialStatus(t *testing.T) {
	uc := newTestUsecase(newFakeStore(), baseTime)

	for _, status := range []entities.Status{
		entities.StatusAccepted,
		entities.StatusInterview,
		entities.StatusHired,
	} {
		_, err := uc.IntakeCandidate(context.Background(), IntakeParams{
			Status:    status,
			Positions: []string{"Backend Engineer"},
		})
		require.ErrorIs(t, err, entities.ErrInvalidArgument, "status %s", status)
	}
}

func TestIntakeCandidate_RequiresPositions(t *testing.T) {
	uc := newTestUsecase(newFakeStore(), baseTime)

	_, err := uc.IntakeCandidate(context.Background(), IntakeParams{
		Status: entities.StatusProcessing,
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestCandidate_EmptyID(t *testing.T) {
	uc := newTestUsecase(newFakeStore(), baseTime)

	_, err := uc.Candidate(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestCandidate_RoundTrip(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store, baseTime)
	seeded := seedCandidate(t, store, "c1", entities.StatusNeedsReview)

	rec, err := uc.Candidate(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, seeded.ID, rec.ID)
	require.Equal(t, seeded.Status, rec.Status)
}
