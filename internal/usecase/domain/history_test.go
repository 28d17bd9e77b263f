package domain

import (
	"context"
	"testing"
	"time"

	"candidate-pipeline/internal/entities"

	"github.com/stretchr/testify/require"
)

// walkToRejected drives a candidate through n status changes so the ledger
// has n+1 entries to page over.
func walkToRejected(t *testing.T, uc *Usecase, id string) {
	t.Helper()
	ctx := context.Background()

	steps := []entities.Status{
		entities.StatusAccepted,
		entities.StatusInterested,
		entities.StatusRejected,
	}
	version := int64(1)
	for _, target := range steps {
		_, err := uc.ApplyTransition(ctx, TransitionRequest{
			CandidateID:     id,
			Target:          target,
			ExpectedVersion: version,
		})
		require.NoError(t, err)
		version++
	}
}

func TestGetHistory_MostRecentFirst(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store, baseTime.Add(time.Hour))
	seedCandidate(t, store, "c1", entities.StatusNeedsReview)
	walkToRejected(t, uc, "c1")

	page, err := uc.GetHistory(context.Background(), "c1", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Entries, 4)
	require.Equal(t, int64(1), page.TotalPages)

	want := []entities.Status{
		entities.StatusRejected,
		entities.StatusInterested,
		entities.StatusAccepted,
		entities.StatusNeedsReview,
	}
	for i, entry := range page.Entries {
		require.Equal(t, want[i], entry.Status)
		require.Equal(t, int64(4-i), entry.Seq)
	}

	// first entry has no predecessor, every later one names it
	require.Nil(t, page.Entries[3].PreviousStatus)
	require.NotNil(t, page.Entries[0].PreviousStatus)
	require.Equal(t, entities.StatusInterested, *page.Entries[0].PreviousStatus)
}

func TestGetHistory_DefaultPageSize(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store, baseTime.Add(time.Hour))
	seedCandidate(t, store, "c1", entities.StatusNeedsReview)
	walkToRejected(t, uc, "c1")

	// four entries fit one default-sized page
	page, err := uc.GetHistory(context.Background(), "c1", 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Entries, 4)
	require.Equal(t, int64(1), page.TotalPages)
}

func TestGetHistory_Paging(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store, baseTime.Add(time.Hour))
	seedCandidate(t, store, "c1", entities.StatusNeedsReview)
	walkToRejected(t, uc, "c1")

	first, err := uc.GetHistory(context.Background(), "c1", 1, 3)
	require.NoError(t, err)
	require.Len(t, first.Entries, 3)
	require.Equal(t, int64(2), first.TotalPages)
	require.Equal(t, int64(4), first.Entries[0].Seq)

	second, err := uc.GetHistory(context.Background(), "c1", 2, 3)
	require.NoError(t, err)
	require.Len(t, second.Entries, 1)
	require.Equal(t, int64(2), second.TotalPages)
	require.Equal(t, int64(1), second.Entries[0].Seq)

	beyond, err := uc.GetHistory(context.Background(), "c1", 3, 3)
	require.NoError(t, err)
	require.Empty(t, beyond.Entries)
	require.Equal(t, int64(2), beyond.TotalPages)
}

func TestGetHistory_NotFound(t *testing.T) {
	uc := newTestUsecase(newFakeStore(), baseTime)

	_, err := uc.GetHistory(context.Background(), "missing", 1, 5)
	require.ErrorIs(t, err, entities.ErrCandidateNotFound)
}

func TestGetHistory_EmptyID(t *testing.T) {
	uc := newTestUsecase(newFakeStore(), baseTime)

	_, err := uc.GetHistory(context.Background(), "", 1, 5)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
