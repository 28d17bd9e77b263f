package domain

import (
	"context"
	"fmt"
	"sync"

	"candidate-pipeline/internal/entities"
)

// fakeStore is an in-memory repository honouring the store contract: the
// record write and the history append are one atomic unit guarded by a mutex,
// stale versions are rejected, and history timestamps must not go backwards.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]entities.Candidate
	history map[string][]entities.HistoryEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: make(map[string]entities.Candidate),
		history: make(map[string][]entities.HistoryEntry),
	}
}

func (s *fakeStore) OnStart(_ context.Context) error { return nil }
func (s *fakeStore) OnStop(_ context.Context) error  { return nil }

func (s *fakeStore) CreateCandidate(_ context.Context, rec entities.Candidate, entry entities.HistoryEntry) (*entities.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ID]; exists {
		return nil, fmt.Errorf("%w: duplicate candidate id", entities.ErrInvalidArgument)
	}
	entry.Seq = 1
	s.records[rec.ID] = cloneCandidate(rec)
	s.history[rec.ID] = []entities.HistoryEntry{entry}
	out := cloneCandidate(rec)
	return &out, nil
}

func (s *fakeStore) GetCandidate(_ context.Context, id string) (*entities.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, entities.ErrCandidateNotFound
	}
	out := cloneCandidate(rec)
	return &out, nil
}

func (s *fakeStore) SaveCandidate(_ context.Context, rec entities.Candidate, entry entities.HistoryEntry, expectedVersion int64) (*entities.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.records[rec.ID]
	if !ok {
		return nil, entities.ErrCandidateNotFound
	}
	if stored.Version != expectedVersion {
		return nil, &entities.VersionError{CandidateID: rec.ID, Expected: expectedVersion, Actual: stored.Version}
	}

	log := s.history[rec.ID]
	if n := len(log); n > 0 && entry.Timestamp.Before(log[n-1].Timestamp) {
		return nil, fmt.Errorf("%w: entry precedes tail", entities.ErrClockInvariant)
	}

	entry.Seq = int64(len(log)) + 1
	s.records[rec.ID] = cloneCandidate(rec)
	s.history[rec.ID] = append(log, entry)
	out := cloneCandidate(rec)
	return &out, nil
}

func (s *fakeStore) ListCandidates(_ context.Context, filter entities.CandidateFilter) ([]entities.Candidate, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]entities.Candidate, 0, len(s.records))
	for _, rec := range s.records {
		if filter.Status != nil && rec.Status != *filter.Status {
			continue
		}
		if filter.Position != "" && !contains(rec.Positions, filter.Position) {
			continue
		}
		res = append(res, cloneCandidate(rec))
	}
	return res, int64(len(res)), nil
}

func (s *fakeStore) ListHistory(_ context.Context, candidateID string, page, pageSize int) ([]entities.HistoryEntry, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.history[candidateID]
	total := int64(len(log))

	// most recent first
	reversed := make([]entities.HistoryEntry, len(log))
	for i, e := range log {
		reversed[len(log)-1-i] = e
	}

	start := (page - 1) * pageSize
	if start >= len(reversed) {
		return []entities.HistoryEntry{}, total, nil
	}
	end := start + pageSize
	if end > len(reversed) {
		end = len(reversed)
	}
	return reversed[start:end], total, nil
}

// historyLen reports the current audit trail length outside the contract, for
// invariant assertions.
func (s *fakeStore) historyLen(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history[id])
}

// lastEntry returns the newest audit entry for invariant assertions.
func (s *fakeStore) lastEntry(id string) entities.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.history[id]
	return log[len(log)-1]
}

func cloneCandidate(rec entities.Candidate) entities.Candidate {
	out := rec
	out.Positions = append([]string(nil), rec.Positions...)
	out.ProposedSlots = append([]entities.Slot(nil), rec.ProposedSlots...)
	return out
}

func contains(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}
