package postgres

import (
	"context"
	"fmt"
	"time"

	"candidate-pipeline/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectLastHistoryQuery = `SELECT COALESCE(MAX(seq), 0), COALESCE(MAX(ts), 'epoch'::timestamptz)
FROM candidate_history WHERE candidate_id=$1`

	insertHistoryQuery = `INSERT INTO candidate_history
(candidate_id, seq, ts, status, previous_status, notes, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectHistoryQuery = `SELECT candidate_id, seq, ts, status, previous_status, notes, updated_by
FROM candidate_history WHERE candidate_id=$1 ORDER BY seq DESC LIMIT $2 OFFSET $3`

	countHistoryQuery = `SELECT COUNT(*) FROM candidate_history WHERE candidate_id=$1`
)

// appendHistory writes the next audit entry inside the caller's transaction.
// Existing entries are never touched; the append fails with
// entities.ErrClockInvariant if the entry timestamp precedes the last one.
func (p *Postgres) appendHistory(ctx context.Context, tx pgx.Tx, entry entities.HistoryEntry) error {
	var lastSeq int64
	var lastTS time.Time
	if err := tx.QueryRow(ctx, selectLastHistoryQuery, entry.CandidateID).Scan(&lastSeq, &lastTS); err != nil {
		p.log.Errorw("failed to read history tail", "error", err, "candidate_id", entry.CandidateID)
		return fmt.Errorf("read history tail: %w", err)
	}
	if entry.Timestamp.Before(lastTS) {
		return fmt.Errorf("%w: entry at %s precedes tail at %s",
			entities.ErrClockInvariant, entry.Timestamp.UTC(), lastTS.UTC())
	}

	if _, err := tx.Exec(ctx, insertHistoryQuery,
		entry.CandidateID, lastSeq+1, entry.Timestamp, entry.Status,
		entry.PreviousStatus, entry.Notes, entry.UpdatedBy); err != nil {
		p.log.Errorw("failed to append history", "error", err, "candidate_id", entry.CandidateID)
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// ListHistory returns one page of a candidate's audit trail, most recent
// first, plus the total entry count.
func (p *Postgres) ListHistory(ctx context.Context, candidateID string, page, pageSize int) ([]entities.HistoryEntry, int64, error) {
	rows, err := p.db.Query(ctx, selectHistoryQuery, candidateID, pageSize, (page-1)*pageSize)
	if err != nil {
		p.log.Errorw("failed to list history", "error", err, "candidate_id", candidateID)
		return nil, 0, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.HistoryEntry, 0, pageSize)
	for rows.Next() {
		var e entities.HistoryEntry
		if err := rows.Scan(&e.CandidateID, &e.Seq, &e.Timestamp, &e.Status, &e.PreviousStatus, &e.Notes, &e.UpdatedBy); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := p.db.QueryRow(ctx, countHistoryQuery, candidateID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count history: %w", err)
	}

	return entries, total, nil
}
