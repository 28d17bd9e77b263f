package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"candidate-pipeline/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	candidateColumns = `id, status, positions, submission_date,
interview_datetime, interview_location, interview_type, confirmation_status, proposed_slots,
evaluation_rating, offer_details, offer_response_date, notes, version, created_at, updated_at`

	insertCandidateQuery = `INSERT INTO candidates
(id, status, positions, submission_date, confirmation_status, proposed_slots, notes, version)
VALUES ($1, $2, $3, $4, $5, '[]', $6, 1)
RETURNING ` + candidateColumns

	selectCandidateQuery = `SELECT ` + candidateColumns + ` FROM candidates WHERE id=$1`

	selectVersionForUpdateQuery = `SELECT version FROM candidates WHERE id=$1 FOR UPDATE`

	updateCandidateQuery = `UPDATE candidates SET
status=$2, interview_datetime=$3, interview_location=$4, interview_type=$5,
confirmation_status=$6, proposed_slots=$7, evaluation_rating=$8, offer_details=$9,
offer_response_date=$10, notes=$11, version=$12, updated_at=NOW()
WHERE id=$1
RETURNING ` + candidateColumns
)

// CreateCandidate inserts a new record together with its first history entry.
func (p *Postgres) CreateCandidate(ctx context.Context, rec entities.Candidate, entry entities.HistoryEntry) (res *entities.Candidate, err error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, insertCandidateQuery,
		rec.ID, rec.Status, rec.Positions, rec.SubmissionDate, rec.ConfirmationStatus, rec.Notes)
	created, err := scanCandidate(row)
	if err != nil {
		var pgErr *pgconn.PgError
		p.log.Errorw("failed to insert candidate", "error", err, "candidate_id", rec.ID)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: candidate id already exists", entities.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("insert candidate: %w", err)
	}

	if err := p.appendHistory(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("candidate created", "candidate_id", created.ID, "status", created.Status)
	return created, nil
}

// GetCandidate returns the record for id.
func (p *Postgres) GetCandidate(ctx context.Context, id string) (*entities.Candidate, error) {
	row := p.db.QueryRow(ctx, selectCandidateQuery, id)
	rec, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCandidateNotFound
		}
		p.log.Errorw("failed to select candidate", "error", err, "candidate_id", id)
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return rec, nil
}

// SaveCandidate commits a mutated record and its history entry atomically.
// The row is locked first and the stored version compared against
// expectedVersion, so concurrent writers holding the same version lose with
// entities.ErrConcurrentModification instead of overwriting each other.
func (p *Postgres) SaveCandidate(ctx context.Context, rec entities.Candidate, entry entities.HistoryEntry, expectedVersion int64) (res *entities.Candidate, err error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var stored int64
	if err := tx.QueryRow(ctx, selectVersionForUpdateQuery, rec.ID).Scan(&stored); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCandidateNotFound
		}
		p.log.Errorw("failed to lock candidate", "error", err, "candidate_id", rec.ID)
		return nil, fmt.Errorf("lock candidate: %w", err)
	}
	if stored != expectedVersion {
		return nil, &entities.VersionError{CandidateID: rec.ID, Expected: expectedVersion, Actual: stored}
	}

	slots, err := json.Marshal(rec.ProposedSlots)
	if err != nil {
		return nil, fmt.Errorf("marshal slots: %w", err)
	}

	row := tx.QueryRow(ctx, updateCandidateQuery,
		rec.ID, rec.Status, rec.InterviewDatetime, rec.InterviewLocation, rec.InterviewType,
		rec.ConfirmationStatus, slots, rec.EvaluationRating, rec.OfferDetails,
		rec.OfferResponseDate, rec.Notes, rec.Version)
	updated, err := scanCandidate(row)
	if err != nil {
		p.log.Errorw("failed to update candidate", "error", err, "candidate_id", rec.ID)
		return nil, fmt.Errorf("update candidate: %w", err)
	}

	if err := p.appendHistory(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("candidate saved", "candidate_id", updated.ID, "status", updated.Status, "version", updated.Version)
	return updated, nil
}

// ListCandidates returns a page of records matching the filter plus the total
// match count.
func (p *Postgres) ListCandidates(ctx context.Context, filter entities.CandidateFilter) ([]entities.Candidate, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	where := ` WHERE 1=1`
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(` AND status=$%d`, len(args))
	}
	if filter.Position != "" {
		args = append(args, filter.Position)
		where += fmt.Sprintf(` AND $%d = ANY(positions)`, len(args))
	}

	countArgs := append([]any{}, args...)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	listSQL := `SELECT ` + candidateColumns + ` FROM candidates` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := p.db.Query(ctx, listSQL, args...)
	if err != nil {
		p.log.Errorw("failed to list candidates", "error", err)
		return nil, 0, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	records := make([]entities.Candidate, 0)
	for rows.Next() {
		rec, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count candidates: %w", err)
	}

	return records, total, nil
}

func scanCandidate(row pgx.Row) (*entities.Candidate, error) {
	var rec entities.Candidate
	var slots []byte
	if err := row.Scan(
		&rec.ID, &rec.Status, &rec.Positions, &rec.SubmissionDate,
		&rec.InterviewDatetime, &rec.InterviewLocation, &rec.InterviewType,
		&rec.ConfirmationStatus, &slots,
		&rec.EvaluationRating, &rec.OfferDetails, &rec.OfferResponseDate,
		&rec.Notes, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(slots) > 0 {
		if err := json.Unmarshal(slots, &rec.ProposedSlots); err != nil {
			return nil, fmt.Errorf("unmarshal slots: %w", err)
		}
	}
	if len(rec.ProposedSlots) == 0 {
		rec.ProposedSlots = nil
	}
	return &rec, nil
}
