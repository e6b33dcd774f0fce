package repository

import (
	"context"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/match"

	"github.com/google/uuid"
)

var (
	ErrMatchNotFound = errors.New("match record not found")
	// ErrStateConflict reports a lost compare-and-set race: the stored state
	// was no longer the expected one.
	ErrStateConflict = errors.New("match state conflict")
)

type MatchRecordRepository interface {
	// FindOrCreate returns the single record for the pair, creating it in
	// Pending if absent. Atomic with respect to concurrent callers.
	FindOrCreate(ctx context.Context, adID, resumeID uuid.UUID) (match.Record, bool, error)
	GetByPair(ctx context.Context, adID, resumeID uuid.UUID) (match.Record, error)
	// UpdateState advances id from one state to another, failing with
	// ErrStateConflict when the stored state differs from `from`.
	UpdateState(ctx context.Context, id uuid.UUID, from, to match.State) error
	ListForAd(ctx context.Context, adID uuid.UUID, states ...match.State) ([]match.Record, error)
	ListForResume(ctx context.Context, resumeID uuid.UUID, states ...match.State) ([]match.Record, error)
	DeleteForAd(ctx context.Context, adID uuid.UUID) (int64, error)
	DeleteForResume(ctx context.Context, resumeID uuid.UUID) (int64, error)
}

type PostgresMatchRecordRepository struct {
	db database.DB
}

func NewPostgresMatchRecordRepository(db database.DB) *PostgresMatchRecordRepository {
	return &PostgresMatchRecordRepository{db: db}
}

func (r *PostgresMatchRecordRepository) FindOrCreate(ctx context.Context, adID, resumeID uuid.UUID) (match.Record, bool, error) {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO match_records (id, ad_id, resume_id, state)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (ad_id, resume_id) DO NOTHING`,
		uuid.New(), adID, resumeID, match.StatePending,
	)
	if err != nil {
		return match.Record{}, false, err
	}

	rec, err := r.GetByPair(ctx, adID, resumeID)
	if err != nil {
		return match.Record{}, false, err
	}
	return rec, affected > 0, nil
}

func (r *PostgresMatchRecordRepository) GetByPair(ctx context.Context, adID, resumeID uuid.UUID) (match.Record, error) {
	var rec match.Record
	err := r.db.QueryRow(ctx,
		`SELECT id, ad_id, resume_id, state, created_at
		 FROM match_records WHERE ad_id = $1 AND resume_id = $2`,
		adID, resumeID,
	).Scan(&rec.ID, &rec.AdID, &rec.ResumeID, &rec.State, &rec.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return match.Record{}, ErrMatchNotFound
		}
		return match.Record{}, err
	}
	return rec, nil
}

func (r *PostgresMatchRecordRepository) UpdateState(ctx context.Context, id uuid.UUID, from, to match.State) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE match_records SET state = $3 WHERE id = $1 AND state = $2`,
		id, from, to,
	)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM match_records WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrMatchNotFound
	}
	return ErrStateConflict
}

func (r *PostgresMatchRecordRepository) ListForAd(ctx context.Context, adID uuid.UUID, states ...match.State) ([]match.Record, error) {
	return r.list(ctx, "ad_id", adID, states)
}

func (r *PostgresMatchRecordRepository) ListForResume(ctx context.Context, resumeID uuid.UUID, states ...match.State) ([]match.Record, error) {
	return r.list(ctx, "resume_id", resumeID, states)
}

func (r *PostgresMatchRecordRepository) DeleteForAd(ctx context.Context, adID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM match_records WHERE ad_id = $1`, adID)
}

func (r *PostgresMatchRecordRepository) DeleteForResume(ctx context.Context, resumeID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM match_records WHERE resume_id = $1`, resumeID)
}

func (r *PostgresMatchRecordRepository) list(ctx context.Context, column string, id uuid.UUID, states []match.State) ([]match.Record, error) {
	query := `SELECT id, ad_id, resume_id, state, created_at FROM match_records WHERE ` + column + ` = $1`
	args := []any{id}
	if len(states) > 0 {
		query += ` AND state = ANY($2)`
		ss := make([]string, 0, len(states))
		for _, s := range states {
			ss = append(ss, string(s))
		}
		args = append(args, ss)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Record, 0)
	for rows.Next() {
		var rec match.Record
		if err := rows.Scan(&rec.ID, &rec.AdID, &rec.ResumeID, &rec.State, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
