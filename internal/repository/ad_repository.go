package repository

import (
	"context"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/ad"
	"jobmatch/internal/domain/skill"

	"github.com/google/uuid"
)

var ErrAdNotFound = errors.New("ad not found")

type AdRepository interface {
	Create(ctx context.Context, a ad.Ad) error
	GetByID(ctx context.Context, id uuid.UUID) (ad.Ad, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]ad.Ad, error)
	ListAll(ctx context.Context) ([]ad.Ad, error)
	Update(ctx context.Context, a ad.Ad) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddSkill(ctx context.Context, adID, skillID uuid.UUID) error
	RemoveSkill(ctx context.Context, adID, skillID uuid.UUID) error
}

type PostgresAdRepository struct {
	db database.DB
}

func NewPostgresAdRepository(db database.DB) *PostgresAdRepository {
	return &PostgresAdRepository{db: db}
}

func (r *PostgresAdRepository) Create(ctx context.Context, a ad.Ad) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ads (id, company_id, description, location, min_salary, max_salary)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.CompanyID, a.Description, a.Location, a.MinSalary, a.MaxSalary,
	)
	return err
}

func (r *PostgresAdRepository) GetByID(ctx context.Context, id uuid.UUID) (ad.Ad, error) {
	var a ad.Ad
	err := r.db.QueryRow(ctx,
		`SELECT id, company_id, description, location, min_salary, max_salary, created_at
		 FROM ads WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.CompanyID, &a.Description, &a.Location, &a.MinSalary, &a.MaxSalary, &a.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return ad.Ad{}, ErrAdNotFound
		}
		return ad.Ad{}, err
	}

	a.Skills, err = r.skillSet(ctx, a.ID)
	if err != nil {
		return ad.Ad{}, err
	}
	return a, nil
}

func (r *PostgresAdRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]ad.Ad, error) {
	return r.list(ctx,
		`SELECT id, company_id, description, location, min_salary, max_salary, created_at
		 FROM ads WHERE company_id = $1 ORDER BY created_at DESC`,
		companyID,
	)
}

func (r *PostgresAdRepository) ListAll(ctx context.Context) ([]ad.Ad, error) {
	return r.list(ctx,
		`SELECT id, company_id, description, location, min_salary, max_salary, created_at
		 FROM ads ORDER BY created_at DESC`,
	)
}

func (r *PostgresAdRepository) Update(ctx context.Context, a ad.Ad) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE ads SET description = $2, location = $3, min_salary = $4, max_salary = $5
		 WHERE id = $1`,
		a.ID, a.Description, a.Location, a.MinSalary, a.MaxSalary,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAdNotFound
	}
	return nil
}

// Delete removes the ad and its skill references. Match records must be
// cascaded by the caller first; the match_records foreign key has no cascade
// so a forgotten cleanup fails loudly instead of silently dropping history.
func (r *PostgresAdRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAdNotFound
	}
	return nil
}

func (r *PostgresAdRepository) AddSkill(ctx context.Context, adID, skillID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ad_skills (ad_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		adID, skillID,
	)
	if err != nil && isForeignKeyViolation(err) {
		return ErrSkillNotFound
	}
	return err
}

func (r *PostgresAdRepository) RemoveSkill(ctx context.Context, adID, skillID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM ad_skills WHERE ad_id = $1 AND skill_id = $2`,
		adID, skillID,
	)
	return err
}

func (r *PostgresAdRepository) list(ctx context.Context, query string, args ...any) ([]ad.Ad, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ad.Ad, 0)
	for rows.Next() {
		var a ad.Ad
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.Description, &a.Location, &a.MinSalary, &a.MaxSalary, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].Skills, err = r.skillSet(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *PostgresAdRepository) skillSet(ctx context.Context, adID uuid.UUID) (skill.Set, error) {
	rows, err := r.db.Query(ctx, `SELECT skill_id FROM ad_skills WHERE ad_id = $1`, adID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := skill.NewSet()
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		set.Add(id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return set, nil
}
