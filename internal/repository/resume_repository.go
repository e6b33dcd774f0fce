package repository

import (
	"context"
	"errors"
	"fmt"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/resume"
	"jobmatch/internal/domain/skill"

	"github.com/google/uuid"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(ctx context.Context, res resume.Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	ListByProfessional(ctx context.Context, professionalID uuid.UUID) ([]resume.Resume, error)
	ListAll(ctx context.Context) ([]resume.Resume, error)
	Update(ctx context.Context, res resume.Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetMain(ctx context.Context, professionalID, resumeID uuid.UUID) error
	AddSkill(ctx context.Context, resumeID, skillID uuid.UUID) error
	RemoveSkill(ctx context.Context, resumeID, skillID uuid.UUID) error
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Create(ctx context.Context, res resume.Resume) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resumes (id, professional_id, description, location, min_salary, max_salary, is_main)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID, res.ProfessionalID, res.Description, res.Location, res.MinSalary, res.MaxSalary, res.Main,
	)
	return err
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	var res resume.Resume
	err := r.db.QueryRow(ctx,
		`SELECT id, professional_id, description, location, min_salary, max_salary, is_main, created_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&res.ID, &res.ProfessionalID, &res.Description, &res.Location, &res.MinSalary, &res.MaxSalary, &res.Main, &res.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, err
	}

	res.Skills, err = r.skillSet(ctx, res.ID)
	if err != nil {
		return resume.Resume{}, err
	}
	return res, nil
}

func (r *PostgresResumeRepository) ListByProfessional(ctx context.Context, professionalID uuid.UUID) ([]resume.Resume, error) {
	return r.list(ctx,
		`SELECT id, professional_id, description, location, min_salary, max_salary, is_main, created_at
		 FROM resumes WHERE professional_id = $1 ORDER BY created_at DESC`,
		professionalID,
	)
}

func (r *PostgresResumeRepository) ListAll(ctx context.Context) ([]resume.Resume, error) {
	return r.list(ctx,
		`SELECT id, professional_id, description, location, min_salary, max_salary, is_main, created_at
		 FROM resumes ORDER BY created_at DESC`,
	)
}

func (r *PostgresResumeRepository) Update(ctx context.Context, res resume.Resume) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE resumes SET description = $2, location = $3, min_salary = $4, max_salary = $5
		 WHERE id = $1`,
		res.ID, res.Description, res.Location, res.MinSalary, res.MaxSalary,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *PostgresResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

// SetMain promotes one resume and demotes the professional's others in a
// single transaction, keeping the at-most-one-main invariant.
func (r *PostgresResumeRepository) SetMain(ctx context.Context, professionalID, resumeID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx,
		`UPDATE resumes SET is_main = FALSE WHERE professional_id = $1 AND is_main`,
		professionalID,
	); err != nil {
		return err
	}

	affected, err := tx.Exec(ctx,
		`UPDATE resumes SET is_main = TRUE WHERE id = $1 AND professional_id = $2`,
		resumeID, professionalID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResumeNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *PostgresResumeRepository) AddSkill(ctx context.Context, resumeID, skillID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resume_skills (resume_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		resumeID, skillID,
	)
	if err != nil && isForeignKeyViolation(err) {
		return ErrSkillNotFound
	}
	return err
}

func (r *PostgresResumeRepository) RemoveSkill(ctx context.Context, resumeID, skillID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM resume_skills WHERE resume_id = $1 AND skill_id = $2`,
		resumeID, skillID,
	)
	return err
}

func (r *PostgresResumeRepository) list(ctx context.Context, query string, args ...any) ([]resume.Resume, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		var res resume.Resume
		if err := rows.Scan(&res.ID, &res.ProfessionalID, &res.Description, &res.Location, &res.MinSalary, &res.MaxSalary, &res.Main, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
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

func (r *PostgresResumeRepository) skillSet(ctx context.Context, resumeID uuid.UUID) (skill.Set, error) {
	rows, err := r.db.Query(ctx, `SELECT skill_id FROM resume_skills WHERE resume_id = $1`, resumeID)
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
