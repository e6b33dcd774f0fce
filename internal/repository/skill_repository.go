package repository

import (
	"context"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrSkillNameTaken  = errors.New("skill name taken")
	ErrSkillReferenced = errors.New("skill still referenced")
)

type SkillRepository interface {
	Create(ctx context.Context, name string) (skill.Skill, error)
	List(ctx context.Context) ([]skill.Skill, error)
	Update(ctx context.Context, id uuid.UUID, name string) (skill.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) Create(ctx context.Context, name string) (skill.Skill, error) {
	id := uuid.New()
	var s skill.Skill
	err := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name) VALUES ($1, $2) RETURNING id, name, created_at`,
		id, name,
	).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return skill.Skill{}, ErrSkillNameTaken
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) Update(ctx context.Context, id uuid.UUID, name string) (skill.Skill, error) {
	var s skill.Skill
	err := r.db.QueryRow(ctx,
		`UPDATE skills SET name = $2 WHERE id = $1 RETURNING id, name, created_at`,
		id, name,
	).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return skill.Skill{}, ErrSkillNameTaken
		}
		if isNoRows(err) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

// Delete refuses to remove a skill any skill set still references: the
// ad_skills/resume_skills foreign keys have no cascade, so the violation maps
// to ErrSkillReferenced.
func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrSkillReferenced
		}
		return err
	}
	if affected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *PostgresSkillRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM skills WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
