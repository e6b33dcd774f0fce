package seeder

import (
	"context"
	"fmt"

	"jobmatch/internal/database"
)

// SkillsSeeder installs a starter catalog so fresh installs have something to
// attach to ads and resumes. Existing names are left untouched.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"Go",
		"Python",
		"JavaScript",
		"TypeScript",
		"SQL",
		"PostgreSQL",
		"Redis",
		"Docker",
		"Kubernetes",
		"AWS",
	}

	for _, name := range names {
		_, err := tx.Exec(ctx,
			`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1)
			 ON CONFLICT (lower(name)) DO NOTHING`,
			name,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
