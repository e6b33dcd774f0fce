package repository

import (
	"context"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/account"

	"github.com/google/uuid"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	Create(ctx context.Context, c account.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (account.Company, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (account.Company, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c account.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, account_id, name, location, approved) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.AccountID, c.Name, c.Location, c.Approved,
	)
	return err
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Company, error) {
	return r.get(ctx,
		`SELECT id, account_id, name, location, approved, created_at FROM companies WHERE id = $1`, id)
}

func (r *PostgresCompanyRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (account.Company, error) {
	return r.get(ctx,
		`SELECT id, account_id, name, location, approved, created_at FROM companies WHERE account_id = $1`, accountID)
}

func (r *PostgresCompanyRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	affected, err := r.db.Exec(ctx, `UPDATE companies SET approved = $2 WHERE id = $1`, id, approved)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) get(ctx context.Context, query string, arg any) (account.Company, error) {
	var c account.Company
	err := r.db.QueryRow(ctx, query, arg).Scan(&c.ID, &c.AccountID, &c.Name, &c.Location, &c.Approved, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return account.Company{}, ErrCompanyNotFound
		}
		return account.Company{}, err
	}
	return c, nil
}
