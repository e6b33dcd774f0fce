package repository

import (
	"context"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/account"

	"github.com/google/uuid"
)

var ErrProfessionalNotFound = errors.New("professional not found")

type ProfessionalRepository interface {
	Create(ctx context.Context, p account.Professional) error
	GetByID(ctx context.Context, id uuid.UUID) (account.Professional, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (account.Professional, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
}

type PostgresProfessionalRepository struct {
	db database.DB
}

func NewPostgresProfessionalRepository(db database.DB) *PostgresProfessionalRepository {
	return &PostgresProfessionalRepository{db: db}
}

func (r *PostgresProfessionalRepository) Create(ctx context.Context, p account.Professional) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO professionals (id, account_id, first_name, last_name, location, approved)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.AccountID, p.FirstName, p.LastName, p.Location, p.Approved,
	)
	return err
}

func (r *PostgresProfessionalRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Professional, error) {
	return r.get(ctx,
		`SELECT id, account_id, first_name, last_name, location, approved, created_at
		 FROM professionals WHERE id = $1`, id)
}

func (r *PostgresProfessionalRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (account.Professional, error) {
	return r.get(ctx,
		`SELECT id, account_id, first_name, last_name, location, approved, created_at
		 FROM professionals WHERE account_id = $1`, accountID)
}

func (r *PostgresProfessionalRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	affected, err := r.db.Exec(ctx, `UPDATE professionals SET approved = $2 WHERE id = $1`, id, approved)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfessionalNotFound
	}
	return nil
}

func (r *PostgresProfessionalRepository) get(ctx context.Context, query string, arg any) (account.Professional, error) {
	var p account.Professional
	err := r.db.QueryRow(ctx, query, arg).Scan(&p.ID, &p.AccountID, &p.FirstName, &p.LastName, &p.Location, &p.Approved, &p.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return account.Professional{}, ErrProfessionalNotFound
		}
		return account.Professional{}, err
	}
	return p, nil
}
