package repository

import (
	"context"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/account"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email taken")
)

type AccountRepository interface {
	Create(ctx context.Context, a account.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (account.Account, error)
	GetByEmail(ctx context.Context, email string) (account.Account, error)
}

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a account.Account) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (id, email, password_hash, role) VALUES ($1, $2, $3, $4)`,
		a.ID, a.Email, a.PasswordHash, a.Role,
	)
	if err != nil && isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	return r.get(ctx,
		`SELECT id, email, password_hash, role, created_at, updated_at FROM accounts WHERE id = $1`, id)
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	return r.get(ctx,
		`SELECT id, email, password_hash, role, created_at, updated_at FROM accounts WHERE email = $1`, email)
}

func (r *PostgresAccountRepository) get(ctx context.Context, query string, arg any) (account.Account, error) {
	var a account.Account
	err := r.db.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return account.Account{}, ErrAccountNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}
