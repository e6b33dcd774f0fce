package usecase

import (
	"context"
	"errors"
	"strings"

	"jobmatch/internal/domain/account"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterCompanyInput struct {
	Email    string
	Password string
	Name     string
	Location string
}

type RegisterProfessionalInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Location  string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase interface {
	RegisterCompany(ctx context.Context, in RegisterCompanyInput) (TokenPair, error)
	RegisterProfessional(ctx context.Context, in RegisterProfessionalInput) (TokenPair, error)
	Login(ctx context.Context, email, password string) (TokenPair, error)
}

type Auth struct {
	accounts      repository.AccountRepository
	companies     repository.CompanyRepository
	professionals repository.ProfessionalRepository
	jwt           jwt.Service
}

func NewAuthUsecase(
	accounts repository.AccountRepository,
	companies repository.CompanyRepository,
	professionals repository.ProfessionalRepository,
	jwtSvc jwt.Service,
) *Auth {
	return &Auth{accounts: accounts, companies: companies, professionals: professionals, jwt: jwtSvc}
}

func (u *Auth) RegisterCompany(ctx context.Context, in RegisterCompanyInput) (TokenPair, error) {
	acc, err := u.createAccount(ctx, in.Email, in.Password, account.RoleCompany)
	if err != nil {
		return TokenPair{}, err
	}

	c := account.Company{
		ID:        uuid.New(),
		AccountID: acc.ID,
		Name:      strings.TrimSpace(in.Name),
		Location:  strings.TrimSpace(in.Location),
	}
	if c.Name == "" {
		return TokenPair{}, ErrInvalidInput
	}
	if err := u.companies.Create(ctx, c); err != nil {
		return TokenPair{}, ErrUnavailable
	}

	return u.tokens(acc)
}

func (u *Auth) RegisterProfessional(ctx context.Context, in RegisterProfessionalInput) (TokenPair, error) {
	acc, err := u.createAccount(ctx, in.Email, in.Password, account.RoleProfessional)
	if err != nil {
		return TokenPair{}, err
	}

	p := account.Professional{
		ID:        uuid.New(),
		AccountID: acc.ID,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Location:  strings.TrimSpace(in.Location),
	}
	if p.FirstName == "" || p.LastName == "" {
		return TokenPair{}, ErrInvalidInput
	}
	if err := u.professionals.Create(ctx, p); err != nil {
		return TokenPair{}, ErrUnavailable
	}

	return u.tokens(acc)
}

func (u *Auth) Login(ctx context.Context, email, password string) (TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return TokenPair{}, ErrInvalidCredentials
	}

	acc, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, ErrUnavailable
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	return u.tokens(acc)
}

func (u *Auth) createAccount(ctx context.Context, email, password string, role account.Role) (account.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return account.Account{}, ErrInvalidInput
	}
	if len(password) < 8 {
		return account.Account{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, ErrInternal
	}

	acc := account.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := u.accounts.Create(ctx, acc); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return account.Account{}, ErrEmailTaken
		}
		return account.Account{}, ErrUnavailable
	}
	return acc, nil
}

func (u *Auth) tokens(acc account.Account) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Role)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(acc.ID, acc.Role)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
