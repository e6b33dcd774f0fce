package jwt

import (
	"errors"
	"testing"
	"time"

	"jobmatch/internal/domain/account"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	accountID := uuid.New()

	tok, err := svc.GenerateAccessToken(accountID, account.RoleCompany)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.AccountID != accountID {
		t.Fatalf("account id = %s, want %s", claims.AccountID, accountID)
	}
	if claims.Role != account.RoleCompany {
		t.Fatalf("role = %s, want %s", claims.Role, account.RoleCompany)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("token type = %s, want %s", claims.TokenType, TokenTypeAccess)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatal("access token classified as refresh")
	}
}

func TestRefreshTokenClassification(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	tok, err := svc.GenerateRefreshToken(uuid.New(), account.RoleProfessional)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatal("refresh token not classified as refresh")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), account.RoleCompany)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want %v", err, ErrTokenExpired)
	}
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	issuer := NewHMACService("one-secret", "one-refresh", time.Hour, 24*time.Hour)
	verifier := NewHMACService("other-secret", "other-refresh", time.Hour, 24*time.Hour)

	tok, err := issuer.GenerateAccessToken(uuid.New(), account.RoleCompany)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := verifier.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want %v", err, ErrTokenInvalid)
	}
}
