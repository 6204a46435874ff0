package usecase

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/auth"
)

// genHashCost is deliberately higher than bcrypt.DefaultCost; the hash is
// generated once at setup time, never per request.
const genHashCost = 12

type authUsecase struct {
	cfg *config.Config
}

func NewAuthUsecase(cfg *config.Config) domain.AuthUsecase {
	return &authUsecase{cfg: cfg}
}

// Login verifies the single owner identity sourced from configuration.
// Email comparison is case-insensitive; the password is checked against the
// pre-hashed credential. No user table is involved.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.AuthUser, error) {
	if email == "" || password == "" {
		return "", nil, apperror.BadRequest("Please provide email and password")
	}

	if u.cfg.OwnerEmail == "" || u.cfg.OwnerPasswordHash == "" {
		return "", nil, apperror.New(http.StatusInternalServerError, "Owner credentials not configured", nil)
	}

	if !strings.EqualFold(email, u.cfg.OwnerEmail) {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.cfg.OwnerPasswordHash), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := auth.GenerateToken(u.cfg.OwnerEmail, u.cfg.JWTSecret)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	return token, &domain.AuthUser{
		Email: u.cfg.OwnerEmail,
		Role:  domain.RoleOwner,
	}, nil
}

func (u *authUsecase) HashPassword(password string) (string, error) {
	if password == "" {
		return "", apperror.BadRequest("Please provide a password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), genHashCost)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return string(hash), nil
}
