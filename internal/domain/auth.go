package domain

import "context"

// RoleOwner is the single identity permitted to mutate content.
const RoleOwner = "owner"

type AuthUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthUsecase interface {
	// Login verifies the owner credentials and returns a bearer token valid
	// for 24 hours.
	Login(ctx context.Context, email, password string) (string, *AuthUser, error)
	// HashPassword produces a bcrypt hash suitable for OWNER_PASSWORD_HASH.
	HashPassword(password string) (string, error)
}
