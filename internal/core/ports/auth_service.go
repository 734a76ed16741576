package ports

import (
	"context"

	"github.com/workspherex/workforce-api/internal/core/domain"
)

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Employee, error)
	Login(ctx context.Context, email, password string) (string, *domain.Employee, error)
	// Logout revokes the given token until its natural expiry. Idempotent.
	Logout(ctx context.Context, token string) error
}
