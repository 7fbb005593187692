package ports

import (
	"context"

	"github.com/kosapp/kos-api/internal/core/domain"
)

// RegisterInput carries the self-registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

// UpdateProfileInput is a partial patch over the caller's own profile.
type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

// AuthService implements registration, login, and profile self-service.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout invalidates the presented token until its natural expiry.
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, principal domain.Principal) (*domain.User, error)
	UpdateProfile(ctx context.Context, principal domain.Principal, input UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, principal domain.Principal, oldPassword, newPassword string) error
}
