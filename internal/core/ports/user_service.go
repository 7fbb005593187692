package ports

import (
	"context"

	"github.com/kosapp/kos-api/internal/core/domain"
)

// CreateUserInput carries all data needed to register a renter account.
// The role is always penyewa; admins are created through registration only.
type CreateUserInput struct {
	Principal domain.Principal
	Name      string
	Email     string
	Password  string
	Phone     string
}

// UpdateUserInput is a partial patch; nil fields are left unchanged.
// Role is immutable after creation.
type UpdateUserInput struct {
	Principal domain.Principal
	ID        string
	Name      *string
	Email     *string
	Password  *string
	Phone     *string
}

// UserService defines admin use-case operations over renter accounts.
type UserService interface {
	List(ctx context.Context, principal domain.Principal) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, principal domain.Principal, id string) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
}
