package ports

import (
	"context"

	"github.com/kosapp/kos-api/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListByRole returns users with the given role, ordered by name.
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
}
