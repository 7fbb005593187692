package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kosapp/kos-api/internal/core/domain"
	"github.com/kosapp/kos-api/internal/core/ports"
)

// UserService implements admin management of renter accounts.
type UserService struct {
	users  ports.UserRepository
	rooms  ports.RoomRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, rooms ports.RoomRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, rooms: rooms, logger: logger}
}

// List returns all renter accounts, ordered by name.
func (s *UserService) List(ctx context.Context, principal domain.Principal) ([]*domain.User, error) {
	if !domain.Allowed(principal.Role, domain.ActionUserManage) {
		return nil, domain.ErrForbidden
	}
	return s.users.ListByRole(ctx, domain.RolePenyewa)
}

// Create adds a renter account. The role is forced to penyewa regardless of
// the payload; admins only ever come from registration.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !domain.Allowed(input.Principal.Role, domain.ActionUserManage) {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RolePenyewa,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("renter created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, principal domain.Principal, id string) (*domain.User, error) {
	if !domain.Allowed(principal.Role, domain.ActionUserManage) {
		return nil, domain.ErrForbidden
	}
	return s.users.FindByID(ctx, id)
}

// Update applies a partial patch to a renter account. The role never changes.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if !domain.Allowed(input.Principal.Role, domain.ActionUserManage) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
		}
		user.Name = *input.Name
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("renter updated")
	return user, nil
}

// Delete removes a renter account unless the renter still occupies a room.
func (s *UserService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	if !domain.Allowed(principal.Role, domain.ActionUserManage) {
		return domain.ErrForbidden
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	occupied, err := s.rooms.ExistsOccupiedByRenter(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if occupied {
		return domain.ErrUserOccupiesRoom
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("renter deleted")
	return nil
}
