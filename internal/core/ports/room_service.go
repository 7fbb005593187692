package ports

import (
	"context"

	"github.com/kosapp/kos-api/internal/core/domain"
)

// CreateRoomInput carries all data needed to register a new room.
type CreateRoomInput struct {
	Principal   domain.Principal
	Number      string
	Type        string
	MonthlyRate int64
	Status      string // empty = available
	Amenities   []string
	RenterID    string // optional occupant
}

// UpdateRoomInput is a partial patch; nil fields are left unchanged.
type UpdateRoomInput struct {
	Principal   domain.Principal
	ID          string
	Number      *string
	Type        *string
	MonthlyRate *int64
	Status      *string
	Amenities   *[]string
	RenterID    *string
}

// ListRoomsInput carries the parameters for the room list endpoint.
type ListRoomsInput struct {
	Principal domain.Principal
	Status    string
	Type      string
}

// RoomService defines use-case operations for the room registry.
type RoomService interface {
	Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	Update(ctx context.Context, input UpdateRoomInput) (*domain.Room, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
	Get(ctx context.Context, principal domain.Principal, id string) (*domain.Room, error)
	List(ctx context.Context, input ListRoomsInput) ([]*domain.Room, error)
	Statistics(ctx context.Context, principal domain.Principal) (*domain.OccupancyStats, error)
}
