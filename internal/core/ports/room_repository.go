package ports

import (
	"context"

	"github.com/kosapp/kos-api/internal/core/domain"
)

// RoomFilter carries the optional query parameters for listing rooms.
type RoomFilter struct {
	Status string // optional: filter by room status
	Type   string // optional: filter by room type
}

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	// List returns rooms matching filter, ordered by room number.
	List(ctx context.Context, filter RoomFilter) ([]*domain.Room, error)
	// OccupancyStats aggregates room counts per status and the potential
	// monthly revenue over occupied rooms in a single snapshot read.
	OccupancyStats(ctx context.Context) (*domain.OccupancyStats, error)
	// ExistsOccupiedByRenter reports whether the renter currently occupies
	// any room (guards renter deletion).
	ExistsOccupiedByRenter(ctx context.Context, renterID string) (bool, error)
}
