package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kosapp/kos-api/internal/api/metrics"
	"github.com/kosapp/kos-api/internal/core/domain"
	"github.com/kosapp/kos-api/internal/core/ports"
)

// RoomService implements the room registry use-cases.
type RoomService struct {
	rooms    ports.RoomRepository
	payments ports.PaymentRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewRoomService(rooms ports.RoomRepository, payments ports.PaymentRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{
		rooms:    rooms,
		payments: payments,
		logger:   logger,
		now:      time.Now,
	}
}

// Create registers a new room. The room number must be unique (enforced by
// the store) and the monthly rate positive. Status defaults to available.
func (s *RoomService) Create(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	if !domain.Allowed(input.Principal.Role, domain.ActionRoomCreate) {
		return nil, domain.ErrForbidden
	}

	if input.Number == "" {
		return nil, fmt.Errorf("%w: room number is required", domain.ErrValidation)
	}
	if input.MonthlyRate <= 0 {
		return nil, fmt.Errorf("%w: monthly rate must be positive", domain.ErrValidation)
	}

	status := domain.RoomStatus(input.Status)
	if input.Status == "" {
		status = domain.RoomAvailable
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown room status %q", domain.ErrValidation, input.Status)
	}

	now := s.now().UTC()
	room := &domain.Room{
		Number:      input.Number,
		Type:        input.Type,
		MonthlyRate: input.MonthlyRate,
		Status:      status,
		Amenities:   input.Amenities,
		RenterID:    input.RenterID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.rooms.Create(ctx, room)
	if err != nil {
		return nil, err
	}

	metrics.RoomsCreatedTotal.WithLabelValues(created.Type).Inc()
	s.logger.Info().Str("room_id", created.ID).Str("number", created.Number).Msg("room created")
	return created, nil
}

// Update applies a partial patch. Status changes must follow the room state
// machine; any other edge is rejected with ErrInvalidTransition.
func (s *RoomService) Update(ctx context.Context, input ports.UpdateRoomInput) (*domain.Room, error) {
	if !domain.Allowed(input.Principal.Role, domain.ActionRoomUpdate) {
		return nil, domain.ErrForbidden
	}

	room, err := s.rooms.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		next := domain.RoomStatus(*input.Status)
		if !next.IsValid() {
			return nil, fmt.Errorf("%w: unknown room status %q", domain.ErrValidation, *input.Status)
		}
		if next != room.Status {
			if !room.Status.CanTransitionTo(next) {
				return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, room.Status, next)
			}
			room.Status = next
		}
	}
	if input.Number != nil {
		if *input.Number == "" {
			return nil, fmt.Errorf("%w: room number is required", domain.ErrValidation)
		}
		room.Number = *input.Number
	}
	if input.Type != nil {
		room.Type = *input.Type
	}
	if input.MonthlyRate != nil {
		if *input.MonthlyRate <= 0 {
			return nil, fmt.Errorf("%w: monthly rate must be positive", domain.ErrValidation)
		}
		room.MonthlyRate = *input.MonthlyRate
	}
	if input.Amenities != nil {
		room.Amenities = *input.Amenities
	}
	if input.RenterID != nil {
		room.RenterID = *input.RenterID
	}
	room.UpdatedAt = s.now().UTC()

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().Str("room_id", room.ID).Str("status", string(room.Status)).Msg("room updated")
	return room, nil
}

// Delete removes a room unless a pending payment references it for the
// current or a future period.
func (s *RoomService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	if !domain.Allowed(principal.Role, domain.ActionRoomDelete) {
		return domain.ErrForbidden
	}

	if _, err := s.rooms.FindByID(ctx, id); err != nil {
		return err
	}

	now := s.now().UTC()
	blocked, err := s.payments.HasPendingSince(ctx, id, int(now.Month()), now.Year())
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if blocked {
		return domain.ErrRoomHasPendingBills
	}

	if err := s.rooms.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("room_id", id).Msg("room deleted")
	return nil
}

func (s *RoomService) Get(ctx context.Context, principal domain.Principal, id string) (*domain.Room, error) {
	if !domain.Allowed(principal.Role, domain.ActionRoomRead) {
		return nil, domain.ErrForbidden
	}
	return s.rooms.FindByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context, input ports.ListRoomsInput) ([]*domain.Room, error) {
	if !domain.Allowed(input.Principal.Role, domain.ActionRoomRead) {
		return nil, domain.ErrForbidden
	}
	if input.Status != "" && !domain.RoomStatus(input.Status).IsValid() {
		return nil, fmt.Errorf("%w: unknown room status %q", domain.ErrValidation, input.Status)
	}
	return s.rooms.List(ctx, ports.RoomFilter{Status: input.Status, Type: input.Type})
}

// Statistics returns the occupancy snapshot. Available to renters as well;
// it exposes no financial detail beyond the aggregate potential revenue.
func (s *RoomService) Statistics(ctx context.Context, principal domain.Principal) (*domain.OccupancyStats, error) {
	if !domain.Allowed(principal.Role, domain.ActionRoomStats) {
		return nil, domain.ErrForbidden
	}
	return s.rooms.OccupancyStats(ctx)
}
