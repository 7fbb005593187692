package service

import (
	"context"
	"fmt"

	"github.com/kosapp/kos-api/internal/core/domain"
	"github.com/kosapp/kos-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared across service tests. They mirror the
// filtering and uniqueness behaviour of the real Mongo adapters.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID   map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	clone := *u
	if clone.ID == "" {
		r.nextID++
		clone.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.byID[clone.ID] = &clone
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	return r.add(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	users := []*domain.User{}
	for _, u := range r.byID {
		if u.Role == role {
			clone := *u
			users = append(users, &clone)
		}
	}
	return users, nil
}

type stubRoomRepo struct {
	byID   map[string]*domain.Room
	nextID int
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{byID: make(map[string]*domain.Room)}
}

func (r *stubRoomRepo) add(room *domain.Room) *domain.Room {
	clone := *room
	if clone.ID == "" {
		r.nextID++
		clone.ID = fmt.Sprintf("room-%d", r.nextID)
	}
	r.byID[clone.ID] = &clone
	return &clone
}

func (r *stubRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	for _, existing := range r.byID {
		if existing.Number == room.Number {
			return nil, domain.ErrDuplicateRoomNumber
		}
	}
	return r.add(room), nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *domain.Room) error {
	if _, ok := r.byID[room.ID]; !ok {
		return domain.ErrRoomNotFound
	}
	clone := *room
	r.byID[room.ID] = &clone
	return nil
}

func (r *stubRoomRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id string) (*domain.Room, error) {
	room, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	clone := *room
	return &clone, nil
}

func (r *stubRoomRepo) List(_ context.Context, filter ports.RoomFilter) ([]*domain.Room, error) {
	rooms := []*domain.Room{}
	for _, room := range r.byID {
		if filter.Status != "" && string(room.Status) != filter.Status {
			continue
		}
		if filter.Type != "" && room.Type != filter.Type {
			continue
		}
		clone := *room
		rooms = append(rooms, &clone)
	}
	return rooms, nil
}

func (r *stubRoomRepo) OccupancyStats(_ context.Context) (*domain.OccupancyStats, error) {
	stats := &domain.OccupancyStats{}
	for _, room := range r.byID {
		stats.TotalRooms++
		switch room.Status {
		case domain.RoomAvailable:
			stats.Available++
		case domain.RoomOccupied:
			stats.Occupied++
			stats.PotentialRevenue += room.MonthlyRate
		case domain.RoomMaintenance:
			stats.Maintenance++
		}
	}
	return stats, nil
}

func (r *stubRoomRepo) ExistsOccupiedByRenter(_ context.Context, renterID string) (bool, error) {
	for _, room := range r.byID {
		if room.RenterID == renterID && room.Status == domain.RoomOccupied {
			return true, nil
		}
	}
	return false, nil
}

type stubPaymentRepo struct {
	byID   map[string]*domain.Payment
	nextID int
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{byID: make(map[string]*domain.Payment)}
}

func billKey(p *domain.Payment) string {
	return fmt.Sprintf("%s|%s|%d|%d", p.RoomID, p.RenterID, p.Month, p.Year)
}

func (r *stubPaymentRepo) add(p *domain.Payment) *domain.Payment {
	clone := *p
	if clone.ID == "" {
		r.nextID++
		clone.ID = fmt.Sprintf("payment-%d", r.nextID)
	}
	r.byID[clone.ID] = &clone
	return &clone
}

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	for _, existing := range r.byID {
		if billKey(existing) == billKey(p) {
			return nil, domain.ErrDuplicatePayment
		}
	}
	return r.add(p), nil
}

func (r *stubPaymentRepo) Update(_ context.Context, p *domain.Payment) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPaymentNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id string, renterID string) (*domain.Payment, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	// Enforce renter scope (mirrors the real Mongo query).
	if renterID != "" && p.RenterID != renterID {
		return nil, domain.ErrPaymentNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPaymentRepo) List(_ context.Context, filter ports.PaymentFilter) ([]*domain.Payment, error) {
	payments := []*domain.Payment{}
	for _, p := range r.byID {
		if filter.RenterID != "" && p.RenterID != filter.RenterID {
			continue
		}
		if filter.RoomID != "" && p.RoomID != filter.RoomID {
			continue
		}
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		if filter.Month != 0 && filter.Year != 0 && (p.Month != filter.Month || p.Year != filter.Year) {
			continue
		}
		clone := *p
		payments = append(payments, &clone)
	}
	return payments, nil
}

func (r *stubPaymentRepo) HasPendingSince(_ context.Context, roomID string, month, year int) (bool, error) {
	for _, p := range r.byID {
		if p.RoomID != roomID || p.Status != domain.PaymentPending {
			continue
		}
		if p.Year > year || (p.Year == year && p.Month >= month) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPaymentRepo) MonthlyReport(_ context.Context, month, year int) (*domain.MonthlyReport, error) {
	report := &domain.MonthlyReport{Month: month, Year: year}
	for _, p := range r.byID {
		if p.Month != month || p.Year != year {
			continue
		}
		switch p.Status {
		case domain.PaymentPaid:
			report.PaidCount++
			report.TotalCollected += p.Amount
		case domain.PaymentPending:
			report.PendingCount++
			report.TotalOutstanding += p.Amount
		}
	}
	return report, nil
}
