package ports

import (
	"context"

	"github.com/kosapp/kos-api/internal/core/domain"
)

// PaymentFilter carries the query parameters for listing payments.
// RenterID is set by the service layer when the caller is a renter, so
// scoping cannot be bypassed by a forgetful caller.
type PaymentFilter struct {
	RenterID string // non-empty = scoped to this renter
	RoomID   string // optional
	Status   string // optional
	Month    int    // optional, paired with Year
	Year     int    // optional, paired with Month
}

// PaymentRepository defines persistence operations for the payment ledger.
// The ledger is append-only: there is no delete.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	// FindByID retrieves a payment by id. When renterID is non-empty the
	// query is additionally filtered by renter_id, so a foreign row is
	// indistinguishable from an absent one.
	FindByID(ctx context.Context, id string, renterID string) (*domain.Payment, error)
	// List returns payments matching filter, newest period first.
	List(ctx context.Context, filter PaymentFilter) ([]*domain.Payment, error)
	// HasPendingSince reports whether the room has any pending payment for
	// (month, year) or a later period (guards room deletion).
	HasPendingSince(ctx context.Context, roomID string, month, year int) (bool, error)
	// MonthlyReport aggregates collected and outstanding totals for one
	// period in a single snapshot read.
	MonthlyReport(ctx context.Context, month, year int) (*domain.MonthlyReport, error)
}
