package ports

import (
	"context"
	"time"

	"github.com/kosapp/kos-api/internal/core/domain"
)

// CreatePaymentInput carries all data needed to record a new rent bill.
// New bills always start pending with no payment date.
type CreatePaymentInput struct {
	Principal domain.Principal
	RoomID    string
	RenterID  string
	Month     int
	Year      int
	Amount    int64
	Note      string
}

// UpdatePaymentInput is a partial patch; nil fields are left unchanged.
type UpdatePaymentInput struct {
	Principal   domain.Principal
	ID          string
	Status      *string
	PaymentDate *time.Time
	Amount      *int64
	Note        *string
}

// ListPaymentsInput carries the parameters for the payment list endpoint.
type ListPaymentsInput struct {
	Principal domain.Principal
	Status    string
	Month     int
	Year      int
	RoomID    string
}

// PaymentService defines use-case operations for the payment ledger.
type PaymentService interface {
	Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error)
	Update(ctx context.Context, input UpdatePaymentInput) (*domain.Payment, error)
	Get(ctx context.Context, principal domain.Principal, id string) (*domain.Payment, error)
	List(ctx context.Context, input ListPaymentsInput) ([]*domain.Payment, error)
	ListByRoom(ctx context.Context, principal domain.Principal, roomID string) ([]*domain.Payment, error)
	MonthlyReport(ctx context.Context, principal domain.Principal, month, year int) (*domain.MonthlyReport, error)
}
