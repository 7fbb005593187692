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

// PaymentService implements the payment ledger use-cases. The ledger is
// append-only; there is no delete operation.
type PaymentService struct {
	payments ports.PaymentRepository
	rooms    ports.RoomRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewPaymentService(
	payments ports.PaymentRepository,
	rooms ports.RoomRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		payments: payments,
		rooms:    rooms,
		users:    users,
		logger:   logger,
	}
}

// Create records a new rent bill. The referenced room and renter must exist,
// the amount must be positive, and only one bill may exist per
// (room, renter, month, year) — the store rejects duplicates so concurrent
// requests cannot both succeed. New bills start pending with no date.
func (s *PaymentService) Create(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error) {
	if !domain.Allowed(input.Principal.Role, domain.ActionPaymentCreate) {
		return nil, domain.ErrForbidden
	}

	if !domain.ValidPeriod(input.Month, input.Year) {
		return nil, fmt.Errorf("%w: period %d/%d is out of range", domain.ErrValidation, input.Month, input.Year)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	if _, err := s.rooms.FindByID(ctx, input.RoomID); err != nil {
		return nil, fmt.Errorf("%w: unknown room %s", domain.ErrValidation, input.RoomID)
	}
	renter, err := s.users.FindByID(ctx, input.RenterID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown renter %s", domain.ErrValidation, input.RenterID)
	}
	if renter.Role != domain.RolePenyewa {
		return nil, fmt.Errorf("%w: user %s is not a renter", domain.ErrValidation, input.RenterID)
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		RoomID:    input.RoomID,
		RenterID:  input.RenterID,
		Month:     input.Month,
		Year:      input.Year,
		Amount:    input.Amount,
		Status:    domain.PaymentPending,
		Note:      input.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.payments.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	metrics.PaymentsRecordedTotal.WithLabelValues(string(created.Status)).Inc()
	s.logger.Info().
		Str("payment_id", created.ID).
		Str("room_id", created.RoomID).
		Str("renter_id", created.RenterID).
		Int("month", created.Month).
		Int("year", created.Year).
		Msg("payment recorded")
	return created, nil
}

// Update applies a partial patch. Settling a bill (pending -> paid) requires
// a payment date no earlier than the first day of its period. Paid bills are
// immutable: no reopening, no amount correction.
func (s *PaymentService) Update(ctx context.Context, input ports.UpdatePaymentInput) (*domain.Payment, error) {
	if !domain.Allowed(input.Principal.Role, domain.ActionPaymentUpdate) {
		return nil, domain.ErrForbidden
	}

	payment, err := s.payments.FindByID(ctx, input.ID, "")
	if err != nil {
		return nil, err
	}

	// Amount correction is applied first so a single patch can fix the
	// amount and settle the bill together; once paid, the amount is frozen.
	if input.Amount != nil && *input.Amount != payment.Amount {
		if payment.Status == domain.PaymentPaid {
			return nil, fmt.Errorf("%w: amount of a settled payment cannot change", domain.ErrValidation)
		}
		if *input.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
		}
		payment.Amount = *input.Amount
	}
	if input.Status != nil {
		next := domain.PaymentStatus(*input.Status)
		if !next.IsValid() {
			return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, *input.Status)
		}
		if next != payment.Status {
			if !payment.Status.CanTransitionTo(next) {
				return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, payment.Status, next)
			}
			date := input.PaymentDate
			if date == nil {
				return nil, fmt.Errorf("%w: payment date is required to settle", domain.ErrValidation)
			}
			if date.Before(domain.PeriodStart(payment.Month, payment.Year)) {
				return nil, fmt.Errorf("%w: payment date precedes period %d/%d", domain.ErrValidation, payment.Month, payment.Year)
			}
			payment.Status = next
			payment.PaymentDate = date
			metrics.PaymentsSettledTotal.Inc()
		}
	}
	if input.Note != nil {
		payment.Note = *input.Note
	}
	payment.UpdatedAt = time.Now().UTC()

	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("payment_id", payment.ID).
		Str("status", string(payment.Status)).
		Msg("payment updated")
	return payment, nil
}

// Get returns one payment. Renters only ever see their own rows: the lookup
// is scoped in the query itself, so a foreign id yields not-found rather
// than leaking that the row exists.
func (s *PaymentService) Get(ctx context.Context, principal domain.Principal, id string) (*domain.Payment, error) {
	if !domain.Allowed(principal.Role, domain.ActionPaymentRead) {
		return nil, domain.ErrForbidden
	}
	scope := ""
	if !principal.IsAdmin() {
		scope = principal.UserID
	}
	return s.payments.FindByID(ctx, id, scope)
}

// List returns payments matching the filter. Admin sees all; a renter's
// filter is forced to their own renter id inside the service.
func (s *PaymentService) List(ctx context.Context, input ports.ListPaymentsInput) ([]*domain.Payment, error) {
	if !domain.Allowed(input.Principal.Role, domain.ActionPaymentRead) {
		return nil, domain.ErrForbidden
	}

	filter := ports.PaymentFilter{
		RoomID: input.RoomID,
		Status: input.Status,
		Month:  input.Month,
		Year:   input.Year,
	}
	if !input.Principal.IsAdmin() {
		filter.RenterID = input.Principal.UserID
	}
	return s.payments.List(ctx, filter)
}

// ListByRoom returns the full payment history of one room, admin only.
func (s *PaymentService) ListByRoom(ctx context.Context, principal domain.Principal, roomID string) ([]*domain.Payment, error) {
	if !domain.Allowed(principal.Role, domain.ActionPaymentReport) {
		return nil, domain.ErrForbidden
	}
	return s.payments.List(ctx, ports.PaymentFilter{RoomID: roomID})
}

// MonthlyReport aggregates collected and outstanding totals for one period.
func (s *PaymentService) MonthlyReport(ctx context.Context, principal domain.Principal, month, year int) (*domain.MonthlyReport, error) {
	if !domain.Allowed(principal.Role, domain.ActionPaymentReport) {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidPeriod(month, year) {
		return nil, fmt.Errorf("%w: period %d/%d is out of range", domain.ErrValidation, month, year)
	}
	return s.payments.MonthlyReport(ctx, month, year)
}
