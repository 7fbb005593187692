package domain

import "time"

// PaymentStatus represents the settlement state of a rent bill.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// validPaymentTransitions defines the allowed state machine transitions.
// Paid is terminal: a settled bill can never be reopened.
var validPaymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range validPaymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the known payment statuses.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// Payment is one rent bill for a renter in a room for a single period.
// At most one payment exists per (room, renter, month, year); the store
// enforces this with a unique compound index.
type Payment struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	RoomID      string        `json:"room_id" bson:"room_id"`
	RenterID    string        `json:"renter_id" bson:"renter_id"`
	Month       int           `json:"month" bson:"month"`
	Year        int           `json:"year" bson:"year"`
	Amount      int64         `json:"amount" bson:"amount"`
	Status      PaymentStatus `json:"status" bson:"status"`
	PaymentDate *time.Time    `json:"payment_date,omitempty" bson:"payment_date,omitempty"`
	Note        string        `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// PeriodStart returns the first day of the billing period (month, year) in UTC.
func PeriodStart(month, year int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// ValidPeriod reports whether (month, year) identifies a billable period.
func ValidPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2020
}
