package handler

type createPaymentRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	RenterID string `json:"renter_id" validate:"required"`
	Month    int    `json:"month"     validate:"required,min=1,max=12"`
	Year     int    `json:"year"      validate:"required,gte=2020"`
	Amount   int64  `json:"amount"    validate:"required,gt=0"`
	Note     string `json:"note"`
}

// updatePaymentRequest is a partial patch. payment_date uses the
// "2006-01-02" layout and is required when status moves to paid.
type updatePaymentRequest struct {
	Status      *string `json:"status"       validate:"omitempty,oneof=pending paid"`
	PaymentDate *string `json:"payment_date"`
	Amount      *int64  `json:"amount"       validate:"omitempty,gt=0"`
	Note        *string `json:"note"`
}
