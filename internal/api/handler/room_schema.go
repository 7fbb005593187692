package handler

type createRoomRequest struct {
	Number      string   `json:"number"       validate:"required,max=10"`
	Type        string   `json:"type"         validate:"required,oneof=single double"`
	MonthlyRate int64    `json:"monthly_rate" validate:"required,gt=0"`
	Status      string   `json:"status"       validate:"omitempty,oneof=available occupied maintenance"`
	Amenities   []string `json:"amenities"`
	RenterID    string   `json:"renter_id"`
}

type updateRoomRequest struct {
	Number      *string   `json:"number"       validate:"omitempty,min=1,max=10"`
	Type        *string   `json:"type"         validate:"omitempty,oneof=single double"`
	MonthlyRate *int64    `json:"monthly_rate" validate:"omitempty,gt=0"`
	Status      *string   `json:"status"       validate:"omitempty,oneof=available occupied maintenance"`
	Amenities   *[]string `json:"amenities"`
	RenterID    *string   `json:"renter_id"`
}
