package domain

import "time"

// RoomStatus represents the lifecycle state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// RoomTypeSingle and RoomTypeDouble are the supported room layouts.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
)

// validRoomTransitions defines the allowed state machine transitions.
// A room in maintenance must be marked available again before it can be
// let out, so maintenance -> occupied is deliberately absent.
var validRoomTransitions = map[RoomStatus][]RoomStatus{
	RoomAvailable:   {RoomOccupied, RoomMaintenance},
	RoomOccupied:    {RoomAvailable, RoomMaintenance},
	RoomMaintenance: {RoomAvailable},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s RoomStatus) CanTransitionTo(next RoomStatus) bool {
	for _, allowed := range validRoomTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the known room statuses.
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// Room is a rentable unit in the boarding house.
type Room struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Number      string     `json:"number" bson:"number"`
	Type        string     `json:"type" bson:"type"`
	MonthlyRate int64      `json:"monthly_rate" bson:"monthly_rate"`
	Status      RoomStatus `json:"status" bson:"status"`
	Amenities   []string   `json:"amenities" bson:"amenities"`
	RenterID    string     `json:"renter_id,omitempty" bson:"renter_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
