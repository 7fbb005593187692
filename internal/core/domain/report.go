package domain

// OccupancyStats summarises the room registry for the dashboard.
// PotentialRevenue is the sum of monthly rates over occupied rooms.
type OccupancyStats struct {
	TotalRooms       int   `json:"total_rooms"`
	Available        int   `json:"available"`
	Occupied         int   `json:"occupied"`
	Maintenance      int   `json:"maintenance"`
	PotentialRevenue int64 `json:"potential_revenue"`
}

// MonthlyReport aggregates the payment ledger for one billing period.
type MonthlyReport struct {
	Month            int   `json:"month"`
	Year             int   `json:"year"`
	TotalCollected   int64 `json:"total_collected"`
	TotalOutstanding int64 `json:"total_outstanding"`
	PaidCount        int   `json:"paid_count"`
	PendingCount     int   `json:"pending_count"`
}

// Dashboard combines both aggregates into the admin overview.
type Dashboard struct {
	Occupancy OccupancyStats `json:"occupancy"`
	Payments  MonthlyReport  `json:"payments"`
}
