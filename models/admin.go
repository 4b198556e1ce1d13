package models

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	Users        int64   `json:"users"`
	Tests        int64   `json:"tests"`
	Appointments int64   `json:"appointments"`
	Payments     int64   `json:"payments"`
	Revenue      float64 `json:"revenue"`
}

// TestBookingStat is one row of the bookings-per-test report.
type TestBookingStat struct {
	Title    string  `bson:"title" json:"title"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

// AppointmentSummary counts a user's appointments per test status.
type AppointmentSummary struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"byStatus"`
	Delivered int            `json:"delivered"`
}
