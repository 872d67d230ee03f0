package dashboard

import "time"

// StatsResponse holds the four headline counters of the admin dashboard.
type StatsResponse struct {
	EmployeesOnLeave    int64     `json:"employees_on_leave"`
	PendingRequests     int64     `json:"pending_requests"`
	OpenPositions       int64     `json:"open_positions"`
	PendingApplications int64     `json:"pending_applications"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// MonthlyLeave counts leave requests starting in one month, per leave type.
type MonthlyLeave struct {
	Month  string         `json:"month"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

type LeaveTrendResponse struct {
	Year   int            `json:"year"`
	Months []MonthlyLeave `json:"months"`
}
