package models

import "time"

// DashboardStats summarizes ledger activity for one period together with the
// change rate against the immediately preceding period of equal length.
// A nil change rate means the previous period was empty while the current
// one is not, so no meaningful percentage exists.
type DashboardStats struct {
	Period        string   `json:"period"`
	TotalGiven    int64    `json:"total_given"`
	TotalReceived int64    `json:"total_received"`
	EventCount    int      `json:"event_count"`
	GivenChange   *float64 `json:"given_change"`
	ReceivedChange *float64 `json:"received_change"`
}

// PeriodTotals holds the raw sums the repository reads for one window
type PeriodTotals struct {
	TotalGiven    int64 `db:"total_given"`
	TotalReceived int64 `db:"total_received"`
	EventCount    int   `db:"event_count"`
}

// MonthlyStat is one calendar month of the monthly breakdown
type MonthlyStat struct {
	Month   int   `json:"month" db:"month"`
	Income  int64 `json:"income" db:"income"`
	Expense int64 `json:"expense" db:"expense"`
	Net     int64 `json:"net"`
}

// MonthlyBreakdown is the full year view with best and worst months by net
type MonthlyBreakdown struct {
	Year       int           `json:"year"`
	Months     []MonthlyStat `json:"months"`
	BestMonth  int           `json:"best_month"`
	WorstMonth int           `json:"worst_month"`
}

// GroupStat is one row of a categorical grouping (event type or
// relationship type)
type GroupStat struct {
	Key           string  `json:"key" db:"key"`
	Count         int     `json:"count" db:"count"`
	TotalAmount   int64   `json:"total_amount" db:"total_amount"`
	AverageAmount float64 `json:"average_amount"`
	Percentage    float64 `json:"percentage"`
}

// GroupedStats is a deterministic ordering of group rows plus the grand
// total they were normalized against
type GroupedStats struct {
	Period     string      `json:"period"`
	GrandTotal int64       `json:"grand_total"`
	Groups     []GroupStat `json:"groups"`
}

// PeriodWindow is a half-open [From, To) time window over event dates
type PeriodWindow struct {
	From time.Time
	To   time.Time
}
