package models

// Stats are the headline counters shown on the dashboard
type Stats struct {
	TotalCompanies int64   `json:"totalCompanies"`
	TotalEmployers int64   `json:"totalEmployers"`
	TotalOrders    int64   `json:"totalOrders"`
	PendingOrders  int64   `json:"pendingOrders"`
	TotalMenus     int64   `json:"totalMenus"`
	TotalEarnings  float64 `json:"totalEarnings"`
}

// MonthlyUsers is the number of employers that signed up in one month
type MonthlyUsers struct {
	Month string `json:"month"`
	Users int64  `json:"users"`
}

// UserOverview is the sign-up chart of one year, one entry per month
type UserOverview struct {
	Year   int            `json:"year"`
	Result []MonthlyUsers `json:"result"`
}

// MonthlyEarning is the income of completed orders in one month
type MonthlyEarning struct {
	Month  string  `json:"month"`
	Income float64 `json:"income"`
}

// EarningOverview is the income chart of one year, one entry per month
type EarningOverview struct {
	Year        int              `json:"year"`
	Result      []MonthlyEarning `json:"result"`
	YearlyTotal float64          `json:"yearlyTotal"`
}
