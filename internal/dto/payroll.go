package dto

// PayrollRowResponse is one worker's payroll view for a month: worked
// hours and absences aggregated from the ledger, salary computed from
// the stored hourly rate.
type PayrollRowResponse struct {
	WorkerID       int64    `json:"worker_id"`
	WorkerName     string   `json:"worker_name"`
	MonthHours     float64  `json:"month_hours"`
	MonthAbsences  int64    `json:"month_absences"`
	HourlyRate     *float64 `json:"hourly_rate"`
	ComputedSalary *float64 `json:"computed_salary"`
	StoredSalary   *float64 `json:"stored_salary"`
}

// UpdateHourlyRateRequest sets a worker's pay rate, a manual salary
// override, or both. At least one field must be present.
type UpdateHourlyRateRequest struct {
	HourlyRate   *float64 `json:"hourly_rate" binding:"omitempty,gt=0"`
	ManualSalary *float64 `json:"manual_salary" binding:"omitempty,gte=0"`
}

// MonthlyAttendanceResponse is one worker's attended-day count in a
// month, for the attendance report.
type MonthlyAttendanceResponse struct {
	Month      string `json:"month"`
	WorkerID   int64  `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	DaysWorked int64  `json:"days_worked"`
}
