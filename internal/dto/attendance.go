package dto

// IdentityRequest selects a worker by exactly one identifier. When more
// than one is supplied, precedence is worker_id, then email, then rut.
type IdentityRequest struct {
	WorkerID *int64 `json:"worker_id"`
	Email    string `json:"email" binding:"omitempty,email"`
	RUT      string `json:"rut"`
}

// CheckInRequest marks a worker's entry for the current day.
type CheckInRequest struct {
	IdentityRequest
}

// CheckOutRequest marks a worker's exit for the current day.
type CheckOutRequest struct {
	IdentityRequest
}

// AttachMessageRequest attaches a justification message to the worker's
// most recent attendance record.
type AttachMessageRequest struct {
	IdentityRequest
	Message string `json:"message" binding:"required"`
}

// AttendanceResponse is one attendance row over the API; dates are
// YYYY-MM-DD, times HH:MM:SS.
type AttendanceResponse struct {
	ID           int64   `json:"id"`
	WorkerID     int64   `json:"worker_id"`
	WorkerName   string  `json:"worker_name,omitempty"`
	Date         *string `json:"date"`
	EntryTime    *string `json:"entry_time"`
	ExitTime     *string `json:"exit_time"`
	IsAttendance bool    `json:"is_attendance"`
	Justified    *bool   `json:"justified"`
	Processed    bool    `json:"processed"`
	Message      *string `json:"message"`
	Category     *string `json:"category"`
	AbsenceStart *string `json:"absence_start"`
	AbsenceEnd   *string `json:"absence_end"`
	AbsenceDays  *int    `json:"absence_days"`
}

// TransitionResponse wraps an attendance mutation result; Created tells
// the handler whether to answer 201 instead of 200.
type TransitionResponse struct {
	Record  *AttendanceResponse `json:"record"`
	Created bool                `json:"-"`
}

// AbsencePredictionResponse is the historical-average forecast for one
// worker's next absence.
type AbsencePredictionResponse struct {
	WorkerID          int64   `json:"worker_id"`
	AbsenceCount      int     `json:"absence_count"`
	MeanGapDays       float64 `json:"mean_gap_days"`
	MeanDurationDays  float64 `json:"mean_duration_days"`
	LastAbsenceStart  string  `json:"last_absence_start"`
	PredictedStart    string  `json:"predicted_start"`
	PredictedEnd      string  `json:"predicted_end"`
	PredictedDuration int     `json:"predicted_duration_days"`
}
