package dto

// ── Shift ──

type CreateShiftRequest struct {
	StartTime string `json:"start_time" binding:"required"` // "08:00:00"
	EndTime   string `json:"end_time"   binding:"required"` // "17:00:00"
	Kind      string `json:"kind"       binding:"required,max=50"`
	AreaID    int64  `json:"area_id"    binding:"required"`
}

type UpdateShiftRequest struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Kind      *string `json:"kind"    binding:"omitempty,max=50"`
	AreaID    *int64  `json:"area_id"`
}

type ShiftResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Kind      string `json:"kind"`
	AreaID    int64  `json:"area_id"`
	AreaName  string `json:"area_name,omitempty"`
}

// ── Shift assignment ──

type CreateShiftAssignmentRequest struct {
	WorkerID  int64   `json:"worker_id"  binding:"required"`
	ShiftID   int64   `json:"shift_id"   binding:"required"`
	StartDate string  `json:"start_date" binding:"required"` // "2024-03-01"
	EndDate   *string `json:"end_date"`                      // nil = open-ended
}

type UpdateShiftAssignmentRequest struct {
	WorkerID  *int64  `json:"worker_id"`
	ShiftID   *int64  `json:"shift_id"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type ShiftAssignmentResponse struct {
	ID         int64   `json:"id"`
	WorkerID   int64   `json:"worker_id"`
	WorkerName string  `json:"worker_name,omitempty"`
	ShiftID    int64   `json:"shift_id"`
	ShiftKind  string  `json:"shift_kind,omitempty"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date,omitempty"`
}
