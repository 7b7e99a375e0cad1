package model

// Absence categories assigned by the classifier. Fixed closed set;
// detection keywords are Spanish because that is the language of the
// justification messages.
const (
	CategoryAccident = "accident"
	CategoryMedical  = "medical"
	CategoryFamily   = "family"
	CategoryPersonal = "personal"
	CategoryOther    = "other"
)

// AttendanceRecord maps the asistencia table: one worker-day of
// entry/exit/justification state.
//
// Field semantics:
//   - EntryTime nil: no check-in yet. ExitTime nil with EntryTime set:
//     checked in, not out (the "open" record).
//   - IsAttendance: true once any entry or exit was marked; false rows
//     are pure absences.
//   - Justified is nullable on purpose: nil = never touched, true =
//     a justification message was attached.
//   - Processed flips to true once the classifier consumed Message;
//     attaching a new message resets it and clears the derived fields.
type AttendanceRecord struct {
	ID           int64      `gorm:"primaryKey"                       json:"id"`
	Date         *DateOnly  `gorm:"column:fecha"                     json:"date"`
	EntryTime    *TimeOfDay `gorm:"column:hora_entrada"              json:"entry_time"`
	ExitTime     *TimeOfDay `gorm:"column:hora_salida"               json:"exit_time"`
	WorkerID     int64      `gorm:"column:trabajador_id;not null"    json:"worker_id"`
	IsAttendance bool       `gorm:"column:is_asistencia;not null;default:false" json:"is_attendance"`
	Justified    *bool      `gorm:"column:justificado"               json:"justified"`
	Processed    bool       `gorm:"column:procesado_ia;not null;default:false" json:"processed"`
	Message      *string    `gorm:"column:mensaje;type:text"         json:"message"`
	Category     *string    `gorm:"column:categoria;type:varchar(30)" json:"category"`
	AbsenceStart *DateOnly  `gorm:"column:fecha_inicio_inasistencia" json:"absence_start"`
	AbsenceEnd   *DateOnly  `gorm:"column:fecha_fin_inasistencia"    json:"absence_end"`
	AbsenceDays  *int       `gorm:"column:duracion_dias"             json:"absence_days"`

	Worker *Worker `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}

func (AttendanceRecord) TableName() string { return "asistencia" }

// Open reports whether the record can still take an exit mark.
func (r *AttendanceRecord) Open() bool {
	return r.EntryTime != nil && r.ExitTime == nil
}

// WorkedHours returns exit-entry in hours, or 0 for incomplete records.
func (r *AttendanceRecord) WorkedHours() float64 {
	if r.EntryTime == nil || r.ExitTime == nil {
		return 0
	}
	secs := r.ExitTime.Seconds() - r.EntryTime.Seconds()
	if secs < 0 {
		return 0
	}
	return float64(secs) / 3600.0
}
