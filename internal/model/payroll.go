package model

// Payroll maps the rendimiento table: per-worker pay parameters. The
// legacy schema stored these as single-element numeric arrays; the
// rewrite flattens them to plain columns.
type Payroll struct {
	WorkerID     int64    `gorm:"column:trabajador_id;primaryKey" json:"worker_id"`
	HourlyRate   *float64 `gorm:"column:valor_hora"               json:"hourly_rate"`
	StoredSalary *float64 `gorm:"column:sueldo"                   json:"stored_salary"`

	Worker *Worker `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}

func (Payroll) TableName() string { return "rendimiento" }
