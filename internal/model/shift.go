package model

// Shift maps the turno table.
type Shift struct {
	ID        int64     `gorm:"primaryKey"                                json:"id"`
	StartTime TimeOfDay `gorm:"column:horario_inicio;not null"            json:"start_time"`
	EndTime   TimeOfDay `gorm:"column:horario_fin;not null"               json:"end_time"`
	Kind      string    `gorm:"column:tipo_turno;type:varchar(50);not null" json:"kind"`
	AreaID    int64     `gorm:"column:area_id;not null"                   json:"area_id"`

	Area *WorkArea `gorm:"foreignKey:AreaID" json:"area,omitempty"`
}

func (Shift) TableName() string { return "turno" }

// ShiftAssignment maps the turno_trabajador table: a worker covering a
// shift over a date range. EndDate nil means an open-ended assignment.
type ShiftAssignment struct {
	ID        int64     `gorm:"primaryKey"                   json:"id"`
	WorkerID  int64     `gorm:"column:trabajador_id;not null" json:"worker_id"`
	ShiftID   int64     `gorm:"column:turno_id;not null"      json:"shift_id"`
	StartDate DateOnly  `gorm:"column:fecha_inicio;not null"  json:"start_date"`
	EndDate   *DateOnly `gorm:"column:fecha_fin"              json:"end_date,omitempty"`

	Worker *Worker `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
	Shift  *Shift  `gorm:"foreignKey:ShiftID"  json:"shift,omitempty"`
}

func (ShiftAssignment) TableName() string { return "turno_trabajador" }
