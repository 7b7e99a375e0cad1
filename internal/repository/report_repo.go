package repository

import (
	"context"

	"gorm.io/gorm"
)

// MonthlyAttendanceRow is one worker's attended-day count for a month.
type MonthlyAttendanceRow struct {
	Month      string `json:"month"`
	WorkerID   int64  `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	DaysWorked int64  `json:"days_worked"`
}

type ReportRepository interface {
	// MonthlyAttendance counts distinct attended days per worker for
	// every month that has at least one attendance record. Workers
	// with no attendance in a month still appear with zero.
	MonthlyAttendance(ctx context.Context) ([]MonthlyAttendanceRow, error)
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) MonthlyAttendance(ctx context.Context) ([]MonthlyAttendanceRow, error) {
	var rows []MonthlyAttendanceRow
	query := `
		WITH meses AS (
			SELECT DISTINCT TO_CHAR(fecha, 'YYYY-MM') AS mes
			FROM asistencia
			WHERE fecha IS NOT NULL
		)
		SELECT m.mes AS month,
		       t.id AS worker_id,
		       TRIM(CONCAT_WS(' ', t.nombre, t.apellido)) AS worker_name,
		       COUNT(DISTINCT a.fecha) AS days_worked
		FROM meses m
		CROSS JOIN trabajador t
		LEFT JOIN asistencia a
		       ON a.trabajador_id = t.id
		      AND a.is_asistencia = TRUE
		      AND TO_CHAR(a.fecha, 'YYYY-MM') = m.mes
		GROUP BY m.mes, t.id, t.nombre, t.apellido
		ORDER BY m.mes ASC, t.id ASC`
	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}
