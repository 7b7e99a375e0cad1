package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/L52103/appEscritorioControl/internal/model"
)

// PayrollRow is one worker's computed line in the monthly payroll view.
type PayrollRow struct {
	WorkerID      int64    `json:"worker_id"`
	WorkerName    string   `json:"worker_name"`
	MonthHours    float64  `json:"month_hours"`
	MonthAbsences int64    `json:"month_absences"`
	HourlyRate    *float64 `json:"hourly_rate"`
	StoredSalary  *float64 `json:"stored_salary"`
}

type PayrollRepository interface {
	// ListMonthly aggregates worked hours and absence counts for the
	// month of refDate ("YYYY-MM") joined against the stored rates.
	ListMonthly(ctx context.Context, month string) ([]PayrollRow, error)
	Get(ctx context.Context, workerID int64) (*model.Payroll, error)
	Upsert(ctx context.Context, payroll *model.Payroll) error
}

type payrollRepo struct {
	db *gorm.DB
}

func NewPayrollRepo(db *gorm.DB) PayrollRepository {
	return &payrollRepo{db: db}
}

func (r *payrollRepo) ListMonthly(ctx context.Context, month string) ([]PayrollRow, error) {
	var rows []PayrollRow
	query := `
		WITH horas AS (
			SELECT trabajador_id,
			       SUM(EXTRACT(EPOCH FROM (hora_salida - hora_entrada)) / 3600.0) AS total_horas
			FROM asistencia
			WHERE is_asistencia = TRUE
			  AND hora_entrada IS NOT NULL
			  AND hora_salida IS NOT NULL
			  AND TO_CHAR(fecha, 'YYYY-MM') = ?
			GROUP BY trabajador_id
		),
		inasistencias AS (
			SELECT trabajador_id,
			       COUNT(*) AS total_inasistencias
			FROM asistencia
			WHERE is_asistencia = FALSE
			  AND TO_CHAR(fecha, 'YYYY-MM') = ?
			GROUP BY trabajador_id
		)
		SELECT t.id AS worker_id,
		       TRIM(CONCAT_WS(' ', t.nombre, t.apellido)) AS worker_name,
		       COALESCE(h.total_horas, 0) AS month_hours,
		       COALESCE(i.total_inasistencias, 0) AS month_absences,
		       r.valor_hora AS hourly_rate,
		       r.sueldo AS stored_salary
		FROM trabajador t
		LEFT JOIN horas h ON h.trabajador_id = t.id
		LEFT JOIN inasistencias i ON i.trabajador_id = t.id
		LEFT JOIN rendimiento r ON r.trabajador_id = t.id
		ORDER BY t.id ASC`
	err := r.db.WithContext(ctx).Raw(query, month, month).Scan(&rows).Error
	return rows, err
}

func (r *payrollRepo) Get(ctx context.Context, workerID int64) (*model.Payroll, error) {
	var payroll model.Payroll
	err := r.db.WithContext(ctx).Where("trabajador_id = ?", workerID).First(&payroll).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payroll, nil
}

func (r *payrollRepo) Upsert(ctx context.Context, payroll *model.Payroll) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trabajador_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"valor_hora", "sueldo"}),
		}).
		Create(payroll).Error
}
