package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/model"
	"github.com/L52103/appEscritorioControl/internal/repository"
)

var ErrNoPayRate = errors.New("debe indicar un valor hora o un sueldo manual")

// PayrollService computes the monthly salary view: worked hours from
// the attendance ledger times the stored hourly rate.
type PayrollService interface {
	// ListMonth returns the payroll view for one "YYYY-MM" month; an
	// empty month means the current one.
	ListMonth(ctx context.Context, month string) ([]dto.PayrollRowResponse, error)
	// UpdateRate sets a worker's hourly rate and/or a manual salary.
	// With a rate and no manual salary the stored salary is recomputed
	// from the current month's hours.
	UpdateRate(ctx context.Context, workerID int64, req *dto.UpdateHourlyRateRequest) (*dto.PayrollRowResponse, error)
	// RecalculateAll rewrites every stored salary as current-month
	// hours times the hourly rate, for workers that have a rate.
	RecalculateAll(ctx context.Context) (int, error)
}

type payrollService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewPayrollService(repo *repository.Repository, logger *zap.Logger) PayrollService {
	return &payrollService{repo: repo, logger: logger, now: time.Now}
}

func (s *payrollService) ListMonth(ctx context.Context, month string) ([]dto.PayrollRowResponse, error) {
	if month == "" {
		month = s.now().Format("2006-01")
	}
	rows, err := s.repo.Payroll.ListMonthly(ctx, month)
	if err != nil {
		s.logger.Error("listar sueldos falló", zap.String("mes", month), zap.Error(err))
		return nil, err
	}

	result := make([]dto.PayrollRowResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toPayrollRowResponse(row))
	}
	return result, nil
}

func (s *payrollService) UpdateRate(ctx context.Context, workerID int64, req *dto.UpdateHourlyRateRequest) (*dto.PayrollRowResponse, error) {
	if req.HourlyRate == nil && req.ManualSalary == nil {
		return nil, ErrNoPayRate
	}
	if _, err := s.repo.Worker.GetByID(ctx, workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	month := s.now().Format("2006-01")
	rows, err := s.repo.Payroll.ListMonthly(ctx, month)
	if err != nil {
		return nil, err
	}
	var hours float64
	for _, row := range rows {
		if row.WorkerID == workerID {
			hours = row.MonthHours
			break
		}
	}

	payroll := &model.Payroll{WorkerID: workerID}
	switch {
	case req.HourlyRate != nil && req.ManualSalary == nil:
		salary := math.Round(hours**req.HourlyRate*100) / 100
		payroll.HourlyRate = req.HourlyRate
		payroll.StoredSalary = &salary
	case req.HourlyRate == nil:
		// Manual salary only; the current rate, if any, survives.
		current, err := s.repo.Payroll.Get(ctx, workerID)
		if err != nil {
			return nil, err
		}
		if current != nil {
			payroll.HourlyRate = current.HourlyRate
		}
		payroll.StoredSalary = req.ManualSalary
	default:
		payroll.HourlyRate = req.HourlyRate
		payroll.StoredSalary = req.ManualSalary
	}
	if err := s.repo.Payroll.Upsert(ctx, payroll); err != nil {
		s.logger.Error("actualizar valor hora falló", zap.Int64("trabajador", workerID), zap.Error(err))
		return nil, err
	}

	// Re-read so the response carries the refreshed aggregates.
	rows, err = s.repo.Payroll.ListMonthly(ctx, month)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.WorkerID == workerID {
			resp := toPayrollRowResponse(row)
			return &resp, nil
		}
	}
	return nil, ErrWorkerNotFound
}

func (s *payrollService) RecalculateAll(ctx context.Context) (int, error) {
	month := s.now().Format("2006-01")
	rows, err := s.repo.Payroll.ListMonthly(ctx, month)
	if err != nil {
		s.logger.Error("recalcular sueldos falló", zap.String("mes", month), zap.Error(err))
		return 0, err
	}

	updated := 0
	for _, row := range rows {
		if row.HourlyRate == nil {
			continue
		}
		salary := math.Round(row.MonthHours**row.HourlyRate*100) / 100
		payroll := &model.Payroll{
			WorkerID:     row.WorkerID,
			HourlyRate:   row.HourlyRate,
			StoredSalary: &salary,
		}
		if err := s.repo.Payroll.Upsert(ctx, payroll); err != nil {
			s.logger.Error("recalcular sueldo falló", zap.Int64("trabajador", row.WorkerID), zap.Error(err))
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func toPayrollRowResponse(row repository.PayrollRow) dto.PayrollRowResponse {
	resp := dto.PayrollRowResponse{
		WorkerID:      row.WorkerID,
		WorkerName:    row.WorkerName,
		MonthHours:    row.MonthHours,
		MonthAbsences: row.MonthAbsences,
		HourlyRate:    row.HourlyRate,
		StoredSalary:  row.StoredSalary,
	}
	if row.HourlyRate != nil {
		computed := math.Round(row.MonthHours**row.HourlyRate*100) / 100
		resp.ComputedSalary = &computed
	}
	return resp
}
