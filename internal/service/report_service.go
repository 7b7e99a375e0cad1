package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/repository"
)

// ReportService builds the per-month attendance summaries.
type ReportService interface {
	MonthlyAttendance(ctx context.Context) ([]dto.MonthlyAttendanceResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

func (s *reportService) MonthlyAttendance(ctx context.Context) ([]dto.MonthlyAttendanceResponse, error) {
	rows, err := s.repo.Report.MonthlyAttendance(ctx)
	if err != nil {
		s.logger.Error("generar reporte mensual falló", zap.Error(err))
		return nil, err
	}
	result := make([]dto.MonthlyAttendanceResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.MonthlyAttendanceResponse{
			Month:      row.Month,
			WorkerID:   row.WorkerID,
			WorkerName: row.WorkerName,
			DaysWorked: row.DaysWorked,
		})
	}
	return result, nil
}
