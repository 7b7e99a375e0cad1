package service

import (
	"go.uber.org/zap"

	"github.com/L52103/appEscritorioControl/internal/repository"
	"github.com/L52103/appEscritorioControl/pkg/jwt"
	"github.com/L52103/appEscritorioControl/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth            AuthService
	Worker          WorkerService
	Company         CompanyService
	Branch          BranchService
	WorkArea        WorkAreaService
	Shift           ShiftService
	ShiftAssignment ShiftAssignmentService
	Attendance      AttendanceService
	Payroll         PayrollService
	Report          ReportService
	Export          ExportService
	Prediction      PredictionService
}

// NewService wires the service aggregate. rdb may be nil when redis is
// unavailable; auth then skips the token blacklist.
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	cls MessageClassifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:            NewAuthService(repo, jwtMgr, rdb, logger),
		Worker:          NewWorkerService(repo, logger),
		Company:         NewCompanyService(repo, logger),
		Branch:          NewBranchService(repo, logger),
		WorkArea:        NewWorkAreaService(repo, logger),
		Shift:           NewShiftService(repo, logger),
		ShiftAssignment: NewShiftAssignmentService(repo, logger),
		Attendance:      NewAttendanceService(repo, cls, logger),
		Payroll:         NewPayrollService(repo, logger),
		Report:          NewReportService(repo, logger),
		Export:          NewExportService(repo, logger),
		Prediction:      NewPredictionService(repo, logger),
	}
}
