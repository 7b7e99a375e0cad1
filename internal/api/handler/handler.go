package handler

import "github.com/L52103/appEscritorioControl/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	Worker     *WorkerHandler
	Company    *CompanyHandler
	Branch     *BranchHandler
	WorkArea   *WorkAreaHandler
	Shift      *ShiftHandler
	Assignment *ShiftAssignmentHandler
	Attendance *AttendanceHandler
	Payroll    *PayrollHandler
	Report     *ReportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Worker:     NewWorkerHandler(svc.Worker),
		Company:    NewCompanyHandler(svc.Company),
		Branch:     NewBranchHandler(svc.Branch),
		WorkArea:   NewWorkAreaHandler(svc.WorkArea),
		Shift:      NewShiftHandler(svc.Shift),
		Assignment: NewShiftAssignmentHandler(svc.ShiftAssignment),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Payroll:    NewPayrollHandler(svc.Payroll),
		Report:     NewReportHandler(svc.Report, svc.Export, svc.Prediction),
	}
}
