package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	Worker          WorkerRepository
	Company         CompanyRepository
	Branch          BranchRepository
	WorkArea        WorkAreaRepository
	Shift           ShiftRepository
	ShiftAssignment ShiftAssignmentRepository
	Attendance      AttendanceRepository
	Payroll         PayrollRepository
	Report          ReportRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Worker:          NewWorkerRepo(db),
		Company:         NewCompanyRepo(db),
		Branch:          NewBranchRepo(db),
		WorkArea:        NewWorkAreaRepo(db),
		Shift:           NewShiftRepo(db),
		ShiftAssignment: NewShiftAssignmentRepo(db),
		Attendance:      NewAttendanceRepo(db),
		Payroll:         NewPayrollRepo(db),
		Report:          NewReportRepo(db),
	}
}
