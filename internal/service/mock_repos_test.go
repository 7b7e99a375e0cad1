package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/L52103/appEscritorioControl/internal/model"
	"github.com/L52103/appEscritorioControl/internal/repository"
)

// ── Mock WorkerRepository ──

type mockWorkerRepo struct {
	workers map[int64]*model.Worker
	nextID  int64
}

func newMockWorkerRepo() *mockWorkerRepo {
	return &mockWorkerRepo{workers: make(map[int64]*model.Worker), nextID: 1}
}

func (m *mockWorkerRepo) Create(_ context.Context, worker *model.Worker) error {
	if worker.ID == 0 {
		worker.ID = m.nextID
		m.nextID++
	}
	m.workers[worker.ID] = worker
	return nil
}

func (m *mockWorkerRepo) GetByID(_ context.Context, id int64) (*model.Worker, error) {
	if w, ok := m.workers[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkerRepo) GetByEmail(_ context.Context, email string) (*model.Worker, error) {
	for _, w := range m.workers {
		if w.Email == email {
			return w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkerRepo) GetByRUT(_ context.Context, rut string) (*model.Worker, error) {
	for _, w := range m.workers {
		if w.RUT == rut {
			return w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkerRepo) List(_ context.Context) ([]model.Worker, error) {
	ids := make([]int64, 0, len(m.workers))
	for id := range m.workers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]model.Worker, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.workers[id])
	}
	return result, nil
}

func (m *mockWorkerRepo) Update(_ context.Context, worker *model.Worker) error {
	m.workers[worker.ID] = worker
	return nil
}

func (m *mockWorkerRepo) Delete(_ context.Context, id int64) error {
	delete(m.workers, id)
	return nil
}

// ── Mock CompanyRepository ──

type mockCompanyRepo struct {
	companies map[int64]*model.Company
	nextID    int64
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: make(map[int64]*model.Company), nextID: 1}
}

func (m *mockCompanyRepo) Create(_ context.Context, company *model.Company) error {
	if company.ID == 0 {
		company.ID = m.nextID
		m.nextID++
	}
	m.companies[company.ID] = company
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id int64) (*model.Company, error) {
	if c, ok := m.companies[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompanyRepo) List(_ context.Context) ([]model.Company, error) {
	var result []model.Company
	for _, c := range m.companies {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCompanyRepo) Update(_ context.Context, company *model.Company) error {
	m.companies[company.ID] = company
	return nil
}

func (m *mockCompanyRepo) Delete(_ context.Context, id int64) error {
	delete(m.companies, id)
	return nil
}

// ── Mock BranchRepository ──

type mockBranchRepo struct {
	branches map[int64]*model.Branch
	nextID   int64
}

func newMockBranchRepo() *mockBranchRepo {
	return &mockBranchRepo{branches: make(map[int64]*model.Branch), nextID: 1}
}

func (m *mockBranchRepo) Create(_ context.Context, branch *model.Branch) error {
	if branch.ID == 0 {
		branch.ID = m.nextID
		m.nextID++
	}
	m.branches[branch.ID] = branch
	return nil
}

func (m *mockBranchRepo) GetByID(_ context.Context, id int64) (*model.Branch, error) {
	if b, ok := m.branches[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBranchRepo) List(_ context.Context) ([]model.Branch, error) {
	var result []model.Branch
	for _, b := range m.branches {
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockBranchRepo) Update(_ context.Context, branch *model.Branch) error {
	m.branches[branch.ID] = branch
	return nil
}

func (m *mockBranchRepo) Delete(_ context.Context, id int64) error {
	delete(m.branches, id)
	return nil
}

// ── Mock WorkAreaRepository ──

type mockWorkAreaRepo struct {
	areas  map[int64]*model.WorkArea
	nextID int64
}

func newMockWorkAreaRepo() *mockWorkAreaRepo {
	return &mockWorkAreaRepo{areas: make(map[int64]*model.WorkArea), nextID: 1}
}

func (m *mockWorkAreaRepo) Create(_ context.Context, area *model.WorkArea) error {
	if area.ID == 0 {
		area.ID = m.nextID
		m.nextID++
	}
	m.areas[area.ID] = area
	return nil
}

func (m *mockWorkAreaRepo) GetByID(_ context.Context, id int64) (*model.WorkArea, error) {
	if a, ok := m.areas[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkAreaRepo) List(_ context.Context) ([]model.WorkArea, error) {
	var result []model.WorkArea
	for _, a := range m.areas {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockWorkAreaRepo) Update(_ context.Context, area *model.WorkArea) error {
	m.areas[area.ID] = area
	return nil
}

func (m *mockWorkAreaRepo) Delete(_ context.Context, id int64) error {
	delete(m.areas, id)
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[int64]*model.Shift
	nextID int64
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[int64]*model.Shift), nextID: 1}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ID == 0 {
		shift.ID = m.nextID
		m.nextID++
	}
	m.shifts[shift.ID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id int64) (*model.Shift, error) {
	if sh, ok := m.shifts[id]; ok {
		return sh, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) List(_ context.Context) ([]model.Shift, error) {
	var result []model.Shift
	for _, sh := range m.shifts {
		result = append(result, *sh)
	}
	return result, nil
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	m.shifts[shift.ID] = shift
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id int64) error {
	delete(m.shifts, id)
	return nil
}

// ── Mock ShiftAssignmentRepository ──

type mockShiftAssignmentRepo struct {
	assignments map[int64]*model.ShiftAssignment
	nextID      int64
}

func newMockShiftAssignmentRepo() *mockShiftAssignmentRepo {
	return &mockShiftAssignmentRepo{assignments: make(map[int64]*model.ShiftAssignment), nextID: 1}
}

func (m *mockShiftAssignmentRepo) Create(_ context.Context, assignment *model.ShiftAssignment) error {
	if assignment.ID == 0 {
		assignment.ID = m.nextID
		m.nextID++
	}
	m.assignments[assignment.ID] = assignment
	return nil
}

func (m *mockShiftAssignmentRepo) GetByID(_ context.Context, id int64) (*model.ShiftAssignment, error) {
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftAssignmentRepo) List(_ context.Context) ([]model.ShiftAssignment, error) {
	var result []model.ShiftAssignment
	for _, a := range m.assignments {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockShiftAssignmentRepo) ListByWorker(_ context.Context, workerID int64) ([]model.ShiftAssignment, error) {
	var result []model.ShiftAssignment
	for _, a := range m.assignments {
		if a.WorkerID == workerID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.Time.Before(result[j].StartDate.Time)
	})
	return result, nil
}

func (m *mockShiftAssignmentRepo) Update(_ context.Context, assignment *model.ShiftAssignment) error {
	m.assignments[assignment.ID] = assignment
	return nil
}

func (m *mockShiftAssignmentRepo) Delete(_ context.Context, id int64) error {
	delete(m.assignments, id)
	return nil
}

// ── Mock AttendanceRepository ──

// mockAttendanceRepo keeps records in memory and mirrors the SQL
// orderings of the real finders. Transaction runs fn on the repo
// itself; single-goroutine tests need no real locking.
type mockAttendanceRepo struct {
	records map[int64]*model.AttendanceRecord
	nextID  int64
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[int64]*model.AttendanceRecord), nextID: 1}
}

func (m *mockAttendanceRepo) Transaction(_ context.Context, fn func(tx repository.AttendanceRepository) error) error {
	return fn(m)
}

func (m *mockAttendanceRepo) GetForUpdate(_ context.Context, id int64) (*model.AttendanceRecord, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, nil
}

// dateRank orders nullable dates descending with nulls last.
func dateRank(d *model.DateOnly) int64 {
	if d == nil {
		return -1 << 62
	}
	return d.Time.Unix()
}

func timeRank(t *model.TimeOfDay) int {
	if t == nil {
		return -1
	}
	return t.Seconds()
}

func (m *mockAttendanceRepo) FindLatestForUpdate(_ context.Context, workerID int64) (*model.AttendanceRecord, error) {
	var best *model.AttendanceRecord
	for _, r := range m.records {
		if r.WorkerID != workerID {
			continue
		}
		if best == nil {
			best = r
			continue
		}
		switch {
		case dateRank(r.Date) != dateRank(best.Date):
			if dateRank(r.Date) > dateRank(best.Date) {
				best = r
			}
		case timeRank(r.EntryTime) != timeRank(best.EntryTime):
			if timeRank(r.EntryTime) > timeRank(best.EntryTime) {
				best = r
			}
		case r.ID > best.ID:
			best = r
		}
	}
	return best, nil
}

func (m *mockAttendanceRepo) FindOpenForUpdate(_ context.Context, workerID int64) (*model.AttendanceRecord, error) {
	var best *model.AttendanceRecord
	for _, r := range m.records {
		if r.WorkerID != workerID {
			continue
		}
		if best == nil {
			best = r
			continue
		}
		switch {
		case dateRank(r.Date) != dateRank(best.Date):
			if dateRank(r.Date) > dateRank(best.Date) {
				best = r
			}
		case r.ID > best.ID:
			best = r
		}
	}
	return best, nil
}

func (m *mockAttendanceRepo) FindTodayForUpdate(_ context.Context, workerID int64, day model.DateOnly) (*model.AttendanceRecord, error) {
	var best *model.AttendanceRecord
	for _, r := range m.records {
		if r.WorkerID != workerID || r.Date == nil || !r.Date.Time.Equal(day.Time) {
			continue
		}
		if best == nil || r.ID > best.ID {
			best = r
		}
	}
	return best, nil
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.AttendanceRecord) error {
	if record.ID == 0 {
		record.ID = m.nextID
		m.nextID++
	}
	m.records[record.ID] = record
	return nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, record *model.AttendanceRecord) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockAttendanceRepo) List(_ context.Context) ([]model.AttendanceRecord, error) {
	ids := make([]int64, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	result := make([]model.AttendanceRecord, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.records[id])
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListJustifiedAbsences(_ context.Context, workerID int64) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.WorkerID != workerID || r.Justified == nil || !*r.Justified || !r.Processed || r.AbsenceStart == nil {
			continue
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].AbsenceStart.Time.Equal(result[j].AbsenceStart.Time) {
			return result[i].AbsenceStart.Time.Before(result[j].AbsenceStart.Time)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// ── Mock PayrollRepository ──

type mockPayrollRepo struct {
	payrolls map[int64]*model.Payroll
	rows     []repository.PayrollRow
}

func newMockPayrollRepo() *mockPayrollRepo {
	return &mockPayrollRepo{payrolls: make(map[int64]*model.Payroll)}
}

func (m *mockPayrollRepo) ListMonthly(_ context.Context, _ string) ([]repository.PayrollRow, error) {
	rows := make([]repository.PayrollRow, len(m.rows))
	copy(rows, m.rows)
	for i := range rows {
		if p, ok := m.payrolls[rows[i].WorkerID]; ok {
			rows[i].HourlyRate = p.HourlyRate
			rows[i].StoredSalary = p.StoredSalary
		}
	}
	return rows, nil
}

func (m *mockPayrollRepo) Get(_ context.Context, workerID int64) (*model.Payroll, error) {
	if p, ok := m.payrolls[workerID]; ok {
		return p, nil
	}
	return nil, nil
}

func (m *mockPayrollRepo) Upsert(_ context.Context, payroll *model.Payroll) error {
	m.payrolls[payroll.WorkerID] = payroll
	return nil
}

// ── Mock ReportRepository ──

type mockReportRepo struct {
	rows []repository.MonthlyAttendanceRow
}

func newMockReportRepo() *mockReportRepo { return &mockReportRepo{} }

func (m *mockReportRepo) MonthlyAttendance(_ context.Context) ([]repository.MonthlyAttendanceRow, error) {
	return m.rows, nil
}

// newMockRepository assembles the full aggregate used by most tests.
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		Worker:          newMockWorkerRepo(),
		Company:         newMockCompanyRepo(),
		Branch:          newMockBranchRepo(),
		WorkArea:        newMockWorkAreaRepo(),
		Shift:           newMockShiftRepo(),
		ShiftAssignment: newMockShiftAssignmentRepo(),
		Attendance:      newMockAttendanceRepo(),
		Payroll:         newMockPayrollRepo(),
		Report:          newMockReportRepo(),
	}
}
