package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/L52103/appEscritorioControl/internal/model"
	"github.com/L52103/appEscritorioControl/internal/repository"
)

var (
	ErrExportNoRecords     = errors.New("no hay registros de asistencia para exportar")
	ErrExportNoAssignments = errors.New("el trabajador no tiene turnos asignados")
)

// ExportService renders the attendance ledger and reports as Excel
// files and a worker's shift plan as an iCalendar feed. Buffers are
// returned for the handler to stream with the right headers.
type ExportService interface {
	ExportAttendance(ctx context.Context) (*bytes.Buffer, string, error)
	ExportMonthlyReport(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportShiftCalendar serializes one worker's assignments as an
	// .ics feed, one recurring daily event per assignment.
	ExportShiftCalendar(ctx context.Context, workerID int64) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── ExportAttendance ──────────────────────

var attendanceHeaders = []string{
	"Trabajador", "Fecha", "Entrada", "Salida", "Asistencia", "Justificado",
	"Procesado IA", "Mensaje", "Categoría", "Inicio Inasistencia", "Fin Inasistencia", "Días",
}

func (s *exportService) ExportAttendance(ctx context.Context) (*bytes.Buffer, string, error) {
	records, err := s.repo.Attendance.List(ctx)
	if err != nil {
		s.logger.Error("listar asistencias para exportar falló", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Asistencias"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for i, header := range attendanceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx := range records {
		r := &records[rowIdx]
		name := fmt.Sprintf("#%d", r.WorkerID)
		if r.Worker != nil {
			name = r.Worker.FullName()
		}
		values := []interface{}{
			name,
			formatDatePtr(r.Date),
			formatTimePtr(r.EntryTime),
			formatTimePtr(r.ExitTime),
			boolToSiNo(r.IsAttendance),
			boolPtrToSiNo(r.Justified),
			boolToSiNo(r.Processed),
			stringPtr(r.Message),
			stringPtr(r.Category),
			formatDatePtr(r.AbsenceStart),
			formatDatePtr(r.AbsenceEnd),
			intPtr(r.AbsenceDays),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "D", 12)
	f.SetColWidth(sheet, "E", "G", 12)
	f.SetColWidth(sheet, "H", "H", 40)
	f.SetColWidth(sheet, "I", "L", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("generar excel falló", zap.Error(err))
		return nil, "", err
	}
	filename := fmt.Sprintf("asistencias_%s.xlsx", s.now().Format("2006-01-02"))
	return buf, filename, nil
}

// ────────────────────── ExportMonthlyReport ──────────────────────

func (s *exportService) ExportMonthlyReport(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.repo.Report.MonthlyAttendance(ctx)
	if err != nil {
		s.logger.Error("generar reporte para exportar falló", zap.Error(err))
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrExportNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Reporte Mensual"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for i, header := range []string{"Mes", "Trabajador", "Días Trabajados"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.Month)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.WorkerName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), row.DaysWorked)
	}
	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "B", 24)
	f.SetColWidth(sheet, "C", "C", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("generar excel falló", zap.Error(err))
		return nil, "", err
	}
	filename := fmt.Sprintf("reporte_mensual_%s.xlsx", s.now().Format("2006-01-02"))
	return buf, filename, nil
}

// ────────────────────── ExportShiftCalendar ──────────────────────

func (s *exportService) ExportShiftCalendar(ctx context.Context, workerID int64) ([]byte, string, error) {
	if _, err := s.repo.Worker.GetByID(ctx, workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrWorkerNotFound
		}
		return nil, "", err
	}
	assignments, err := s.repo.ShiftAssignment.ListByWorker(ctx, workerID)
	if err != nil {
		s.logger.Error("listar asignaciones para exportar falló", zap.Error(err))
		return nil, "", err
	}
	if len(assignments) == 0 {
		return nil, "", ErrExportNoAssignments
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//control-asistencia//turnos//ES")

	for i := range assignments {
		a := &assignments[i]
		if a.Shift == nil {
			continue
		}
		event := cal.AddEvent(fmt.Sprintf("turno-%d@control-asistencia", a.ID))
		event.SetCreatedTime(s.now())
		event.SetDtStampTime(s.now())
		event.SetStartAt(combineDateTime(a.StartDate, a.Shift.StartTime))
		event.SetEndAt(combineDateTime(a.StartDate, a.Shift.EndTime))
		event.SetSummary(fmt.Sprintf("Turno %s", a.Shift.Kind))
		if a.Shift.Area != nil {
			event.SetLocation(a.Shift.Area.Name)
		}
		// Daily recurrence until the assignment ends; open-ended
		// assignments recur without an UNTIL bound.
		rule := "FREQ=DAILY"
		if a.EndDate != nil {
			until := combineDateTime(*a.EndDate, a.Shift.EndTime)
			rule = fmt.Sprintf("FREQ=DAILY;UNTIL=%s", until.UTC().Format("20060102T150405Z"))
		}
		event.AddRrule(rule)
	}

	filename := fmt.Sprintf("turnos_trabajador_%d.ics", workerID)
	return []byte(cal.Serialize()), filename, nil
}

func combineDateTime(d model.DateOnly, t model.TimeOfDay) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, t.Second, 0, time.UTC)
}

// ── cell formatting helpers ──

func formatDatePtr(d *model.DateOnly) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func formatTimePtr(t *model.TimeOfDay) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func stringPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intPtr(n *int) interface{} {
	if n == nil {
		return ""
	}
	return *n
}

func boolToSiNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func boolPtrToSiNo(b *bool) string {
	if b == nil {
		return ""
	}
	return boolToSiNo(*b)
}
