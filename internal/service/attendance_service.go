package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/L52103/appEscritorioControl/internal/classifier"
	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/model"
	"github.com/L52103/appEscritorioControl/internal/repository"
)

// ── Attendance business errors ──

var (
	ErrMissingIdentity    = errors.New("debe indicar id, email o rut del trabajador")
	ErrWorkerNotFound     = errors.New("trabajador no encontrado")
	ErrEmptyMessage       = errors.New("el mensaje de justificación no puede estar vacío")
	ErrEntryAlreadyMarked = errors.New("la entrada de hoy ya fue marcada")
	ErrNoRecordToday      = errors.New("no existe registro de asistencia para hoy")
	ErrExitWithoutEntry   = errors.New("no se puede marcar salida sin una entrada previa")
	ErrExitAlreadyMarked  = errors.New("la salida de hoy ya fue marcada")
	ErrRecordNotFound     = errors.New("registro de asistencia no encontrado")
	ErrRecordIsAttendance = errors.New("el registro es de asistencia, no de inasistencia")
	ErrAlreadyProcessed   = errors.New("el registro ya fue procesado")
)

// MessageClassifier is the text-to-category/date-range boundary used
// during justification processing.
type MessageClassifier interface {
	Classify(ctx context.Context, message string, refDate model.DateOnly) classifier.Result
}

// AttendanceService owns the check-in/check-out/justification state
// machine over the attendance ledger.
type AttendanceService interface {
	// CheckIn marks the worker's entry for the current day.
	CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.TransitionResponse, error)
	// CheckOut marks the worker's exit on today's record.
	CheckOut(ctx context.Context, req *dto.CheckOutRequest) (*dto.TransitionResponse, error)
	// AttachMessage stores a justification on the worker's most recent
	// record, or creates a placeholder absence row when none exists.
	AttachMessage(ctx context.Context, req *dto.AttachMessageRequest) (*dto.TransitionResponse, error)
	// Process runs the classifier over one unprocessed absence record.
	Process(ctx context.Context, recordID int64) (*dto.AttendanceResponse, error)
	List(ctx context.Context) ([]dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo       *repository.Repository
	classifier MessageClassifier
	logger     *zap.Logger
	now        func() time.Time
}

// NewAttendanceService creates the AttendanceService.
func NewAttendanceService(repo *repository.Repository, cls MessageClassifier, logger *zap.Logger) AttendanceService {
	return &attendanceService{
		repo:       repo,
		classifier: cls,
		logger:     logger,
		now:        time.Now,
	}
}

// resolveWorker looks the worker up by exactly one identifier, with
// precedence worker_id, email, rut.
func (s *attendanceService) resolveWorker(ctx context.Context, identity dto.IdentityRequest) (*model.Worker, error) {
	var (
		worker *model.Worker
		err    error
	)
	switch {
	case identity.WorkerID != nil:
		worker, err = s.repo.Worker.GetByID(ctx, *identity.WorkerID)
	case strings.TrimSpace(identity.Email) != "":
		worker, err = s.repo.Worker.GetByEmail(ctx, strings.TrimSpace(identity.Email))
	case strings.TrimSpace(identity.RUT) != "":
		worker, err = s.repo.Worker.GetByRUT(ctx, strings.TrimSpace(identity.RUT))
	default:
		return nil, ErrMissingIdentity
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		s.logger.Error("buscar trabajador falló", zap.Error(err))
		return nil, err
	}
	return worker, nil
}

// ────────────────────── CheckIn ──────────────────────

func (s *attendanceService) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.TransitionResponse, error) {
	worker, err := s.resolveWorker(ctx, req.IdentityRequest)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := model.NewDateOnly(now)
	entry := model.NewTimeOfDay(now)

	var result *dto.TransitionResponse
	err = s.repo.Attendance.Transaction(ctx, func(tx repository.AttendanceRepository) error {
		record, err := tx.FindOpenForUpdate(ctx, worker.ID)
		if err != nil {
			return err
		}

		// A row without an entry mark (a justification placeholder)
		// absorbs today's check-in instead of spawning a second row.
		if record != nil && record.EntryTime == nil {
			record.Date = &today
			record.EntryTime = &entry
			record.IsAttendance = true
			if err := tx.Update(ctx, record); err != nil {
				return err
			}
			result = &dto.TransitionResponse{Record: toAttendanceResponse(record), Created: false}
			return nil
		}

		if record != nil && record.EntryTime != nil && record.ExitTime == nil &&
			record.Date != nil && record.Date.Time.Equal(today.Time) {
			return ErrEntryAlreadyMarked
		}

		justified := false
		fresh := &model.AttendanceRecord{
			WorkerID:     worker.ID,
			Date:         &today,
			EntryTime:    &entry,
			IsAttendance: true,
			Justified:    &justified,
		}
		if err := tx.Create(ctx, fresh); err != nil {
			return err
		}
		result = &dto.TransitionResponse{Record: toAttendanceResponse(fresh), Created: true}
		return nil
	})
	if err != nil {
		if isAttendanceBusinessErr(err) {
			return nil, err
		}
		s.logger.Error("marcar entrada falló", zap.Int64("trabajador", worker.ID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// ────────────────────── CheckOut ──────────────────────

func (s *attendanceService) CheckOut(ctx context.Context, req *dto.CheckOutRequest) (*dto.TransitionResponse, error) {
	worker, err := s.resolveWorker(ctx, req.IdentityRequest)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := model.NewDateOnly(now)
	exit := model.NewTimeOfDay(now)

	var result *dto.TransitionResponse
	err = s.repo.Attendance.Transaction(ctx, func(tx repository.AttendanceRepository) error {
		record, err := tx.FindTodayForUpdate(ctx, worker.ID, today)
		if err != nil {
			return err
		}
		if record == nil {
			return ErrNoRecordToday
		}
		if record.EntryTime == nil {
			return ErrExitWithoutEntry
		}
		if record.ExitTime != nil {
			return ErrExitAlreadyMarked
		}

		record.ExitTime = &exit
		record.IsAttendance = true
		if err := tx.Update(ctx, record); err != nil {
			return err
		}
		result = &dto.TransitionResponse{Record: toAttendanceResponse(record), Created: false}
		return nil
	})
	if err != nil {
		if isAttendanceBusinessErr(err) {
			return nil, err
		}
		s.logger.Error("marcar salida falló", zap.Int64("trabajador", worker.ID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// ────────────────────── AttachMessage ──────────────────────

func (s *attendanceService) AttachMessage(ctx context.Context, req *dto.AttachMessageRequest) (*dto.TransitionResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	worker, err := s.resolveWorker(ctx, req.IdentityRequest)
	if err != nil {
		return nil, err
	}

	today := model.NewDateOnly(s.now())

	var result *dto.TransitionResponse
	err = s.repo.Attendance.Transaction(ctx, func(tx repository.AttendanceRepository) error {
		record, err := tx.FindLatestForUpdate(ctx, worker.ID)
		if err != nil {
			return err
		}

		if record != nil {
			justified := true
			record.Message = &message
			record.Processed = false
			record.Category = nil
			record.Justified = &justified
			record.AbsenceStart = nil
			record.AbsenceEnd = nil
			record.AbsenceDays = nil
			if err := tx.Update(ctx, record); err != nil {
				return err
			}
			result = &dto.TransitionResponse{Record: toAttendanceResponse(record), Created: false}
			return nil
		}

		justified := true
		fresh := &model.AttendanceRecord{
			WorkerID:     worker.ID,
			Date:         &today,
			Message:      &message,
			IsAttendance: false,
			Justified:    &justified,
		}
		if err := tx.Create(ctx, fresh); err != nil {
			return err
		}
		result = &dto.TransitionResponse{Record: toAttendanceResponse(fresh), Created: true}
		return nil
	})
	if err != nil {
		if isAttendanceBusinessErr(err) {
			return nil, err
		}
		s.logger.Error("adjuntar mensaje falló", zap.Int64("trabajador", worker.ID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// ────────────────────── Process ──────────────────────

func (s *attendanceService) Process(ctx context.Context, recordID int64) (*dto.AttendanceResponse, error) {
	var result *dto.AttendanceResponse
	err := s.repo.Attendance.Transaction(ctx, func(tx repository.AttendanceRepository) error {
		record, err := tx.GetForUpdate(ctx, recordID)
		if err != nil {
			return err
		}
		if record == nil {
			return ErrRecordNotFound
		}
		if record.IsAttendance {
			return ErrRecordIsAttendance
		}
		if record.Processed {
			return ErrAlreadyProcessed
		}

		refDate := model.NewDateOnly(s.now())
		if record.Date != nil {
			refDate = *record.Date
		}

		var (
			summary  string
			category string
			start    model.DateOnly
			end      model.DateOnly
			days     int
		)
		if record.Justified == nil || !*record.Justified {
			summary = classifier.DefaultUnjustifiedSummary
			category = model.CategoryOther
			start, end, days = refDate, refDate, 1
		} else {
			message := ""
			if record.Message != nil {
				message = *record.Message
			}
			res := s.classifier.Classify(ctx, message, refDate)
			summary = res.Summary
			category = res.Category
			start, end, days = res.Start, res.End, res.Days
		}

		record.Message = &summary
		record.Category = &category
		record.AbsenceStart = &start
		record.AbsenceEnd = &end
		record.AbsenceDays = &days
		record.Processed = true
		if err := tx.Update(ctx, record); err != nil {
			return err
		}
		result = toAttendanceResponse(record)
		return nil
	})
	if err != nil {
		if isAttendanceBusinessErr(err) {
			return nil, err
		}
		s.logger.Error("procesar justificación falló", zap.Int64("registro", recordID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// ────────────────────── List ──────────────────────

func (s *attendanceService) List(ctx context.Context) ([]dto.AttendanceResponse, error) {
	records, err := s.repo.Attendance.List(ctx)
	if err != nil {
		s.logger.Error("listar asistencias falló", zap.Error(err))
		return nil, err
	}
	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		result = append(result, *toAttendanceResponse(&records[i]))
	}
	return result, nil
}

// isAttendanceBusinessErr separates expected state-machine outcomes
// from infrastructure failures so the latter get logged once.
func isAttendanceBusinessErr(err error) bool {
	for _, known := range []error{
		ErrMissingIdentity, ErrWorkerNotFound, ErrEmptyMessage,
		ErrEntryAlreadyMarked, ErrNoRecordToday, ErrExitWithoutEntry,
		ErrExitAlreadyMarked, ErrRecordNotFound, ErrRecordIsAttendance,
		ErrAlreadyProcessed,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

func toAttendanceResponse(r *model.AttendanceRecord) *dto.AttendanceResponse {
	resp := &dto.AttendanceResponse{
		ID:           r.ID,
		WorkerID:     r.WorkerID,
		IsAttendance: r.IsAttendance,
		Justified:    r.Justified,
		Processed:    r.Processed,
		Message:      r.Message,
		Category:     r.Category,
		AbsenceDays:  r.AbsenceDays,
	}
	if r.Worker != nil {
		resp.WorkerName = r.Worker.FullName()
	}
	if r.Date != nil {
		v := r.Date.String()
		resp.Date = &v
	}
	if r.EntryTime != nil {
		v := r.EntryTime.String()
		resp.EntryTime = &v
	}
	if r.ExitTime != nil {
		v := r.ExitTime.String()
		resp.ExitTime = &v
	}
	if r.AbsenceStart != nil {
		v := r.AbsenceStart.String()
		resp.AbsenceStart = &v
	}
	if r.AbsenceEnd != nil {
		v := r.AbsenceEnd.String()
		resp.AbsenceEnd = &v
	}
	return resp
}
