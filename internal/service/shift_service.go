package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/model"
	"github.com/L52103/appEscritorioControl/internal/repository"
)

var (
	ErrShiftNotFound      = errors.New("turno no encontrado")
	ErrAssignmentNotFound = errors.New("asignación de turno no encontrada")
	ErrInvalidShiftTime   = errors.New("formato de hora inválido, se espera HH:MM:SS")
	ErrInvalidDate        = errors.New("formato de fecha inválido, se espera YYYY-MM-DD")
	ErrDateRangeInvalid   = errors.New("la fecha de término no puede ser anterior al inicio")
)

// ── Shift ──

type ShiftService interface {
	Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ShiftResponse, error)
	List(ctx context.Context) ([]dto.ShiftResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, id int64) error
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	start, err := model.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, ErrInvalidShiftTime
	}
	end, err := model.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, ErrInvalidShiftTime
	}
	if _, err := s.repo.WorkArea.GetByID(ctx, req.AreaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkAreaNotFound
		}
		return nil, err
	}

	shift := &model.Shift{StartTime: start, EndTime: end, Kind: req.Kind, AreaID: req.AreaID}
	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("crear turno falló", zap.Error(err))
		return nil, err
	}
	return toShiftResponse(shift), nil
}

func (s *shiftService) GetByID(ctx context.Context, id int64) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}
	return toShiftResponse(shift), nil
}

func (s *shiftService) List(ctx context.Context) ([]dto.ShiftResponse, error) {
	shifts, err := s.repo.Shift.List(ctx)
	if err != nil {
		s.logger.Error("listar turnos falló", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		result = append(result, *toShiftResponse(&shifts[i]))
	}
	return result, nil
}

func (s *shiftService) Update(ctx context.Context, id int64, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}

	if req.StartTime != nil {
		start, err := model.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			return nil, ErrInvalidShiftTime
		}
		shift.StartTime = start
	}
	if req.EndTime != nil {
		end, err := model.ParseTimeOfDay(*req.EndTime)
		if err != nil {
			return nil, ErrInvalidShiftTime
		}
		shift.EndTime = end
	}
	if req.Kind != nil {
		shift.Kind = *req.Kind
	}
	if req.AreaID != nil {
		if _, err := s.repo.WorkArea.GetByID(ctx, *req.AreaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrWorkAreaNotFound
			}
			return nil, err
		}
		shift.AreaID = *req.AreaID
		shift.Area = nil
	}

	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("actualizar turno falló", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toShiftResponse(shift), nil
}

func (s *shiftService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Shift.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftNotFound
		}
		return err
	}
	return s.repo.Shift.Delete(ctx, id)
}

func toShiftResponse(sh *model.Shift) *dto.ShiftResponse {
	resp := &dto.ShiftResponse{
		ID:        sh.ID,
		StartTime: sh.StartTime.String(),
		EndTime:   sh.EndTime.String(),
		Kind:      sh.Kind,
		AreaID:    sh.AreaID,
	}
	if sh.Area != nil {
		resp.AreaName = sh.Area.Name
	}
	return resp
}

// ── Shift assignment ──

type ShiftAssignmentService interface {
	Create(ctx context.Context, req *dto.CreateShiftAssignmentRequest) (*dto.ShiftAssignmentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ShiftAssignmentResponse, error)
	List(ctx context.Context) ([]dto.ShiftAssignmentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateShiftAssignmentRequest) (*dto.ShiftAssignmentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type shiftAssignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewShiftAssignmentService(repo *repository.Repository, logger *zap.Logger) ShiftAssignmentService {
	return &shiftAssignmentService{repo: repo, logger: logger}
}

func (s *shiftAssignmentService) Create(ctx context.Context, req *dto.CreateShiftAssignmentRequest) (*dto.ShiftAssignmentResponse, error) {
	if _, err := s.repo.Worker.GetByID(ctx, req.WorkerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Shift.GetByID(ctx, req.ShiftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}

	startDate, err := model.ParseDateOnly(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	var endDate *model.DateOnly
	if req.EndDate != nil {
		parsed, err := model.ParseDateOnly(*req.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if parsed.Time.Before(startDate.Time) {
			return nil, ErrDateRangeInvalid
		}
		endDate = &parsed
	}

	assignment := &model.ShiftAssignment{
		WorkerID:  req.WorkerID,
		ShiftID:   req.ShiftID,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := s.repo.ShiftAssignment.Create(ctx, assignment); err != nil {
		s.logger.Error("crear asignación falló", zap.Error(err))
		return nil, err
	}
	return toShiftAssignmentResponse(assignment), nil
}

func (s *shiftAssignmentService) GetByID(ctx context.Context, id int64) (*dto.ShiftAssignmentResponse, error) {
	assignment, err := s.repo.ShiftAssignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return toShiftAssignmentResponse(assignment), nil
}

func (s *shiftAssignmentService) List(ctx context.Context) ([]dto.ShiftAssignmentResponse, error) {
	assignments, err := s.repo.ShiftAssignment.List(ctx)
	if err != nil {
		s.logger.Error("listar asignaciones falló", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ShiftAssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, *toShiftAssignmentResponse(&assignments[i]))
	}
	return result, nil
}

func (s *shiftAssignmentService) Update(ctx context.Context, id int64, req *dto.UpdateShiftAssignmentRequest) (*dto.ShiftAssignmentResponse, error) {
	assignment, err := s.repo.ShiftAssignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	if req.WorkerID != nil {
		if _, err := s.repo.Worker.GetByID(ctx, *req.WorkerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrWorkerNotFound
			}
			return nil, err
		}
		assignment.WorkerID = *req.WorkerID
		assignment.Worker = nil
	}
	if req.ShiftID != nil {
		if _, err := s.repo.Shift.GetByID(ctx, *req.ShiftID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrShiftNotFound
			}
			return nil, err
		}
		assignment.ShiftID = *req.ShiftID
		assignment.Shift = nil
	}
	if req.StartDate != nil {
		startDate, err := model.ParseDateOnly(*req.StartDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		assignment.StartDate = startDate
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			assignment.EndDate = nil
		} else {
			endDate, err := model.ParseDateOnly(*req.EndDate)
			if err != nil {
				return nil, ErrInvalidDate
			}
			assignment.EndDate = &endDate
		}
	}
	if assignment.EndDate != nil && assignment.EndDate.Time.Before(assignment.StartDate.Time) {
		return nil, ErrDateRangeInvalid
	}

	if err := s.repo.ShiftAssignment.Update(ctx, assignment); err != nil {
		s.logger.Error("actualizar asignación falló", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toShiftAssignmentResponse(assignment), nil
}

func (s *shiftAssignmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.ShiftAssignment.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}
	return s.repo.ShiftAssignment.Delete(ctx, id)
}

func toShiftAssignmentResponse(a *model.ShiftAssignment) *dto.ShiftAssignmentResponse {
	resp := &dto.ShiftAssignmentResponse{
		ID:        a.ID,
		WorkerID:  a.WorkerID,
		ShiftID:   a.ShiftID,
		StartDate: a.StartDate.String(),
	}
	if a.EndDate != nil {
		v := a.EndDate.String()
		resp.EndDate = &v
	}
	if a.Worker != nil {
		resp.WorkerName = a.Worker.FullName()
	}
	if a.Shift != nil {
		resp.ShiftKind = a.Shift.Kind
	}
	return resp
}
