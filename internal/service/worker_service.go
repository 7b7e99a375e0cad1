package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/model"
	"github.com/L52103/appEscritorioControl/internal/repository"
)

var (
	ErrEmailTaken = errors.New("el email ya está registrado")
	ErrRUTTaken   = errors.New("el rut ya está registrado")
)

// WorkerService is the worker CRUD surface.
type WorkerService interface {
	Create(ctx context.Context, req *dto.CreateWorkerRequest) (*dto.WorkerResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.WorkerResponse, error)
	List(ctx context.Context) ([]dto.WorkerResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateWorkerRequest) (*dto.WorkerResponse, error)
	Delete(ctx context.Context, id int64) error
}

type workerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewWorkerService(repo *repository.Repository, logger *zap.Logger) WorkerService {
	return &workerService{repo: repo, logger: logger}
}

func (s *workerService) Create(ctx context.Context, req *dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	rut := strings.TrimSpace(req.RUT)

	if _, err := s.repo.Worker.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.Worker.GetByRUT(ctx, rut); err == nil {
		return nil, ErrRUTTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	worker := &model.Worker{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		RUT:          rut,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
		BranchID:     req.BranchID,
	}
	if err := s.repo.Worker.Create(ctx, worker); err != nil {
		s.logger.Error("crear trabajador falló", zap.Error(err))
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

func (s *workerService) GetByID(ctx context.Context, id int64) (*dto.WorkerResponse, error) {
	worker, err := s.repo.Worker.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

func (s *workerService) List(ctx context.Context) ([]dto.WorkerResponse, error) {
	workers, err := s.repo.Worker.List(ctx)
	if err != nil {
		s.logger.Error("listar trabajadores falló", zap.Error(err))
		return nil, err
	}
	result := make([]dto.WorkerResponse, 0, len(workers))
	for i := range workers {
		result = append(result, *toWorkerResponse(&workers[i]))
	}
	return result, nil
}

func (s *workerService) Update(ctx context.Context, id int64, req *dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	worker, err := s.repo.Worker.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		worker.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		worker.LastName = *req.LastName
	}
	if req.RUT != nil {
		worker.RUT = strings.TrimSpace(*req.RUT)
	}
	if req.Email != nil {
		worker.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		worker.PasswordHash = string(hash)
	}
	if req.IsAdmin != nil {
		worker.IsAdmin = *req.IsAdmin
	}
	if req.BranchID != nil {
		worker.BranchID = req.BranchID
	}

	if err := s.repo.Worker.Update(ctx, worker); err != nil {
		s.logger.Error("actualizar trabajador falló", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

func (s *workerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Worker.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkerNotFound
		}
		return err
	}
	return s.repo.Worker.Delete(ctx, id)
}

func toWorkerResponse(w *model.Worker) *dto.WorkerResponse {
	resp := &dto.WorkerResponse{
		ID:        w.ID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		RUT:       w.RUT,
		Email:     w.Email,
		IsAdmin:   w.IsAdmin,
		BranchID:  w.BranchID,
	}
	if w.Branch != nil {
		resp.BranchName = w.Branch.Name
	}
	return resp
}
