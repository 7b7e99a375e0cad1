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
	ErrCompanyNotFound  = errors.New("empresa no encontrada")
	ErrBranchNotFound   = errors.New("sucursal no encontrada")
	ErrWorkAreaNotFound = errors.New("área de trabajo no encontrada")
)

// ── Company ──

type CompanyService interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error)
	List(ctx context.Context) ([]dto.CompanyResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	Delete(ctx context.Context, id int64) error
}

type companyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewCompanyService(repo *repository.Repository, logger *zap.Logger) CompanyService {
	return &companyService{repo: repo, logger: logger}
}

func (s *companyService) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &model.Company{Name: req.Name, RUT: req.RUT, Address: req.Address}
	if err := s.repo.Company.Create(ctx, company); err != nil {
		s.logger.Error("crear empresa falló", zap.Error(err))
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func (s *companyService) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := s.repo.Company.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func (s *companyService) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	companies, err := s.repo.Company.List(ctx)
	if err != nil {
		s.logger.Error("listar empresas falló", zap.Error(err))
		return nil, err
	}
	result := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		result = append(result, *toCompanyResponse(&companies[i]))
	}
	return result, nil
}

func (s *companyService) Update(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.repo.Company.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.RUT != nil {
		company.RUT = *req.RUT
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if err := s.repo.Company.Update(ctx, company); err != nil {
		s.logger.Error("actualizar empresa falló", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func (s *companyService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Company.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}
	return s.repo.Company.Delete(ctx, id)
}

func toCompanyResponse(c *model.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{ID: c.ID, Name: c.Name, RUT: c.RUT, Address: c.Address}
}

// ── Branch ──

type BranchService interface {
	Create(ctx context.Context, req *dto.CreateBranchRequest) (*dto.BranchResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.BranchResponse, error)
	List(ctx context.Context) ([]dto.BranchResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateBranchRequest) (*dto.BranchResponse, error)
	Delete(ctx context.Context, id int64) error
}

type branchService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewBranchService(repo *repository.Repository, logger *zap.Logger) BranchService {
	return &branchService{repo: repo, logger: logger}
}

func (s *branchService) Create(ctx context.Context, req *dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if _, err := s.repo.Company.GetByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	branch := &model.Branch{Name: req.Name, Address: req.Address, CompanyID: req.CompanyID}
	if err := s.repo.Branch.Create(ctx, branch); err != nil {
		s.logger.Error("crear sucursal falló", zap.Error(err))
		return nil, err
	}
	return toBranchResponse(branch), nil
}

func (s *branchService) GetByID(ctx context.Context, id int64) (*dto.BranchResponse, error) {
	branch, err := s.repo.Branch.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	return toBranchResponse(branch), nil
}

func (s *branchService) List(ctx context.Context) ([]dto.BranchResponse, error) {
	branches, err := s.repo.Branch.List(ctx)
	if err != nil {
		s.logger.Error("listar sucursales falló", zap.Error(err))
		return nil, err
	}
	result := make([]dto.BranchResponse, 0, len(branches))
	for i := range branches {
		result = append(result, *toBranchResponse(&branches[i]))
	}
	return result, nil
}

func (s *branchService) Update(ctx context.Context, id int64, req *dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := s.repo.Branch.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.CompanyID != nil {
		if _, err := s.repo.Company.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, err
		}
		branch.CompanyID = *req.CompanyID
		branch.Company = nil
	}
	if err := s.repo.Branch.Update(ctx, branch); err != nil {
		s.logger.Error("actualizar sucursal falló", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toBranchResponse(branch), nil
}

func (s *branchService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Branch.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBranchNotFound
		}
		return err
	}
	return s.repo.Branch.Delete(ctx, id)
}

func toBranchResponse(b *model.Branch) *dto.BranchResponse {
	resp := &dto.BranchResponse{ID: b.ID, Name: b.Name, Address: b.Address, CompanyID: b.CompanyID}
	if b.Company != nil {
		resp.CompanyName = b.Company.Name
	}
	return resp
}

// ── Work area ──

type WorkAreaService interface {
	Create(ctx context.Context, req *dto.CreateWorkAreaRequest) (*dto.WorkAreaResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.WorkAreaResponse, error)
	List(ctx context.Context) ([]dto.WorkAreaResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateWorkAreaRequest) (*dto.WorkAreaResponse, error)
	Delete(ctx context.Context, id int64) error
}

type workAreaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewWorkAreaService(repo *repository.Repository, logger *zap.Logger) WorkAreaService {
	return &workAreaService{repo: repo, logger: logger}
}

func (s *workAreaService) Create(ctx context.Context, req *dto.CreateWorkAreaRequest) (*dto.WorkAreaResponse, error) {
	if _, err := s.repo.Branch.GetByID(ctx, req.BranchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	area := &model.WorkArea{Name: req.Name, BranchID: req.BranchID}
	if err := s.repo.WorkArea.Create(ctx, area); err != nil {
		s.logger.Error("crear área falló", zap.Error(err))
		return nil, err
	}
	return toWorkAreaResponse(area), nil
}

func (s *workAreaService) GetByID(ctx context.Context, id int64) (*dto.WorkAreaResponse, error) {
	area, err := s.repo.WorkArea.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkAreaNotFound
		}
		return nil, err
	}
	return toWorkAreaResponse(area), nil
}

func (s *workAreaService) List(ctx context.Context) ([]dto.WorkAreaResponse, error) {
	areas, err := s.repo.WorkArea.List(ctx)
	if err != nil {
		s.logger.Error("listar áreas falló", zap.Error(err))
		return nil, err
	}
	result := make([]dto.WorkAreaResponse, 0, len(areas))
	for i := range areas {
		result = append(result, *toWorkAreaResponse(&areas[i]))
	}
	return result, nil
}

func (s *workAreaService) Update(ctx context.Context, id int64, req *dto.UpdateWorkAreaRequest) (*dto.WorkAreaResponse, error) {
	area, err := s.repo.WorkArea.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkAreaNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.BranchID != nil {
		if _, err := s.repo.Branch.GetByID(ctx, *req.BranchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBranchNotFound
			}
			return nil, err
		}
		area.BranchID = *req.BranchID
		area.Branch = nil
	}
	if err := s.repo.WorkArea.Update(ctx, area); err != nil {
		s.logger.Error("actualizar área falló", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toWorkAreaResponse(area), nil
}

func (s *workAreaService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.WorkArea.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkAreaNotFound
		}
		return err
	}
	return s.repo.WorkArea.Delete(ctx, id)
}

func toWorkAreaResponse(a *model.WorkArea) *dto.WorkAreaResponse {
	resp := &dto.WorkAreaResponse{ID: a.ID, Name: a.Name, BranchID: a.BranchID}
	if a.Branch != nil {
		resp.BranchName = a.Branch.Name
	}
	return resp
}
