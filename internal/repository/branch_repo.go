package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/L52103/appEscritorioControl/internal/model"
)

// BranchRepository is the branch data-access interface.
type BranchRepository interface {
	Create(ctx context.Context, branch *model.Branch) error
	GetByID(ctx context.Context, id int64) (*model.Branch, error)
	List(ctx context.Context) ([]model.Branch, error)
	Update(ctx context.Context, branch *model.Branch) error
	Delete(ctx context.Context, id int64) error
}

type branchRepo struct {
	db *gorm.DB
}

// NewBranchRepo creates the GORM-backed BranchRepository.
func NewBranchRepo(db *gorm.DB) BranchRepository {
	return &branchRepo{db: db}
}

func (r *branchRepo) Create(ctx context.Context, branch *model.Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

func (r *branchRepo) GetByID(ctx context.Context, id int64) (*model.Branch, error) {
	var branch model.Branch
	err := r.db.WithContext(ctx).
		Preload("Company").
		Where("id = ?", id).
		First(&branch).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepo) List(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.WithContext(ctx).
		Preload("Company").
		Order("id ASC").
		Find(&branches).Error
	return branches, err
}

func (r *branchRepo) Update(ctx context.Context, branch *model.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}

func (r *branchRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Branch{}, id).Error
}
