package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/L52103/appEscritorioControl/internal/model"
)

// WorkAreaRepository is the work-area data-access interface.
type WorkAreaRepository interface {
	Create(ctx context.Context, area *model.WorkArea) error
	GetByID(ctx context.Context, id int64) (*model.WorkArea, error)
	List(ctx context.Context) ([]model.WorkArea, error)
	Update(ctx context.Context, area *model.WorkArea) error
	Delete(ctx context.Context, id int64) error
}

type workAreaRepo struct {
	db *gorm.DB
}

// NewWorkAreaRepo creates the GORM-backed WorkAreaRepository.
func NewWorkAreaRepo(db *gorm.DB) WorkAreaRepository {
	return &workAreaRepo{db: db}
}

func (r *workAreaRepo) Create(ctx context.Context, area *model.WorkArea) error {
	return r.db.WithContext(ctx).Create(area).Error
}

func (r *workAreaRepo) GetByID(ctx context.Context, id int64) (*model.WorkArea, error) {
	var area model.WorkArea
	err := r.db.WithContext(ctx).
		Preload("Branch").
		Where("id = ?", id).
		First(&area).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *workAreaRepo) List(ctx context.Context) ([]model.WorkArea, error) {
	var areas []model.WorkArea
	err := r.db.WithContext(ctx).
		Preload("Branch").
		Order("id ASC").
		Find(&areas).Error
	return areas, err
}

func (r *workAreaRepo) Update(ctx context.Context, area *model.WorkArea) error {
	return r.db.WithContext(ctx).Save(area).Error
}

func (r *workAreaRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.WorkArea{}, id).Error
}
