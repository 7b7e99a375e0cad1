package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/L52103/appEscritorioControl/internal/model"
)

// ShiftAssignmentRepository is the shift-assignment data-access interface.
type ShiftAssignmentRepository interface {
	Create(ctx context.Context, assignment *model.ShiftAssignment) error
	GetByID(ctx context.Context, id int64) (*model.ShiftAssignment, error)
	List(ctx context.Context) ([]model.ShiftAssignment, error)
	ListByWorker(ctx context.Context, workerID int64) ([]model.ShiftAssignment, error)
	Update(ctx context.Context, assignment *model.ShiftAssignment) error
	Delete(ctx context.Context, id int64) error
}

type shiftAssignmentRepo struct {
	db *gorm.DB
}

// NewShiftAssignmentRepo creates the GORM-backed ShiftAssignmentRepository.
func NewShiftAssignmentRepo(db *gorm.DB) ShiftAssignmentRepository {
	return &shiftAssignmentRepo{db: db}
}

func (r *shiftAssignmentRepo) Create(ctx context.Context, assignment *model.ShiftAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *shiftAssignmentRepo) GetByID(ctx context.Context, id int64) (*model.ShiftAssignment, error) {
	var assignment model.ShiftAssignment
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Shift").
		Where("id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *shiftAssignmentRepo) List(ctx context.Context) ([]model.ShiftAssignment, error) {
	var assignments []model.ShiftAssignment
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Shift").
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *shiftAssignmentRepo) ListByWorker(ctx context.Context, workerID int64) ([]model.ShiftAssignment, error) {
	var assignments []model.ShiftAssignment
	err := r.db.WithContext(ctx).
		Preload("Shift").
		Preload("Shift.Area").
		Where("trabajador_id = ?", workerID).
		Order("fecha_inicio ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *shiftAssignmentRepo) Update(ctx context.Context, assignment *model.ShiftAssignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *shiftAssignmentRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ShiftAssignment{}, id).Error
}
