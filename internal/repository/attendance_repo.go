package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/L52103/appEscritorioControl/internal/model"
)

// AttendanceRepository is the attendance-ledger data-access interface.
//
// The ForUpdate finders take a row lock (SELECT ... FOR UPDATE) and are
// only meaningful inside Transaction: a concurrent request for the same
// worker blocks on the lock until the first transaction commits or
// rolls back, then re-evaluates state from scratch. The finders return
// (nil, nil) when no matching row exists.
type AttendanceRepository interface {
	// Transaction runs fn inside one database transaction; the
	// repository handed to fn is bound to that transaction. Any error
	// from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx AttendanceRepository) error) error

	GetForUpdate(ctx context.Context, id int64) (*model.AttendanceRecord, error)
	// FindLatestForUpdate returns the record with the greatest
	// (date, entry_time, id) ordering, nulls last.
	FindLatestForUpdate(ctx context.Context, workerID int64) (*model.AttendanceRecord, error)
	// FindOpenForUpdate returns the most recent record by (date, id)
	// descending regardless of date.
	FindOpenForUpdate(ctx context.Context, workerID int64) (*model.AttendanceRecord, error)
	// FindTodayForUpdate returns the record dated exactly day, if any.
	FindTodayForUpdate(ctx context.Context, workerID int64, day model.DateOnly) (*model.AttendanceRecord, error)

	Create(ctx context.Context, record *model.AttendanceRecord) error
	Update(ctx context.Context, record *model.AttendanceRecord) error
	List(ctx context.Context) ([]model.AttendanceRecord, error)
	// ListJustifiedAbsences returns the processed absence spans of one
	// worker ordered by absence start, for the predictor.
	ListJustifiedAbsences(ctx context.Context, workerID int64) ([]model.AttendanceRecord, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates the GORM-backed AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Transaction(ctx context.Context, fn func(tx AttendanceRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&attendanceRepo{db: tx})
	})
}

func (r *attendanceRepo) GetForUpdate(ctx context.Context, id int64) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepo) FindLatestForUpdate(ctx context.Context, workerID int64) (*model.AttendanceRecord, error) {
	return r.findForUpdate(ctx, workerID,
		"fecha DESC NULLS LAST, hora_entrada DESC NULLS LAST, id DESC")
}

func (r *attendanceRepo) FindOpenForUpdate(ctx context.Context, workerID int64) (*model.AttendanceRecord, error) {
	return r.findForUpdate(ctx, workerID, "fecha DESC NULLS LAST, id DESC")
}

func (r *attendanceRepo) findForUpdate(ctx context.Context, workerID int64, order string) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("trabajador_id = ?", workerID).
		Order(order).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepo) FindTodayForUpdate(ctx context.Context, workerID int64, day model.DateOnly) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("trabajador_id = ? AND fecha = ?", workerID, day).
		Order("id DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepo) Create(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepo) Update(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *attendanceRepo) List(ctx context.Context) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Order("fecha DESC NULLS LAST, id DESC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepo) ListJustifiedAbsences(ctx context.Context, workerID int64) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("trabajador_id = ? AND justificado = TRUE AND procesado_ia = TRUE AND fecha_inicio_inasistencia IS NOT NULL", workerID).
		Order("fecha_inicio_inasistencia ASC, id ASC").
		Find(&records).Error
	return records, err
}
