package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/model"
	"github.com/L52103/appEscritorioControl/internal/repository"
)

var ErrNotEnoughHistory = errors.New("se requieren al menos dos inasistencias procesadas para predecir")

// PredictionService forecasts a worker's next absence from historical
// averages: the mean gap between absence starts gives the next start,
// the mean duration gives its length. It is an estimate, not a model.
type PredictionService interface {
	PredictNextAbsence(ctx context.Context, workerID int64) (*dto.AbsencePredictionResponse, error)
}

type predictionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewPredictionService(repo *repository.Repository, logger *zap.Logger) PredictionService {
	return &predictionService{repo: repo, logger: logger}
}

func (s *predictionService) PredictNextAbsence(ctx context.Context, workerID int64) (*dto.AbsencePredictionResponse, error) {
	if _, err := s.repo.Worker.GetByID(ctx, workerID); err != nil {
		return nil, ErrWorkerNotFound
	}

	records, err := s.repo.Attendance.ListJustifiedAbsences(ctx, workerID)
	if err != nil {
		s.logger.Error("listar inasistencias falló", zap.Int64("trabajador", workerID), zap.Error(err))
		return nil, err
	}

	type span struct {
		start model.DateOnly
		days  int
	}
	spans := make([]span, 0, len(records))
	for i := range records {
		r := &records[i]
		if r.AbsenceStart == nil {
			continue
		}
		days := 1
		if r.AbsenceDays != nil && *r.AbsenceDays > 0 {
			days = *r.AbsenceDays
		}
		spans = append(spans, span{start: *r.AbsenceStart, days: days})
	}
	if len(spans) < 2 {
		return nil, ErrNotEnoughHistory
	}

	var gapSum, durSum float64
	for i := 1; i < len(spans); i++ {
		gap := spans[i].start.Time.Sub(spans[i-1].start.Time).Hours() / 24
		gapSum += gap
	}
	for _, sp := range spans {
		durSum += float64(sp.days)
	}
	meanGap := gapSum / float64(len(spans)-1)
	meanDur := durSum / float64(len(spans))

	last := spans[len(spans)-1]
	predictedStart := last.start.AddDays(int(math.Round(meanGap)))
	predictedDur := int(math.Round(meanDur))
	if predictedDur < 1 {
		predictedDur = 1
	}
	predictedEnd := predictedStart.AddDays(predictedDur - 1)

	return &dto.AbsencePredictionResponse{
		WorkerID:          workerID,
		AbsenceCount:      len(spans),
		MeanGapDays:       math.Round(meanGap*100) / 100,
		MeanDurationDays:  math.Round(meanDur*100) / 100,
		LastAbsenceStart:  last.start.String(),
		PredictedStart:    predictedStart.String(),
		PredictedEnd:      predictedEnd.String(),
		PredictedDuration: predictedDur,
	}, nil
}
