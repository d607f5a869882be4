package services

import (
	"context"
	"fmt"

	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/repos"
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

type PredictionService interface {
	Create(ctx context.Context, pred types.Prediction) (*types.StoredPrediction, error)
	List(ctx context.Context, limit int64) ([]*types.StoredPrediction, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type predictionService struct {
	log            *logger.Logger
	predictionRepo repos.PredictionRepo
	drawRepo       repos.DrawRepo
}

func NewPredictionService(baseLog *logger.Logger, predictionRepo repos.PredictionRepo, drawRepo repos.DrawRepo) PredictionService {
	serviceLog := baseLog.With("service", "PredictionService")
	return &predictionService{
		log:            serviceLog,
		predictionRepo: predictionRepo,
		drawRepo:       drawRepo,
	}
}

// Create validates the prediction and stores it together with a one-time
// match snapshot against whatever draw is latest right now. The snapshot is
// null when no draw exists and is never recomputed afterwards.
func (ps *predictionService) Create(ctx context.Context, pred types.Prediction) (*types.StoredPrediction, error) {
	pred.Normalize()
	if err := pred.Validate(); err != nil {
		return nil, err
	}

	latest, err := ps.drawRepo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load latest draw: %w", err)
	}
	var matched *types.MatchResult
	if latest != nil {
		m := CountMatches(&pred, &latest.Draw)
		matched = &m
	}

	stored := &types.StoredPrediction{
		Prediction: pred,
		Matched:    types.PredictionMatch{LatestMatch: matched},
	}
	if err := ps.predictionRepo.Create(ctx, stored); err != nil {
		ps.log.Error("Create prediction failed", "error", err, "method", pred.Method)
		return nil, fmt.Errorf("create prediction: %w", err)
	}
	return stored, nil
}

func (ps *predictionService) List(ctx context.Context, limit int64) ([]*types.StoredPrediction, error) {
	preds, err := ps.predictionRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	if preds == nil {
		preds = []*types.StoredPrediction{}
	}
	return preds, nil
}

func (ps *predictionService) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := ps.predictionRepo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear predictions: %w", err)
	}
	ps.log.Info("Cleared prediction collection", "deleted", deleted)
	return deleted, nil
}

func (ps *predictionService) Count(ctx context.Context) (int64, error) {
	return ps.predictionRepo.Count(ctx)
}
