package services

import (
	"context"
	"fmt"

	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/repos"
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

type InsightsService interface {
	Latest(ctx context.Context) (*types.LatestInsights, error)
}

type insightsService struct {
	log            *logger.Logger
	drawRepo       repos.DrawRepo
	predictionRepo repos.PredictionRepo
}

func NewInsightsService(baseLog *logger.Logger, drawRepo repos.DrawRepo, predictionRepo repos.PredictionRepo) InsightsService {
	serviceLog := baseLog.With("service", "InsightsService")
	return &insightsService{
		log:            serviceLog,
		drawRepo:       drawRepo,
		predictionRepo: predictionRepo,
	}
}

// Latest recomputes, on every call, which stored predictions matched at
// least one number of the most recent draw. This is a full scan of the
// prediction collection; nothing is cached or persisted.
func (is *insightsService) Latest(ctx context.Context) (*types.LatestInsights, error) {
	latest, err := is.drawRepo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load latest draw: %w", err)
	}
	if latest == nil {
		return &types.LatestInsights{HasLatest: false}, nil
	}

	preds, err := is.predictionRepo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("scan predictions: %w", err)
	}

	matched := make([]types.MatchedPrediction, 0, len(preds))
	for _, pred := range preds {
		m := CountMatches(&pred.Prediction, &latest.Draw)
		if m.Total > 0 {
			matched = append(matched, types.MatchedPrediction{
				ID:      pred.ID.Hex(),
				Matches: m,
			})
		}
	}

	return &types.LatestInsights{
		HasLatest:          true,
		LatestDate:         latest.Date,
		MatchedPredictions: matched,
	}, nil
}
