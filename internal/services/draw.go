package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yungbote/eurojackpot-backend/internal/errs"
	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/repos"
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

type DrawService interface {
	Create(ctx context.Context, draw types.Draw) (*types.StoredDraw, error)
	List(ctx context.Context, limit int64) ([]*types.StoredDraw, error)
	Replace(ctx context.Context, id string, draw types.Draw) (*types.StoredDraw, error)
	Delete(ctx context.Context, id string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type drawService struct {
	log      *logger.Logger
	drawRepo repos.DrawRepo
}

func NewDrawService(baseLog *logger.Logger, drawRepo repos.DrawRepo) DrawService {
	serviceLog := baseLog.With("service", "DrawService")
	return &drawService{log: serviceLog, drawRepo: drawRepo}
}

// Create validates the draw and inserts it, rejecting a second draw for the
// same date with errs.ErrDrawDateConflict.
func (ds *drawService) Create(ctx context.Context, draw types.Draw) (*types.StoredDraw, error) {
	if err := draw.Validate(); err != nil {
		return nil, err
	}

	existing, err := ds.drawRepo.GetByDate(ctx, draw.Date)
	if err != nil {
		return nil, fmt.Errorf("check existing draw: %w", err)
	}
	if existing != nil {
		return nil, errs.ErrDrawDateConflict
	}

	stored := &types.StoredDraw{Draw: draw}
	if err := ds.drawRepo.Create(ctx, stored); err != nil {
		ds.log.Error("Create draw failed", "error", err, "date", draw.Date)
		return nil, fmt.Errorf("create draw: %w", err)
	}
	return stored, nil
}

func (ds *drawService) List(ctx context.Context, limit int64) ([]*types.StoredDraw, error) {
	draws, err := ds.drawRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list draws: %w", err)
	}
	if draws == nil {
		draws = []*types.StoredDraw{}
	}
	return draws, nil
}

func (ds *drawService) Replace(ctx context.Context, id string, draw types.Draw) (*types.StoredDraw, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if err := draw.Validate(); err != nil {
		return nil, err
	}

	updated, err := ds.drawRepo.Replace(ctx, oid, draw)
	if err != nil {
		return nil, fmt.Errorf("replace draw: %w", err)
	}
	if updated == nil {
		return nil, errs.ErrNotFound
	}
	return updated, nil
}

func (ds *drawService) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	deleted, err := ds.drawRepo.DeleteByID(ctx, oid)
	if err != nil {
		return 0, fmt.Errorf("delete draw: %w", err)
	}
	return deleted, nil
}

func (ds *drawService) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := ds.drawRepo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear draws: %w", err)
	}
	ds.log.Info("Cleared draw collection", "deleted", deleted)
	return deleted, nil
}

func (ds *drawService) Count(ctx context.Context) (int64, error) {
	return ds.drawRepo.Count(ctx)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errs.ErrMalformedID
	}
	return oid, nil
}
