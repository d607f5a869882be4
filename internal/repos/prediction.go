package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/yungbote/eurojackpot-backend/internal/db"
	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

type PredictionRepo interface {
	Create(ctx context.Context, pred *types.StoredPrediction) error
	// List returns predictions most-recently-created first; limit 0 means all.
	List(ctx context.Context, limit int64) ([]*types.StoredPrediction, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type predictionRepo struct {
	store *Store
	log   *logger.Logger
}

func NewPredictionRepo(store *Store, baseLog *logger.Logger) PredictionRepo {
	repoLog := baseLog.With("repo", "PredictionRepo")
	return &predictionRepo{store: store, log: repoLog}
}

func (r *predictionRepo) Create(ctx context.Context, pred *types.StoredPrediction) error {
	oid, err := CreateDocument(ctx, r.store, db.CollectionPrediction, pred)
	if err != nil {
		return err
	}
	pred.ID = oid
	return nil
}

func (r *predictionRepo) List(ctx context.Context, limit int64) ([]*types.StoredPrediction, error) {
	return GetDocuments[*types.StoredPrediction](ctx, r.store, db.CollectionPrediction, Query{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Limit: limit,
	})
}

func (r *predictionRepo) DeleteAll(ctx context.Context) (int64, error) {
	return r.store.DeleteDocuments(ctx, db.CollectionPrediction, nil)
}

func (r *predictionRepo) Count(ctx context.Context) (int64, error) {
	return r.store.CountDocuments(ctx, db.CollectionPrediction, nil)
}
