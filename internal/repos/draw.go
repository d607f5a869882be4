package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yungbote/eurojackpot-backend/internal/db"
	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

type DrawRepo interface {
	Create(ctx context.Context, draw *types.StoredDraw) error
	List(ctx context.Context, limit int64) ([]*types.StoredDraw, error)
	GetByDate(ctx context.Context, date string) (*types.StoredDraw, error)
	Latest(ctx context.Context) (*types.StoredDraw, error)
	Replace(ctx context.Context, id primitive.ObjectID, draw types.Draw) (*types.StoredDraw, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type drawRepo struct {
	store *Store
	log   *logger.Logger
}

func NewDrawRepo(store *Store, baseLog *logger.Logger) DrawRepo {
	repoLog := baseLog.With("repo", "DrawRepo")
	return &drawRepo{store: store, log: repoLog}
}

func (r *drawRepo) Create(ctx context.Context, draw *types.StoredDraw) error {
	oid, err := CreateDocument(ctx, r.store, db.CollectionDraw, draw)
	if err != nil {
		return err
	}
	draw.ID = oid
	return nil
}

func (r *drawRepo) List(ctx context.Context, limit int64) ([]*types.StoredDraw, error) {
	return GetDocuments[*types.StoredDraw](ctx, r.store, db.CollectionDraw, Query{
		Sort:  bson.D{{Key: "date", Value: -1}},
		Limit: limit,
	})
}

func (r *drawRepo) GetByDate(ctx context.Context, date string) (*types.StoredDraw, error) {
	docs, err := GetDocuments[*types.StoredDraw](ctx, r.store, db.CollectionDraw, Query{
		Filter: bson.M{"date": date},
		Limit:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (r *drawRepo) Latest(ctx context.Context) (*types.StoredDraw, error) {
	docs, err := GetDocuments[*types.StoredDraw](ctx, r.store, db.CollectionDraw, Query{
		Sort:  bson.D{{Key: "date", Value: -1}},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (r *drawRepo) Replace(ctx context.Context, id primitive.ObjectID, draw types.Draw) (*types.StoredDraw, error) {
	// Explicit field list so a cleared source overwrites the stored one.
	update := bson.M{
		"date":   draw.Date,
		"main":   draw.Main,
		"euro":   draw.Euro,
		"source": draw.Source,
	}
	return ReplaceDocument[types.StoredDraw](ctx, r.store, db.CollectionDraw, id, update)
}

func (r *drawRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.store.DeleteDocument(ctx, db.CollectionDraw, id)
}

func (r *drawRepo) DeleteAll(ctx context.Context) (int64, error) {
	return r.store.DeleteDocuments(ctx, db.CollectionDraw, nil)
}

func (r *drawRepo) Count(ctx context.Context) (int64, error) {
	return r.store.CountDocuments(ctx, db.CollectionDraw, nil)
}
