package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yungbote/eurojackpot-backend/internal/types"
)

// In-memory repo fakes. Ordering mirrors the store: draws sort by date
// descending, predictions list most-recently-created first.

type fakeDrawRepo struct {
	draws      []*types.StoredDraw
	createErr  error
	latestCall int
}

func (f *fakeDrawRepo) Create(_ context.Context, draw *types.StoredDraw) error {
	if f.createErr != nil {
		return f.createErr
	}
	draw.ID = primitive.NewObjectID()
	draw.Stamp(time.Now().UTC())
	f.draws = append(f.draws, draw)
	return nil
}

func (f *fakeDrawRepo) List(_ context.Context, limit int64) ([]*types.StoredDraw, error) {
	out := make([]*types.StoredDraw, len(f.draws))
	copy(out, f.draws)
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeDrawRepo) GetByDate(_ context.Context, date string) (*types.StoredDraw, error) {
	for _, d := range f.draws {
		if d.Date == date {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDrawRepo) Latest(ctx context.Context) (*types.StoredDraw, error) {
	f.latestCall++
	all, err := f.List(ctx, 1)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (f *fakeDrawRepo) Replace(_ context.Context, id primitive.ObjectID, draw types.Draw) (*types.StoredDraw, error) {
	for _, d := range f.draws {
		if d.ID == id {
			d.Draw = draw
			d.UpdatedAt = time.Now().UTC()
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDrawRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i, d := range f.draws {
		if d.ID == id {
			f.draws = append(f.draws[:i], f.draws[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeDrawRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(f.draws))
	f.draws = nil
	return n, nil
}

func (f *fakeDrawRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.draws)), nil
}

type fakePredictionRepo struct {
	preds    []*types.StoredPrediction
	listCall int
}

func (f *fakePredictionRepo) Create(_ context.Context, pred *types.StoredPrediction) error {
	pred.ID = primitive.NewObjectID()
	pred.Stamp(time.Now().UTC())
	f.preds = append(f.preds, pred)
	return nil
}

func (f *fakePredictionRepo) List(_ context.Context, limit int64) ([]*types.StoredPrediction, error) {
	f.listCall++
	out := make([]*types.StoredPrediction, 0, len(f.preds))
	for i := len(f.preds) - 1; i >= 0; i-- {
		out = append(out, f.preds[i])
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePredictionRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(f.preds))
	f.preds = nil
	return n, nil
}

func (f *fakePredictionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.preds)), nil
}

var errStoreDown = errors.New("store unavailable")
