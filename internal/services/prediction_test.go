package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/eurojackpot-backend/internal/errs"
	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

func newPredictionFixture() (PredictionService, *fakePredictionRepo, *fakeDrawRepo) {
	predRepo := &fakePredictionRepo{}
	drawRepo := &fakeDrawRepo{}
	return NewPredictionService(logger.NewNop(), predRepo, drawRepo), predRepo, drawRepo
}

func TestPredictionServiceCreate(t *testing.T) {
	t.Run("snapshot_against_latest_draw", func(t *testing.T) {
		svc, _, drawRepo := newPredictionFixture()
		require.NoError(t, drawRepo.Create(context.Background(), &types.StoredDraw{
			Draw: types.Draw{Date: "2024-01-05", Main: []int{3, 4, 5, 6, 7}, Euro: []int{2, 12}},
		}))

		stored, err := svc.Create(context.Background(), types.Prediction{
			Main: []int{1, 2, 3, 4, 5},
			Euro: []int{1, 2},
		})
		require.NoError(t, err)
		require.NotNil(t, stored.Matched.LatestMatch)
		assert.Equal(t, types.MatchResult{Main: 3, Euro: 1, Total: 4}, *stored.Matched.LatestMatch)
	})

	t.Run("snapshot_null_without_draws", func(t *testing.T) {
		svc, _, _ := newPredictionFixture()
		stored, err := svc.Create(context.Background(), types.Prediction{
			Main: []int{1, 2, 3, 4, 5},
			Euro: []int{1, 2},
		})
		require.NoError(t, err)
		assert.Nil(t, stored.Matched.LatestMatch)
	})

	t.Run("method_defaults_to_consensus", func(t *testing.T) {
		svc, _, _ := newPredictionFixture()
		stored, err := svc.Create(context.Background(), types.Prediction{
			Main: []int{1, 2, 3, 4, 5},
			Euro: []int{1, 2},
		})
		require.NoError(t, err)
		assert.Equal(t, types.DefaultMethod, stored.Method)
	})

	t.Run("rejects_invalid_numbers", func(t *testing.T) {
		svc, predRepo, _ := newPredictionFixture()
		_, err := svc.Create(context.Background(), types.Prediction{
			Main: []int{1, 2, 3, 4, 99},
			Euro: []int{1, 2},
		})
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "main", verr.Field)
		assert.Empty(t, predRepo.preds)
	})
}

func TestPredictionServiceListAndClear(t *testing.T) {
	svc, _, _ := newPredictionFixture()
	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), types.Prediction{
			Main: []int{1 + i, 12, 23, 34, 45},
			Euro: []int{1, 2},
		})
		require.NoError(t, err)
	}

	preds, err := svc.List(context.Background(), 200)
	require.NoError(t, err)
	require.Len(t, preds, 3)
	// most recently created first
	assert.Equal(t, []int{3, 12, 23, 34, 45}, preds[0].Main)

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	deleted, err := svc.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	preds, err = svc.List(context.Background(), 200)
	require.NoError(t, err)
	assert.NotNil(t, preds)
	assert.Empty(t, preds)
}
