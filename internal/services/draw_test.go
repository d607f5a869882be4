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

func newDrawFixture() (DrawService, *fakeDrawRepo) {
	repo := &fakeDrawRepo{}
	return NewDrawService(logger.NewNop(), repo), repo
}

func testDraw(date string) types.Draw {
	return types.Draw{Date: date, Main: []int{1, 2, 3, 4, 5}, Euro: []int{6, 7}}
}

func TestDrawServiceCreate(t *testing.T) {
	t.Run("stores_and_returns_id_and_timestamps", func(t *testing.T) {
		svc, _ := newDrawFixture()
		stored, err := svc.Create(context.Background(), testDraw("2024-01-05"))
		require.NoError(t, err)
		assert.False(t, stored.ID.IsZero())
		assert.False(t, stored.CreatedAt.IsZero())
		assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
	})

	t.Run("second_draw_same_date_conflicts", func(t *testing.T) {
		svc, repo := newDrawFixture()
		_, err := svc.Create(context.Background(), testDraw("2024-01-05"))
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), testDraw("2024-01-05"))
		assert.ErrorIs(t, err, errs.ErrDrawDateConflict)
		assert.Len(t, repo.draws, 1)
	})

	t.Run("rejects_invalid_draw", func(t *testing.T) {
		svc, repo := newDrawFixture()
		draw := testDraw("2024-01-05")
		draw.Euro = []int{6, 6}
		_, err := svc.Create(context.Background(), draw)
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "euro", verr.Field)
		assert.Empty(t, repo.draws)
	})
}

func TestDrawServiceList(t *testing.T) {
	svc, _ := newDrawFixture()
	for _, date := range []string{"2024-01-05", "2024-01-19", "2024-01-12"} {
		_, err := svc.Create(context.Background(), testDraw(date))
		require.NoError(t, err)
	}

	draws, err := svc.List(context.Background(), 200)
	require.NoError(t, err)
	require.Len(t, draws, 3)
	assert.Equal(t, "2024-01-19", draws[0].Date)
	assert.Equal(t, "2024-01-12", draws[1].Date)
	assert.Equal(t, "2024-01-05", draws[2].Date)

	limited, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestDrawServiceListEmpty(t *testing.T) {
	svc, _ := newDrawFixture()
	draws, err := svc.List(context.Background(), 200)
	require.NoError(t, err)
	assert.NotNil(t, draws)
	assert.Empty(t, draws)
}

func TestDrawServiceReplace(t *testing.T) {
	t.Run("replaces_existing", func(t *testing.T) {
		svc, _ := newDrawFixture()
		stored, err := svc.Create(context.Background(), testDraw("2024-01-05"))
		require.NoError(t, err)

		updated, err := svc.Replace(context.Background(), stored.ID.Hex(), testDraw("2024-01-06"))
		require.NoError(t, err)
		assert.Equal(t, "2024-01-06", updated.Date)
	})

	t.Run("malformed_id", func(t *testing.T) {
		svc, _ := newDrawFixture()
		_, err := svc.Replace(context.Background(), "not-an-id", testDraw("2024-01-05"))
		assert.ErrorIs(t, err, errs.ErrMalformedID)
	})

	t.Run("unknown_id", func(t *testing.T) {
		svc, _ := newDrawFixture()
		_, err := svc.Replace(context.Background(), "65b2fdab1234567890abcdef", testDraw("2024-01-05"))
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestDrawServiceDelete(t *testing.T) {
	t.Run("deletes_by_id", func(t *testing.T) {
		svc, _ := newDrawFixture()
		stored, err := svc.Create(context.Background(), testDraw("2024-01-05"))
		require.NoError(t, err)

		deleted, err := svc.Delete(context.Background(), stored.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		deleted, err = svc.Delete(context.Background(), stored.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})

	t.Run("malformed_id", func(t *testing.T) {
		svc, _ := newDrawFixture()
		_, err := svc.Delete(context.Background(), "zzz")
		assert.ErrorIs(t, err, errs.ErrMalformedID)
	})

	t.Run("delete_all_reports_prior_size", func(t *testing.T) {
		svc, _ := newDrawFixture()
		for _, date := range []string{"2024-01-05", "2024-01-12"} {
			_, err := svc.Create(context.Background(), testDraw(date))
			require.NoError(t, err)
		}

		deleted, err := svc.DeleteAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		draws, err := svc.List(context.Background(), 200)
		require.NoError(t, err)
		assert.Empty(t, draws)
	})
}
