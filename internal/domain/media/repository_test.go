package media

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapstream/internal/database"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Media{}))
	return NewRepository(db)
}

func seedMedia(t *testing.T, repo Repository, email string, n int, status Status, base time.Time) []*Media {
	t.Helper()
	out := make([]*Media, 0, n)
	for i := 0; i < n; i++ {
		m := &Media{
			ID:         uuid.NewString(),
			Email:      email,
			Filename:   fmt.Sprintf("file%02d.jpg", i),
			StoredName: uuid.NewString() + fmt.Sprintf("_file%02d.jpg", i),
			Type:       "jpg",
			SizeKB:     1.5,
			Status:     status,
			Tags:       TagList{"t"},
			UploadedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), m))
		out = append(out, m)
	}
	return out
}

func TestRepository_GetByOwnerAndID_ScopedToOwner(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	owned := seedMedia(t, repo, "owner@example.com", 1, StatusCompleted, time.Now())[0]

	got, err := repo.GetByOwnerAndID(ctx, "owner@example.com", owned.ID)
	require.NoError(t, err)
	assert.Equal(t, owned.StoredName, got.StoredName)
	assert.Equal(t, TagList{"t"}, got.Tags)

	// a foreign caller sees not-found, not a different error
	_, err = repo.GetByOwnerAndID(ctx, "other@example.com", owned.ID)
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestRepository_Delete_SecondCallNotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m := seedMedia(t, repo, "owner@example.com", 1, StatusCompleted, time.Now())[0]

	require.NoError(t, repo.Delete(ctx, "owner@example.com", m.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "owner@example.com", m.ID), ErrMediaNotFound)

	list, err := repo.ListByOwner(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_RecentByOwner_TruncatedNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seeded := seedMedia(t, repo, "busy@example.com", 13, StatusCompleted, base)
	seedMedia(t, repo, "other@example.com", 3, StatusCompleted, base)

	recent, err := repo.RecentByOwner(ctx, "busy@example.com", 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)

	// newest seeded entry comes first
	assert.Equal(t, seeded[12].ID, recent[0].ID)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].UploadedAt.After(recent[i-1].UploadedAt))
	}
}

func TestRepository_StatsByOwner_PartitionsByStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now()
	seedMedia(t, repo, "user@example.com", 3, StatusCompleted, base)
	seedMedia(t, repo, "user@example.com", 2, StatusProcessing, base.Add(time.Hour))
	seedMedia(t, repo, "user@example.com", 1, StatusFailed, base.Add(2*time.Hour))
	seedMedia(t, repo, "other@example.com", 5, StatusCompleted, base)

	stats, err := repo.StatsByOwner(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Total)
	assert.Equal(t, int64(3), stats.Completed)
	assert.Equal(t, int64(2), stats.Processing)
	assert.Equal(t, int64(1), stats.Failed)
}

func TestRepository_StatsByOwner_Empty(t *testing.T) {
	repo := newTestRepo(t)

	stats, err := repo.StatsByOwner(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, &Stats{}, stats)
}
