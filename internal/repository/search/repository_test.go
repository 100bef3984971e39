package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/config"
	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/repository/memory"
)

func newTagRepo(t *testing.T) *TagRepository {
	t.Helper()
	return NewTagRepository(memory.NewStore(zap.NewNop()), "sk-tag-api", 0, zap.NewNop())
}

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTagRepo(t)

	missing, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Insert(ctx, []domain.Tag{
		{ID: 1, Name: "Reparation", LanguageCode: "sv", Slug: "reparation"},
		{ID: 2, Name: "Repair", LanguageCode: "en", Slug: "repair"},
	}))

	tag, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, tag)
	assert.Equal(t, "Reparation", tag.Name)

	tag.Name = "Laga"
	require.NoError(t, repo.Update(ctx, *tag))

	updated, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Laga", updated.Name)

	require.NoError(t, repo.Delete(ctx, 1))
	deleted, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, deleted)

	all, err := repo.GetAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteIndex(ctx))
	all, err = repo.GetAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_InsertEmptyIsNoop(t *testing.T) {
	repo := NewTagRepository(failingStore{}, "sk-tag-api", 0, zap.NewNop())
	assert.NoError(t, repo.Insert(context.Background(), nil))
}

func TestRepository_ErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	repo := NewTagRepository(failingStore{}, "sk-tag-api", 0, zap.NewNop())

	_, err := repo.Get(ctx, 1)
	assert.ErrorIs(t, err, errStoreDown)
	assert.ErrorIs(t, repo.Insert(ctx, []domain.Tag{{ID: 1}}), errStoreDown)
	assert.ErrorIs(t, repo.Update(ctx, domain.Tag{ID: 1}), errStoreDown)
	assert.ErrorIs(t, repo.Delete(ctx, 1), errStoreDown)
	assert.ErrorIs(t, repo.DeleteIndex(ctx), errStoreDown)
}

func TestTagRepository_GetByLanguageCode(t *testing.T) {
	ctx := context.Background()
	repo := newTagRepo(t)
	require.NoError(t, repo.Insert(ctx, []domain.Tag{
		{ID: 1, Name: "Reparation", LanguageCode: "sv"},
		{ID: 2, Name: "Repair", LanguageCode: "en"},
		{ID: 3, Name: "Hyra", LanguageCode: "sv"},
	}))

	sv, err := repo.GetByLanguageCode(ctx, "")
	require.NoError(t, err)
	assert.Len(t, sv, 2)

	en, err := repo.GetByLanguageCode(ctx, "en")
	require.NoError(t, err)
	require.Len(t, en, 1)
	assert.Equal(t, "Repair", en[0].Name)
}

func TestOpenStore(t *testing.T) {
	store, err := OpenStore(config.ElasticConfig{Backend: "memory"}, zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, store.Ping(context.Background()))

	_, err = OpenStore(config.ElasticConfig{Backend: "solr"}, zap.NewNop())
	assert.Error(t, err)
}
