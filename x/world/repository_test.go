package world

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/internal/testutil"
)

var ctx = context.Background()

func TestRepository(t *testing.T) {

	log.Println("Test Start")

	var cleanup_db func()
	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	var cleanup_mc func()
	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	repo := NewRepository(db, mc)

	// :: Worldを作成 ::
	created, err := repo.Create(ctx, core.World{
		Name:        "Aeloria",
		Description: "Floating isles above an endless sea",
		Owner:       "user-alice",
		IsPublic:    true,
	})
	if assert.NoError(t, err) {
		assert.Len(t, created.ID, 20)
		assert.Equal(t, "Aeloria", created.Name)
		assert.Equal(t, "user-alice", created.Owner)
		assert.NotNil(t, created.Tags)
		assert.NotNil(t, created.Collaborators)
		assert.NotZero(t, created.CDate)
	}

	hidden, err := repo.Create(ctx, core.World{
		Name:        "Duskmire",
		Description: "A swamp kingdom lit by lanterns",
		Owner:       "user-alice",
		IsPublic:    false,
	})
	assert.NoError(t, err)

	// :: 単体取得 ::
	fetched, err := repo.Get(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, created.ID, fetched.ID)
	}

	_, err = repo.Get(ctx, "w9999999999999999999")
	var notFound core.ErrorNotFound
	assert.True(t, errors.As(err, &notFound))

	// :: 公開リストは新しい順 ::
	public, err := repo.GetPublic(ctx)
	if assert.NoError(t, err) {
		assert.Len(t, public, 1)
		assert.Equal(t, created.ID, public[0].ID)
	}

	mine, err := repo.GetByOwner(ctx, "user-alice")
	if assert.NoError(t, err) {
		assert.Len(t, mine, 2)
	}

	none, err := repo.GetByOwner(ctx, "user-bob")
	if assert.NoError(t, err) {
		assert.Empty(t, none)
	}

	// :: 更新でMDateが進む ::
	fetched.IsPublic = false
	updated, err := repo.Update(ctx, fetched)
	if assert.NoError(t, err) {
		assert.False(t, updated.IsPublic)
		assert.True(t, updated.MDate.After(fetched.MDate))
		assert.True(t, updated.CDate.Equal(fetched.CDate))
	}

	refetched, err := repo.Get(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.True(t, refetched.MDate.After(created.MDate))
	}

	// :: 既存IDでの作成は重複エラー ::
	_, err = repo.Create(ctx, core.World{
		ID:          created.ID,
		Name:        "Aeloria Again",
		Description: "A copy that must be rejected",
		Owner:       "user-alice",
	})
	var exists core.ErrorAlreadyExists
	assert.True(t, errors.As(err, &exists))

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(2), count)
	}

	// :: 削除は消した本体を返す ::
	removed, err := repo.Delete(ctx, hidden.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "Duskmire", removed.Name)
	}

	_, err = repo.Get(ctx, hidden.ID)
	assert.True(t, errors.As(err, &notFound))

	count, err = repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}
}
