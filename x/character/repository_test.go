package character

import (
	"context"
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

	// :: 名前順で返ることを確認するため逆順に作成 ::
	names := []string{"Ysolde", "Kaelen", "Brann"}
	for _, name := range names {
		_, err := repo.Create(ctx, core.Character{
			Name:        name,
			Description: "of Aeloria",
			World:       "w0000000000000000000",
			Abilities:   []core.Ability{{Name: "cartography", Description: "maps the isles"}},
		})
		assert.NoError(t, err)
	}

	_, err := repo.Create(ctx, core.Character{
		Name:        "Mirelle",
		Description: "of Duskmire",
		World:       "w1111111111111111111",
	})
	assert.NoError(t, err)

	listed, err := repo.GetByWorld(ctx, "w0000000000000000000")
	if assert.NoError(t, err) {
		assert.Len(t, listed, 3)
		assert.Equal(t, "Brann", listed[0].Name)
		assert.Equal(t, "Kaelen", listed[1].Name)
		assert.Equal(t, "Ysolde", listed[2].Name)
	}

	// :: JSONカラムの往復 ::
	if assert.Len(t, listed[1].Abilities, 1) {
		assert.Equal(t, "cartography", listed[1].Abilities[0].Name)
	}

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(4), count)
	}
}
