package item

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/guard"
	"github.com/worldloom/worldloom/x/item/mock"
	"github.com/worldloom/worldloom/x/world/mock"
)

func aliceWorld(ctrl *gomock.Controller) *mock_world.MockRepository {
	mockWorlds := mock_world.NewMockRepository(ctrl)
	mockWorlds.EXPECT().Get(gomock.Any(), "w0000000000000000000").Return(core.World{
		ID:    "w0000000000000000000",
		Owner: "user-alice",
	}, nil).AnyTimes()
	return mockWorlds
}

func TestCreateDefaultsTypeAndRarity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_item.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, item core.Item) (core.Item, error) {
			item.ID = "i0000000000000000000"
			return item, nil
		},
	)

	s := NewService(mockRepo, guard.NewService(aliceWorld(ctrl)))
	created, err := s.Create(context.Background(), "user-alice", Draft{
		Name:        "Lantern of Vessa",
		Description: "Burns without oil",
		World:       "w0000000000000000000",
	})

	if assert.NoError(t, err) {
		assert.Equal(t, core.ItemTypeOther, created.Type)
		assert.Equal(t, core.RarityCommon, created.Rarity)
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_item.NewMockRepository(ctrl)

	s := NewService(mockRepo, guard.NewService(aliceWorld(ctrl)))
	_, err := s.Create(context.Background(), "user-alice", Draft{
		Name:        "Lantern of Vessa",
		Description: "Burns without oil",
		World:       "w0000000000000000000",
		Type:        "gadget",
		Rarity:      "mythical",
	})

	var verr core.ErrorValidation
	if assert.True(t, errors.As(err, &verr)) {
		assert.Len(t, verr.Fields, 2)
		assert.Equal(t, "type", verr.Fields[0].Param)
		assert.Equal(t, "Invalid item type", verr.Fields[0].Msg)
		assert.Equal(t, "rarity", verr.Fields[1].Param)
		assert.Equal(t, "Invalid item rarity", verr.Fields[1].Msg)
	}
}

func TestUpdateRejectsUnknownRarity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := core.Item{
		ID:     "i0000000000000000000",
		Name:   "Lantern of Vessa",
		World:  "w0000000000000000000",
		Type:   core.ItemTypeArtifact,
		Rarity: core.RarityRare,
	}

	mockRepo := mock_item.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "i0000000000000000000").Return(stored, nil)

	s := NewService(mockRepo, guard.NewService(aliceWorld(ctrl)))
	rarity := core.ItemRarity("mythical")
	_, err := s.Update(context.Background(), "user-alice", "i0000000000000000000", Patch{
		Rarity: &rarity,
	})

	var verr core.ErrorValidation
	assert.True(t, errors.As(err, &verr))
}

func TestDeleteReturnsRemovedItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := core.Item{
		ID:    "i0000000000000000000",
		Name:  "Lantern of Vessa",
		World: "w0000000000000000000",
	}

	mockRepo := mock_item.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "i0000000000000000000").Return(stored, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), "i0000000000000000000").Return(stored, nil)

	s := NewService(mockRepo, guard.NewService(aliceWorld(ctrl)))
	removed, err := s.Delete(context.Background(), "user-alice", "i0000000000000000000")

	if assert.NoError(t, err) {
		assert.Equal(t, "Lantern of Vessa", removed.Name)
	}
}
