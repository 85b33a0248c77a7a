package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/world/mock"
)

func TestAuthorizeOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWorlds := mock_world.NewMockRepository(ctrl)
	mockWorlds.EXPECT().Get(gomock.Any(), "w0000000000000000000").Return(core.World{
		ID:    "w0000000000000000000",
		Owner: "user-alice",
	}, nil)

	s := NewService(mockWorlds)
	err := s.Authorize(context.Background(), "user-alice", core.Character{
		ID:    "c0000000000000000000",
		World: "w0000000000000000000",
	})

	assert.NoError(t, err)
}

func TestAuthorizeStranger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWorlds := mock_world.NewMockRepository(ctrl)
	mockWorlds.EXPECT().Get(gomock.Any(), "w0000000000000000000").Return(core.World{
		ID:    "w0000000000000000000",
		Owner: "user-alice",
	}, nil)

	s := NewService(mockWorlds)
	err := s.Authorize(context.Background(), "user-bob", core.Item{
		ID:    "i0000000000000000000",
		World: "w0000000000000000000",
	})

	var denied core.ErrorPermissionDenied
	assert.True(t, errors.As(err, &denied))
}

func TestAuthorizeMissingWorld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWorlds := mock_world.NewMockRepository(ctrl)
	mockWorlds.EXPECT().Get(gomock.Any(), "w0000000000000000000").Return(core.World{}, core.NewErrorNotFound("World"))

	s := NewService(mockWorlds)
	err := s.Authorize(context.Background(), "user-alice", core.Location{
		ID:    "l0000000000000000000",
		World: "w0000000000000000000",
	})

	var notFound core.ErrorNotFound
	if assert.True(t, errors.As(err, &notFound)) {
		assert.Equal(t, "World not found", notFound.Error())
	}
}

func TestAuthorizeWorldItself(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	world := core.World{
		ID:    "w0000000000000000000",
		Owner: "user-alice",
	}

	mockWorlds := mock_world.NewMockRepository(ctrl)
	mockWorlds.EXPECT().Get(gomock.Any(), "w0000000000000000000").Return(world, nil)

	s := NewService(mockWorlds)
	err := s.Authorize(context.Background(), "user-bob", world)

	var denied core.ErrorPermissionDenied
	assert.True(t, errors.As(err, &denied))
}
