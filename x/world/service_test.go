package world

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/guard"
	"github.com/worldloom/worldloom/x/world/mock"
)

func TestCreateRequiresNameAndDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_world.NewMockRepository(ctrl)

	s := NewService(mockRepo, guard.NewService(mockRepo))
	_, err := s.Create(context.Background(), "user-alice", Draft{
		Name:        "  ",
		Description: "",
	})

	var verr core.ErrorValidation
	if assert.True(t, errors.As(err, &verr)) {
		assert.Len(t, verr.Fields, 2)
		assert.Equal(t, "name", verr.Fields[0].Param)
		assert.Equal(t, "Name is required", verr.Fields[0].Msg)
		assert.Equal(t, "description", verr.Fields[1].Param)
		assert.Equal(t, "Description is required", verr.Fields[1].Msg)
	}
}

func TestCreateSetsOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_world.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, world core.World) (core.World, error) {
			world.ID = "w0000000000000000000"
			return world, nil
		},
	)

	s := NewService(mockRepo, guard.NewService(mockRepo))
	created, err := s.Create(context.Background(), "user-alice", Draft{
		Name:        "  Aeloria  ",
		Description: "A realm of floating isles",
		IsPublic:    true,
		Tags:        []string{"fantasy"},
	})

	if assert.NoError(t, err) {
		assert.Equal(t, "Aeloria", created.Name)
		assert.Equal(t, "user-alice", created.Owner)
		assert.True(t, created.IsPublic)
	}
}

func TestUpdateByStranger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := core.World{
		ID:    "w0000000000000000000",
		Name:  "Aeloria",
		Owner: "user-alice",
	}

	mockRepo := mock_world.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "w0000000000000000000").Return(stored, nil).Times(2)

	s := NewService(mockRepo, guard.NewService(mockRepo))
	name := "Stolen"
	_, err := s.Update(context.Background(), "user-bob", "w0000000000000000000", Patch{
		Name: &name,
	})

	var denied core.ErrorPermissionDenied
	assert.True(t, errors.As(err, &denied))
}

func TestUpdateMergesPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := core.World{
		ID:          "w0000000000000000000",
		Name:        "Aeloria",
		Description: "A realm of floating isles",
		Owner:       "user-alice",
		Tags:        []string{"fantasy"},
	}

	mockRepo := mock_world.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "w0000000000000000000").Return(stored, nil).Times(2)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, world core.World) (core.World, error) {
			return world, nil
		},
	)

	s := NewService(mockRepo, guard.NewService(mockRepo))
	isPublic := true
	updated, err := s.Update(context.Background(), "user-alice", "w0000000000000000000", Patch{
		IsPublic: &isPublic,
	})

	if assert.NoError(t, err) {
		assert.Equal(t, "Aeloria", updated.Name)
		assert.True(t, updated.IsPublic)
		assert.Equal(t, "user-alice", updated.Owner)
		assert.EqualValues(t, []string{"fantasy"}, updated.Tags)
	}
}

func TestDeleteMissingWorld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_world.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "w9999999999999999999").Return(core.World{}, core.NewErrorNotFound("World"))

	s := NewService(mockRepo, guard.NewService(mockRepo))
	_, err := s.Delete(context.Background(), "user-alice", "w9999999999999999999")

	var notFound core.ErrorNotFound
	assert.True(t, errors.As(err, &notFound))
}
