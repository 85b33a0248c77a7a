package location

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/guard"
	"github.com/worldloom/worldloom/x/location/mock"
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

func TestCreateDefaultsType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_location.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, location core.Location) (core.Location, error) {
			location.ID = "l0000000000000000000"
			return location, nil
		},
	)

	s := NewService(mockRepo, guard.NewService(aliceWorld(ctrl)))
	created, err := s.Create(context.Background(), "user-alice", Draft{
		Name:        "Duskmire",
		Description: "A swamp kingdom lit by lanterns",
		World:       "w0000000000000000000",
	})

	if assert.NoError(t, err) {
		assert.Equal(t, core.LocationTypeOther, created.Type)
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_location.NewMockRepository(ctrl)

	s := NewService(mockRepo, guard.NewService(aliceWorld(ctrl)))
	_, err := s.Create(context.Background(), "user-alice", Draft{
		Name:        "Duskmire",
		Description: "A swamp kingdom lit by lanterns",
		World:       "w0000000000000000000",
		Type:        "swampland",
	})

	var verr core.ErrorValidation
	if assert.True(t, errors.As(err, &verr)) {
		assert.Equal(t, "type", verr.Fields[0].Param)
		assert.Equal(t, "Invalid location type", verr.Fields[0].Msg)
	}
}

func TestUpdateRejectsUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := core.Location{
		ID:    "l0000000000000000000",
		Name:  "Duskmire",
		World: "w0000000000000000000",
		Type:  core.LocationTypeCity,
	}

	mockRepo := mock_location.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "l0000000000000000000").Return(stored, nil)

	s := NewService(mockRepo, guard.NewService(aliceWorld(ctrl)))
	locType := core.LocationType("swampland")
	_, err := s.Update(context.Background(), "user-alice", "l0000000000000000000", Patch{
		Type: &locType,
	})

	var verr core.ErrorValidation
	assert.True(t, errors.As(err, &verr))
}
