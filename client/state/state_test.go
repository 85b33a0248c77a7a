package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldloom/worldloom/core"
)

func TestInitialStateIsLoading(t *testing.T) {
	s := NewAppState()

	assert.True(t, s.Worlds.Loading)
	assert.True(t, s.Characters.Loading)
	assert.True(t, s.Locations.Loading)
	assert.True(t, s.Items.Loading)
	assert.True(t, s.Events.Loading)
	assert.Empty(t, s.Alerts)
}

func TestWorldsLoaded(t *testing.T) {
	s := Reduce(NewAppState(), WorldsLoaded{Worlds: []core.World{
		{ID: "w1", Name: "Aeloria"},
	}})

	assert.False(t, s.Worlds.Loading)
	assert.Len(t, s.Worlds.Worlds, 1)
	assert.True(t, s.Characters.Loading, "unrelated branches stay untouched")
}

func TestWorldUpdatedReplacesInPlace(t *testing.T) {
	s := Reduce(NewAppState(), WorldsLoaded{Worlds: []core.World{
		{ID: "w1", Name: "Aeloria"},
		{ID: "w2", Name: "Duskmire"},
	}})

	s = Reduce(s, WorldUpdated{World: core.World{ID: "w2", Name: "Duskmire Reborn"}})

	assert.Equal(t, "Aeloria", s.Worlds.Worlds[0].Name)
	assert.Equal(t, "Duskmire Reborn", s.Worlds.Worlds[1].Name)
	if assert.NotNil(t, s.Worlds.Current) {
		assert.Equal(t, "w2", s.Worlds.Current.ID)
	}
}

func TestWorldDeletedClearsCurrent(t *testing.T) {
	s := Reduce(NewAppState(), WorldsLoaded{Worlds: []core.World{
		{ID: "w1", Name: "Aeloria"},
		{ID: "w2", Name: "Duskmire"},
	}})
	s = Reduce(s, WorldLoaded{World: core.World{ID: "w1", Name: "Aeloria"}})

	s = Reduce(s, WorldDeleted{ID: "w1"})

	assert.Len(t, s.Worlds.Worlds, 1)
	assert.Equal(t, "w2", s.Worlds.Worlds[0].ID)
	assert.Nil(t, s.Worlds.Current)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := Reduce(NewAppState(), WorldsLoaded{Worlds: []core.World{
		{ID: "w1", Name: "Aeloria"},
	}})

	Reduce(before, WorldUpdated{World: core.World{ID: "w1", Name: "Renamed"}})

	assert.Equal(t, "Aeloria", before.Worlds.Worlds[0].Name)
}

func TestCharactersFailed(t *testing.T) {
	s := Reduce(NewAppState(), CharactersFailed{Err: RequestError{
		Msg:    "Server error",
		Status: 500,
	}})

	assert.False(t, s.Characters.Loading)
	if assert.NotNil(t, s.Characters.Err) {
		assert.Equal(t, 500, s.Characters.Err.Status)
	}
}

func TestItemAddedAppends(t *testing.T) {
	s := Reduce(NewAppState(), ItemsLoaded{Items: []core.Item{
		{ID: "i1", Name: "Lantern of Vessa"},
	}})

	s = Reduce(s, ItemAdded{Item: core.Item{ID: "i2", Name: "Ashen Blade"}})

	assert.Len(t, s.Items.Items, 2)
	assert.Equal(t, "Ashen Blade", s.Items.Items[1].Name)
}

func TestAlertLifecycle(t *testing.T) {
	first := NewAlert("World created", AlertSuccess)
	second := NewAlert("Name is required", AlertError)
	assert.NotEqual(t, first.ID, second.ID)

	s := Reduce(NewAppState(), AlertSet{Alert: first})
	s = Reduce(s, AlertSet{Alert: second})
	assert.Len(t, s.Alerts, 2)

	s = Reduce(s, AlertDismissed{ID: first.ID})
	if assert.Len(t, s.Alerts, 1) {
		assert.Equal(t, second.ID, s.Alerts[0].ID)
		assert.Equal(t, AlertError, s.Alerts[0].Kind)
	}
}

func TestEventDeleted(t *testing.T) {
	s := Reduce(NewAppState(), EventsLoaded{Events: []core.Event{
		{ID: "e1", Title: "The Sundering"},
		{ID: "e2", Title: "Crowning of Vessa"},
	}})

	s = Reduce(s, EventDeleted{ID: "e1"})

	if assert.Len(t, s.Events.Events, 1) {
		assert.Equal(t, "e2", s.Events.Events[0].ID)
	}
}
