// Package state is the front end's single state tree. The tree is only
// ever changed by Reduce, a pure function over tagged action variants;
// there is no global store.
package state

import "github.com/worldloom/worldloom/core"

// RequestError is a failed network call as the UI sees it.
type RequestError struct {
	Msg    string
	Status int
}

type WorldsState struct {
	Worlds  []core.World
	Current *core.World
	Loading bool
	Err     *RequestError
}

type CharactersState struct {
	Characters []core.Character
	Current    *core.Character
	Loading    bool
	Err        *RequestError
}

type LocationsState struct {
	Locations []core.Location
	Current   *core.Location
	Loading   bool
	Err       *RequestError
}

type ItemsState struct {
	Items   []core.Item
	Current *core.Item
	Loading bool
	Err     *RequestError
}

type EventsState struct {
	Events  []core.Event
	Loading bool
	Err     *RequestError
}

// AppState is the whole tree.
type AppState struct {
	Worlds     WorldsState
	Characters CharactersState
	Locations  LocationsState
	Items      ItemsState
	Events     EventsState
	Alerts     []Alert
}

// NewAppState returns the initial tree. Collections start in the loading
// state until their first fetch lands.
func NewAppState() AppState {
	return AppState{
		Worlds:     WorldsState{Loading: true},
		Characters: CharactersState{Loading: true},
		Locations:  LocationsState{Loading: true},
		Items:      ItemsState{Loading: true},
		Events:     EventsState{Loading: true},
	}
}

// Action is a tagged variant consumed by Reduce.
type Action interface {
	isAction()
}

// Reduce applies one action and returns the next tree. The input is never
// mutated.
func Reduce(s AppState, action Action) AppState {
	s.Worlds = reduceWorlds(s.Worlds, action)
	s.Characters = reduceCharacters(s.Characters, action)
	s.Locations = reduceLocations(s.Locations, action)
	s.Items = reduceItems(s.Items, action)
	s.Events = reduceEvents(s.Events, action)
	s.Alerts = reduceAlerts(s.Alerts, action)
	return s
}
