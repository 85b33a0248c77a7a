package state

import "github.com/worldloom/worldloom/core"

type LocationsLoaded struct {
	Locations []core.Location
}

type LocationLoaded struct {
	Location core.Location
}

type LocationAdded struct {
	Location core.Location
}

type LocationUpdated struct {
	Location core.Location
}

type LocationDeleted struct {
	ID string
}

type LocationsFailed struct {
	Err RequestError
}

func (LocationsLoaded) isAction() {}
func (LocationLoaded) isAction()  {}
func (LocationAdded) isAction()   {}
func (LocationUpdated) isAction() {}
func (LocationDeleted) isAction() {}
func (LocationsFailed) isAction() {}

func reduceLocations(s LocationsState, action Action) LocationsState {
	switch a := action.(type) {
	case LocationsLoaded:
		s.Locations = a.Locations
		s.Loading = false
	case LocationLoaded:
		location := a.Location
		s.Current = &location
		s.Loading = false
	case LocationAdded:
		s.Locations = append(append([]core.Location{}, s.Locations...), a.Location)
		s.Loading = false
	case LocationUpdated:
		next := make([]core.Location, len(s.Locations))
		for i, location := range s.Locations {
			if location.ID == a.Location.ID {
				next[i] = a.Location
			} else {
				next[i] = location
			}
		}
		s.Locations = next
		location := a.Location
		s.Current = &location
		s.Loading = false
	case LocationDeleted:
		next := make([]core.Location, 0, len(s.Locations))
		for _, location := range s.Locations {
			if location.ID != a.ID {
				next = append(next, location)
			}
		}
		s.Locations = next
		s.Current = nil
		s.Loading = false
	case LocationsFailed:
		err := a.Err
		s.Err = &err
		s.Loading = false
	}
	return s
}
