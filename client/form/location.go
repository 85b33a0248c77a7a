package form

import (
	"strconv"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/location"
)

// LocationForm is the edit buffer backing the location builder screen.
// Population is raw text until submit, like CharacterForm's age.
type LocationForm struct {
	World       string
	Name        string
	Description string
	Type        string
	Climate     string
	Population  string
	Government  string
	Economy     string
	Culture     string
	History     string
	Features    []string
	NewFeature  string
}

// NewLocationForm returns an empty buffer for creating a location in the
// given world.
func NewLocationForm(worldID string) LocationForm {
	return LocationForm{
		World:    worldID,
		Features: []string{},
	}
}

// LocationFormFrom seeds the buffer from an existing location. Landmarks
// are edited by name only; descriptions entered elsewhere survive the
// round trip via Patch only when the name list is unchanged in order.
func LocationFormFrom(l core.Location) LocationForm {
	features := make([]string, 0, len(l.NotableLocations))
	for _, landmark := range l.NotableLocations {
		features = append(features, landmark.Name)
	}
	return LocationForm{
		World:       l.World,
		Name:        l.Name,
		Description: l.Description,
		Type:        string(l.Type),
		Climate:     l.Climate,
		Population:  formatPopulation(l.Population),
		Government:  l.Government,
		Economy:     l.Economy,
		Culture:     l.Culture,
		History:     l.History,
		Features:    features,
	}
}

func formatPopulation(population int64) string {
	if population == 0 {
		return ""
	}
	return strconv.FormatInt(population, 10)
}

// AddFeature moves the pending landmark name into the list. Blank input
// is ignored.
func (f *LocationForm) AddFeature() {
	var added bool
	f.Features, added = appendNonBlank(f.Features, f.NewFeature)
	if added {
		f.NewFeature = ""
	}
}

// RemoveFeature drops the landmark at index i.
func (f *LocationForm) RemoveFeature(i int) {
	f.Features = removeAt(f.Features, i)
}

func (f LocationForm) landmarks() []core.Landmark {
	landmarks := make([]core.Landmark, 0, len(f.Features))
	for _, name := range f.Features {
		landmarks = append(landmarks, core.Landmark{Name: name})
	}
	return landmarks
}

// Draft converts the buffer into a create payload.
func (f LocationForm) Draft() location.Draft {
	population, _ := strconv.ParseInt(f.Population, 10, 64)
	return location.Draft{
		Name:             f.Name,
		Description:      f.Description,
		World:            f.World,
		Type:             core.LocationType(f.Type),
		Climate:          f.Climate,
		Population:       population,
		Government:       f.Government,
		Economy:          f.Economy,
		Culture:          f.Culture,
		History:          f.History,
		NotableLocations: f.landmarks(),
	}
}

// Patch converts the buffer into an update payload covering the fields
// the form edits.
func (f LocationForm) Patch() location.Patch {
	name := f.Name
	description := f.Description
	locType := core.LocationType(f.Type)
	climate := f.Climate
	population, _ := strconv.ParseInt(f.Population, 10, 64)
	government := f.Government
	economy := f.Economy
	culture := f.Culture
	history := f.History
	landmarks := f.landmarks()
	return location.Patch{
		Name:             &name,
		Description:      &description,
		Type:             &locType,
		Climate:          &climate,
		Population:       &population,
		Government:       &government,
		Economy:          &economy,
		Culture:          &culture,
		History:          &history,
		NotableLocations: &landmarks,
	}
}
