package form

import (
	"strings"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/item"
)

// ItemForm is the edit buffer backing the item builder screen. A pending
// property may be entered as "name: value"; a bare name gets an empty
// value.
type ItemForm struct {
	World        string
	Name         string
	Description  string
	Type         string
	Rarity       string
	History      string
	CurrentOwner string
	Location     string
	Properties   []core.Property
	NewProperty  string
}

// NewItemForm returns an empty buffer for creating an item in the given
// world.
func NewItemForm(worldID string) ItemForm {
	return ItemForm{
		World:      worldID,
		Properties: []core.Property{},
	}
}

// ItemFormFrom seeds the buffer from an existing item.
func ItemFormFrom(i core.Item) ItemForm {
	properties := make([]core.Property, len(i.Properties))
	copy(properties, i.Properties)
	return ItemForm{
		World:        i.World,
		Name:         i.Name,
		Description:  i.Description,
		Type:         string(i.Type),
		Rarity:       string(i.Rarity),
		History:      i.History,
		CurrentOwner: i.CurrentOwner,
		Location:     i.Location,
		Properties:   properties,
	}
}

// AddProperty moves the pending property into the list. Blank input is
// ignored.
func (f *ItemForm) AddProperty() {
	property, ok := parseProperty(f.NewProperty)
	if !ok {
		return
	}
	f.Properties = append(f.Properties, property)
	f.NewProperty = ""
}

// RemoveProperty drops the property at index i.
func (f *ItemForm) RemoveProperty(i int) {
	f.Properties = removeAt(f.Properties, i)
}

func parseProperty(raw string) (core.Property, bool) {
	name, value, _ := strings.Cut(raw, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return core.Property{}, false
	}
	return core.Property{Name: name, Value: strings.TrimSpace(value)}, true
}

// Draft converts the buffer into a create payload.
func (f ItemForm) Draft() item.Draft {
	return item.Draft{
		Name:         f.Name,
		Description:  f.Description,
		World:        f.World,
		Type:         core.ItemType(f.Type),
		Rarity:       core.ItemRarity(f.Rarity),
		Properties:   f.Properties,
		History:      f.History,
		CurrentOwner: f.CurrentOwner,
		Location:     f.Location,
	}
}

// Patch converts the buffer into an update payload covering the fields
// the form edits.
func (f ItemForm) Patch() item.Patch {
	name := f.Name
	description := f.Description
	itemType := core.ItemType(f.Type)
	rarity := core.ItemRarity(f.Rarity)
	properties := f.Properties
	history := f.History
	currentOwner := f.CurrentOwner
	location := f.Location
	return item.Patch{
		Name:         &name,
		Description:  &description,
		Type:         &itemType,
		Rarity:       &rarity,
		Properties:   &properties,
		History:      &history,
		CurrentOwner: &currentOwner,
		Location:     &location,
	}
}
