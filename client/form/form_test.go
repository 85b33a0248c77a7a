package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldloom/worldloom/core"
)

func TestWorldFormTagRoundTrip(t *testing.T) {
	f := NewWorldForm()
	f.NewTag = "  fantasy  "
	f.AddTag()

	assert.Equal(t, []string{"fantasy"}, f.Tags)
	assert.Empty(t, f.NewTag, "pending input clears after a successful add")

	f.NewTag = "islands"
	f.AddTag()
	f.RemoveTag(0)

	assert.Equal(t, []string{"islands"}, f.Tags)
}

func TestWorldFormBlankTagIgnored(t *testing.T) {
	f := NewWorldForm()
	f.NewTag = "   "
	f.AddTag()

	assert.Empty(t, f.Tags)
	assert.Equal(t, "   ", f.NewTag, "pending input survives a rejected add")
}

func TestWorldFormRemoveOutOfRange(t *testing.T) {
	f := NewWorldForm()
	f.NewTag = "fantasy"
	f.AddTag()

	f.RemoveTag(5)
	f.RemoveTag(-1)

	assert.Equal(t, []string{"fantasy"}, f.Tags)
}

func TestWorldFormSeedAndPatch(t *testing.T) {
	f := WorldFormFrom(core.World{
		ID:          "w1",
		Name:        "Aeloria",
		Description: "Floating isles",
		IsPublic:    true,
		Tags:        []string{"fantasy"},
	})

	f.IsPublic = false
	patch := f.Patch()

	if assert.NotNil(t, patch.Name) {
		assert.Equal(t, "Aeloria", *patch.Name)
	}
	if assert.NotNil(t, patch.IsPublic) {
		assert.False(t, *patch.IsPublic)
	}
	assert.Nil(t, patch.Collaborators, "fields the form does not edit stay omitted")
}

func TestCharacterFormAgeParsing(t *testing.T) {
	f := NewCharacterForm("w1")
	f.Name = "Kaelen"
	f.Description = "A wandering cartographer"
	f.Age = "34"

	draft := f.Draft()
	assert.Equal(t, 34, draft.Age)
	assert.Equal(t, "w1", draft.World)

	f.Age = "ancient"
	assert.Equal(t, 0, f.Draft().Age, "unparsable age falls back to zero")
}

func TestCharacterFormTraitsBecomeAbilities(t *testing.T) {
	f := NewCharacterForm("w1")
	f.NewTrait = "cartography"
	f.AddTrait()
	f.NewTrait = "swordplay"
	f.AddTrait()
	f.RemoveTrait(0)

	draft := f.Draft()
	if assert.Len(t, draft.Abilities, 1) {
		assert.Equal(t, "swordplay", draft.Abilities[0].Name)
	}
}

func TestLocationFormSeedsFromLandmarks(t *testing.T) {
	f := LocationFormFrom(core.Location{
		World:      "w1",
		Name:       "Duskmire",
		Type:       core.LocationTypeCity,
		Population: 12000,
		NotableLocations: []core.Landmark{
			{Name: "Lantern Bridge"},
		},
	})

	assert.Equal(t, "city", f.Type)
	assert.Equal(t, "12000", f.Population)
	assert.Equal(t, []string{"Lantern Bridge"}, f.Features)

	draft := f.Draft()
	assert.Equal(t, int64(12000), draft.Population)
	if assert.Len(t, draft.NotableLocations, 1) {
		assert.Equal(t, "Lantern Bridge", draft.NotableLocations[0].Name)
	}
}

func TestItemFormPropertyParsing(t *testing.T) {
	f := NewItemForm("w1")

	f.NewProperty = "glow: faint blue"
	f.AddProperty()
	f.NewProperty = "unbreakable"
	f.AddProperty()
	f.NewProperty = " : orphaned value"
	f.AddProperty()

	if assert.Len(t, f.Properties, 2) {
		assert.Equal(t, core.Property{Name: "glow", Value: "faint blue"}, f.Properties[0])
		assert.Equal(t, core.Property{Name: "unbreakable", Value: ""}, f.Properties[1])
	}

	f.RemoveProperty(1)
	assert.Len(t, f.Properties, 1)
}
