package form

import (
	"strconv"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/character"
)

// CharacterForm is the edit buffer backing the character builder screen.
// Age is kept as raw text so partial input never fails mid-edit; it is
// parsed on submit and an unparsable value falls back to zero.
type CharacterForm struct {
	World       string
	Name        string
	Description string
	Race        string
	Class       string
	Age         string
	Gender      string
	Appearance  string
	Personality string
	Background  string
	Traits      []string
	NewTrait    string
}

// NewCharacterForm returns an empty buffer for creating a character in
// the given world.
func NewCharacterForm(worldID string) CharacterForm {
	return CharacterForm{
		World:  worldID,
		Traits: []string{},
	}
}

// CharacterFormFrom seeds the buffer from an existing character. The
// character's abilities stand in for the trait list; named scores are
// shown by name only.
func CharacterFormFrom(c core.Character) CharacterForm {
	traits := make([]string, 0, len(c.Abilities))
	for _, a := range c.Abilities {
		traits = append(traits, a.Name)
	}
	return CharacterForm{
		World:       c.World,
		Name:        c.Name,
		Description: c.Description,
		Race:        c.Race,
		Class:       c.Class,
		Age:         formatAge(c.Age),
		Gender:      c.Gender,
		Appearance:  c.Appearance,
		Personality: c.Personality,
		Background:  c.Background,
		Traits:      traits,
	}
}

func formatAge(age int) string {
	if age == 0 {
		return ""
	}
	return strconv.Itoa(age)
}

// AddTrait moves the pending trait into the list. Blank input is ignored.
func (f *CharacterForm) AddTrait() {
	var added bool
	f.Traits, added = appendNonBlank(f.Traits, f.NewTrait)
	if added {
		f.NewTrait = ""
	}
}

// RemoveTrait drops the trait at index i.
func (f *CharacterForm) RemoveTrait(i int) {
	f.Traits = removeAt(f.Traits, i)
}

func (f CharacterForm) abilities() []core.Ability {
	abilities := make([]core.Ability, 0, len(f.Traits))
	for _, t := range f.Traits {
		abilities = append(abilities, core.Ability{Name: t})
	}
	return abilities
}

// Draft converts the buffer into a create payload.
func (f CharacterForm) Draft() character.Draft {
	age, _ := strconv.Atoi(f.Age)
	return character.Draft{
		Name:        f.Name,
		Description: f.Description,
		World:       f.World,
		Race:        f.Race,
		Class:       f.Class,
		Age:         age,
		Gender:      f.Gender,
		Appearance:  f.Appearance,
		Personality: f.Personality,
		Background:  f.Background,
		Abilities:   f.abilities(),
	}
}

// Patch converts the buffer into an update payload covering the fields
// the form edits.
func (f CharacterForm) Patch() character.Patch {
	name := f.Name
	description := f.Description
	race := f.Race
	class := f.Class
	age, _ := strconv.Atoi(f.Age)
	gender := f.Gender
	appearance := f.Appearance
	personality := f.Personality
	background := f.Background
	abilities := f.abilities()
	return character.Patch{
		Name:        &name,
		Description: &description,
		Race:        &race,
		Class:       &class,
		Age:         &age,
		Gender:      &gender,
		Appearance:  &appearance,
		Personality: &personality,
		Background:  &background,
		Abilities:   &abilities,
	}
}
