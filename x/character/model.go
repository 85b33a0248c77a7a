package character

import "github.com/worldloom/worldloom/core"

// Draft is the create payload. The world reference is required and fixed
// for the character's lifetime.
type Draft struct {
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	World         string               `json:"world"`
	Race          string               `json:"race"`
	Class         string               `json:"class"`
	Age           int                  `json:"age"`
	Gender        string               `json:"gender"`
	Appearance    string               `json:"appearance"`
	Personality   string               `json:"personality"`
	Background    string               `json:"background"`
	Abilities     []core.Ability       `json:"abilities"`
	Relationships []core.Relationship  `json:"relationships"`
	Timeline      []core.TimelineEntry `json:"timeline"`
	Images        []core.Image         `json:"images"`
}

// Patch is a partial update. Nil fields are left untouched; the world
// reference is never reassigned.
type Patch struct {
	Name          *string               `json:"name"`
	Description   *string               `json:"description"`
	Race          *string               `json:"race"`
	Class         *string               `json:"class"`
	Age           *int                  `json:"age"`
	Gender        *string               `json:"gender"`
	Appearance    *string               `json:"appearance"`
	Personality   *string               `json:"personality"`
	Background    *string               `json:"background"`
	Abilities     *[]core.Ability       `json:"abilities"`
	Relationships *[]core.Relationship  `json:"relationships"`
	Timeline      *[]core.TimelineEntry `json:"timeline"`
	Images        *[]core.Image         `json:"images"`
}
