package location

import "github.com/worldloom/worldloom/core"

// Draft is the create payload. An omitted type falls back to "other"; an
// invalid one is a validation error, not a fallback.
type Draft struct {
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	World             string            `json:"world"`
	Type              core.LocationType `json:"type"`
	Climate           string            `json:"climate"`
	Population        int64             `json:"population"`
	Government        string            `json:"government"`
	Economy           string            `json:"economy"`
	Culture           string            `json:"culture"`
	History           string            `json:"history"`
	NotableLocations  []core.Landmark   `json:"notableLocations"`
	NotableCharacters []string          `json:"notableCharacters"`
	Images            []core.Image      `json:"images"`
	Coordinates       core.Coordinates  `json:"coordinates"`
}

// Patch is a partial update. Nil fields are left untouched; the world
// reference is never reassigned.
type Patch struct {
	Name              *string            `json:"name"`
	Description       *string            `json:"description"`
	Type              *core.LocationType `json:"type"`
	Climate           *string            `json:"climate"`
	Population        *int64             `json:"population"`
	Government        *string            `json:"government"`
	Economy           *string            `json:"economy"`
	Culture           *string            `json:"culture"`
	History           *string            `json:"history"`
	NotableLocations  *[]core.Landmark   `json:"notableLocations"`
	NotableCharacters *[]string          `json:"notableCharacters"`
	Images            *[]core.Image      `json:"images"`
	Coordinates       *core.Coordinates  `json:"coordinates"`
}
