package item

import "github.com/worldloom/worldloom/core"

// Draft is the create payload. Omitted type and rarity fall back to
// "other" and "common"; invalid values are validation errors.
type Draft struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	World        string          `json:"world"`
	Type         core.ItemType   `json:"type"`
	Rarity       core.ItemRarity `json:"rarity"`
	Properties   []core.Property `json:"properties"`
	History      string          `json:"history"`
	CurrentOwner string          `json:"currentOwner"`
	Location     string          `json:"location"`
	Images       []core.Image    `json:"images"`
}

// Patch is a partial update. Nil fields are left untouched; the world
// reference is never reassigned.
type Patch struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Type         *core.ItemType   `json:"type"`
	Rarity       *core.ItemRarity `json:"rarity"`
	Properties   *[]core.Property `json:"properties"`
	History      *string          `json:"history"`
	CurrentOwner *string          `json:"currentOwner"`
	Location     *string          `json:"location"`
	Images       *[]core.Image    `json:"images"`
}
