package world

import "github.com/worldloom/worldloom/core"

// Draft is the create payload. Owner comes from the requester, never the
// body.
type Draft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsPublic    bool     `json:"isPublic"`
	Tags        []string `json:"tags"`
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name          *string               `json:"name"`
	Description   *string               `json:"description"`
	IsPublic      *bool                 `json:"isPublic"`
	Tags          *[]string             `json:"tags"`
	Collaborators *[]string             `json:"collaborators"`
	Timeline      *[]core.TimelineEntry `json:"timeline"`
}
