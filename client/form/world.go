package form

import (
	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/world"
)

// WorldForm is the edit buffer backing the world builder screen.
type WorldForm struct {
	Name        string
	Description string
	IsPublic    bool
	Tags        []string
	NewTag      string
}

// NewWorldForm returns an empty buffer for creating a world.
func NewWorldForm() WorldForm {
	return WorldForm{
		Tags: []string{},
	}
}

// WorldFormFrom seeds the buffer from an existing world for editing.
func WorldFormFrom(w core.World) WorldForm {
	tags := make([]string, len(w.Tags))
	copy(tags, w.Tags)
	return WorldForm{
		Name:        w.Name,
		Description: w.Description,
		IsPublic:    w.IsPublic,
		Tags:        tags,
	}
}

// AddTag moves the pending tag into the list. Blank input is ignored.
func (f *WorldForm) AddTag() {
	var added bool
	f.Tags, added = appendNonBlank(f.Tags, f.NewTag)
	if added {
		f.NewTag = ""
	}
}

// RemoveTag drops the tag at index i.
func (f *WorldForm) RemoveTag(i int) {
	f.Tags = removeAt(f.Tags, i)
}

// Draft converts the buffer into a create payload.
func (f WorldForm) Draft() world.Draft {
	return world.Draft{
		Name:        f.Name,
		Description: f.Description,
		IsPublic:    f.IsPublic,
		Tags:        f.Tags,
	}
}

// Patch converts the buffer into an update payload. Every field the form
// edits is sent; fields the form does not touch stay omitted so the server
// keeps their stored values.
func (f WorldForm) Patch() world.Patch {
	name := f.Name
	description := f.Description
	isPublic := f.IsPublic
	tags := f.Tags
	return world.Patch{
		Name:        &name,
		Description: &description,
		IsPublic:    &isPublic,
		Tags:        &tags,
	}
}
