// Package listview computes the visible page of an already-loaded entity
// list. It is a pure function of its inputs and holds no state; the caller
// is expected to reset the page to 1 whenever the term, sort key or sort
// order changes.
package listview

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/worldloom/worldloom/core"
)

// PageSize is the fixed number of entities per page.
const PageSize = 9

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Query selects and orders the visible entities.
type Query struct {
	Term   string
	SortBy string // "name" or "description"
	Order  SortOrder
	Page   int // 1-based
}

// Field reads a list-view field off an entity. Unknown fields read as the
// empty string, which also places them first in an ascending sort.
type Field[T any] func(entity T, field string) string

func WorldField(w core.World, field string) string {
	switch field {
	case "name":
		return w.Name
	case "description":
		return w.Description
	}
	return ""
}

func CharacterField(c core.Character, field string) string {
	switch field {
	case "name":
		return c.Name
	case "description":
		return c.Description
	}
	return ""
}

func LocationField(l core.Location, field string) string {
	switch field {
	case "name":
		return l.Name
	case "description":
		return l.Description
	}
	return ""
}

func ItemField(i core.Item, field string) string {
	switch field {
	case "name":
		return i.Name
	case "description":
		return i.Description
	}
	return ""
}

func EventField(e core.Event, field string) string {
	switch field {
	case "name":
		return e.Title
	case "description":
		return e.Description
	}
	return ""
}

// Visible filters by case-folded substring match on name and description,
// sorts by the query field, and slices out the requested page. It returns
// the page plus the total page count over the filtered set. A page outside
// the valid range yields an empty page, never a clamped one.
func Visible[T any](entities []T, field Field[T], q Query) ([]T, int) {
	term := strings.ToLower(q.Term)

	filtered := make([]T, 0, len(entities))
	for _, entity := range entities {
		if term == "" ||
			strings.Contains(strings.ToLower(field(entity, "name")), term) ||
			strings.Contains(strings.ToLower(field(entity, "description")), term) {
			filtered = append(filtered, entity)
		}
	}

	slices.SortStableFunc(filtered, func(a, b T) int {
		av := strings.ToLower(field(a, q.SortBy))
		bv := strings.ToLower(field(b, q.SortBy))
		cmp := strings.Compare(av, bv)
		if q.Order == Descending {
			return -cmp
		}
		return cmp
	})

	totalPages := (len(filtered) + PageSize - 1) / PageSize

	start := (q.Page - 1) * PageSize
	if q.Page < 1 || start >= len(filtered) {
		return []T{}, totalPages
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end], totalPages
}
