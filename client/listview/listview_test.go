package listview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldloom/worldloom/core"
)

var worlds = []core.World{
	{Name: "Aeloria", Description: "Floating isles above an endless sea"},
	{Name: "Duskmire", Description: "A swamp kingdom lit by lanterns"},
	{Name: "Kharvell", Description: "Iron cities under a red sun"},
}

func TestVisibleNoFilter(t *testing.T) {
	page, totalPages := Visible(worlds, WorldField, Query{
		SortBy: "name",
		Order:  Ascending,
		Page:   1,
	})

	assert.Equal(t, 1, totalPages)
	if assert.Len(t, page, 3) {
		assert.Equal(t, "Aeloria", page[0].Name)
		assert.Equal(t, "Kharvell", page[2].Name)
	}
}

func TestVisibleMatchesDescription(t *testing.T) {
	page, totalPages := Visible(worlds, WorldField, Query{
		Term:   "LANTERN",
		SortBy: "name",
		Order:  Ascending,
		Page:   1,
	})

	assert.Equal(t, 1, totalPages)
	if assert.Len(t, page, 1) {
		assert.Equal(t, "Duskmire", page[0].Name)
	}
}

func TestVisibleNoMatch(t *testing.T) {
	page, totalPages := Visible(worlds, WorldField, Query{
		Term:   "volcano",
		SortBy: "name",
		Order:  Ascending,
		Page:   1,
	})

	assert.Empty(t, page)
	assert.Equal(t, 0, totalPages)
}

func TestVisibleDescendingReverses(t *testing.T) {
	asc, _ := Visible(worlds, WorldField, Query{SortBy: "name", Order: Ascending, Page: 1})
	desc, _ := Visible(worlds, WorldField, Query{SortBy: "name", Order: Descending, Page: 1})

	for i := range asc {
		assert.Equal(t, asc[i].Name, desc[len(desc)-1-i].Name)
	}
}

func TestVisiblePagination(t *testing.T) {
	var characters []core.Character
	for i := 0; i < 20; i++ {
		characters = append(characters, core.Character{
			Name:        fmt.Sprintf("npc-%02d", i),
			Description: "background character",
		})
	}

	page1, totalPages := Visible(characters, CharacterField, Query{SortBy: "name", Order: Ascending, Page: 1})
	assert.Equal(t, 3, totalPages)
	assert.Len(t, page1, PageSize)
	assert.Equal(t, "npc-00", page1[0].Name)

	page3, _ := Visible(characters, CharacterField, Query{SortBy: "name", Order: Ascending, Page: 3})
	assert.Len(t, page3, 2)
	assert.Equal(t, "npc-19", page3[1].Name)
}

func TestVisiblePageOutOfRange(t *testing.T) {
	page, totalPages := Visible(worlds, WorldField, Query{SortBy: "name", Order: Ascending, Page: 5})

	assert.Empty(t, page)
	assert.Equal(t, 1, totalPages)

	page, _ = Visible(worlds, WorldField, Query{SortBy: "name", Order: Ascending, Page: 0})
	assert.Empty(t, page)
}

func TestVisibleEventTitleAsName(t *testing.T) {
	events := []core.Event{
		{Title: "The Sundering", Description: "The isles broke from the mainland"},
		{Title: "Crowning of Vessa", Description: "First queen of Duskmire"},
	}

	page, _ := Visible(events, EventField, Query{Term: "sundering", SortBy: "name", Order: Ascending, Page: 1})

	if assert.Len(t, page, 1) {
		assert.Equal(t, "The Sundering", page[0].Title)
	}
}
