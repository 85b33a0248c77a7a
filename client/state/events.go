package state

import (
	"github.com/rs/xid"

	"github.com/worldloom/worldloom/core"
)

// Events are the client-managed fifth entity type: they live only in this
// tree and are never persisted server-side.

type EventsLoaded struct {
	Events []core.Event
}

type EventAdded struct {
	Event core.Event
}

type EventUpdated struct {
	Event core.Event
}

type EventDeleted struct {
	ID string
}

type EventsFailed struct {
	Err RequestError
}

func (EventsLoaded) isAction() {}
func (EventAdded) isAction()   {}
func (EventUpdated) isAction() {}
func (EventDeleted) isAction() {}
func (EventsFailed) isAction() {}

// NewEvent assembles an event with a fresh id. An empty type falls back
// to "event".
func NewEvent(world string, title string, description string, date string, eventType core.EventType) core.Event {
	if eventType == "" {
		eventType = core.EventTypeEvent
	}
	return core.Event{
		ID:          xid.New().String(),
		World:       world,
		Title:       title,
		Description: description,
		Date:        date,
		Type:        eventType,
	}
}

func reduceEvents(s EventsState, action Action) EventsState {
	switch a := action.(type) {
	case EventsLoaded:
		s.Events = a.Events
		s.Loading = false
	case EventAdded:
		s.Events = append(append([]core.Event{}, s.Events...), a.Event)
		s.Loading = false
	case EventUpdated:
		next := make([]core.Event, len(s.Events))
		for i, event := range s.Events {
			if event.ID == a.Event.ID {
				next[i] = a.Event
			} else {
				next[i] = event
			}
		}
		s.Events = next
		s.Loading = false
	case EventDeleted:
		next := make([]core.Event, 0, len(s.Events))
		for _, event := range s.Events {
			if event.ID != a.ID {
				next = append(next, event)
			}
		}
		s.Events = next
		s.Loading = false
	case EventsFailed:
		err := a.Err
		s.Err = &err
		s.Loading = false
	}
	return s
}
