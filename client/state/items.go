package state

import "github.com/worldloom/worldloom/core"

type ItemsLoaded struct {
	Items []core.Item
}

type ItemLoaded struct {
	Item core.Item
}

type ItemAdded struct {
	Item core.Item
}

type ItemUpdated struct {
	Item core.Item
}

type ItemDeleted struct {
	ID string
}

type ItemsFailed struct {
	Err RequestError
}

func (ItemsLoaded) isAction() {}
func (ItemLoaded) isAction()  {}
func (ItemAdded) isAction()   {}
func (ItemUpdated) isAction() {}
func (ItemDeleted) isAction() {}
func (ItemsFailed) isAction() {}

func reduceItems(s ItemsState, action Action) ItemsState {
	switch a := action.(type) {
	case ItemsLoaded:
		s.Items = a.Items
		s.Loading = false
	case ItemLoaded:
		item := a.Item
		s.Current = &item
		s.Loading = false
	case ItemAdded:
		s.Items = append(append([]core.Item{}, s.Items...), a.Item)
		s.Loading = false
	case ItemUpdated:
		next := make([]core.Item, len(s.Items))
		for i, item := range s.Items {
			if item.ID == a.Item.ID {
				next[i] = a.Item
			} else {
				next[i] = item
			}
		}
		s.Items = next
		item := a.Item
		s.Current = &item
		s.Loading = false
	case ItemDeleted:
		next := make([]core.Item, 0, len(s.Items))
		for _, item := range s.Items {
			if item.ID != a.ID {
				next = append(next, item)
			}
		}
		s.Items = next
		s.Current = nil
		s.Loading = false
	case ItemsFailed:
		err := a.Err
		s.Err = &err
		s.Loading = false
	}
	return s
}
