package state

import "github.com/worldloom/worldloom/core"

type WorldsLoaded struct {
	Worlds []core.World
}

type WorldLoaded struct {
	World core.World
}

type WorldAdded struct {
	World core.World
}

type WorldUpdated struct {
	World core.World
}

type WorldDeleted struct {
	ID string
}

type WorldsFailed struct {
	Err RequestError
}

func (WorldsLoaded) isAction() {}
func (WorldLoaded) isAction()  {}
func (WorldAdded) isAction()   {}
func (WorldUpdated) isAction() {}
func (WorldDeleted) isAction() {}
func (WorldsFailed) isAction() {}

func reduceWorlds(s WorldsState, action Action) WorldsState {
	switch a := action.(type) {
	case WorldsLoaded:
		s.Worlds = a.Worlds
		s.Loading = false
	case WorldLoaded:
		world := a.World
		s.Current = &world
		s.Loading = false
	case WorldAdded:
		s.Worlds = append(append([]core.World{}, s.Worlds...), a.World)
		s.Loading = false
	case WorldUpdated:
		next := make([]core.World, len(s.Worlds))
		for i, world := range s.Worlds {
			if world.ID == a.World.ID {
				next[i] = a.World
			} else {
				next[i] = world
			}
		}
		s.Worlds = next
		world := a.World
		s.Current = &world
		s.Loading = false
	case WorldDeleted:
		next := make([]core.World, 0, len(s.Worlds))
		for _, world := range s.Worlds {
			if world.ID != a.ID {
				next = append(next, world)
			}
		}
		s.Worlds = next
		s.Current = nil
		s.Loading = false
	case WorldsFailed:
		err := a.Err
		s.Err = &err
		s.Loading = false
	}
	return s
}
