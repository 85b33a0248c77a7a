package state

import "github.com/worldloom/worldloom/core"

type CharactersLoaded struct {
	Characters []core.Character
}

type CharacterLoaded struct {
	Character core.Character
}

type CharacterAdded struct {
	Character core.Character
}

type CharacterUpdated struct {
	Character core.Character
}

type CharacterDeleted struct {
	ID string
}

type CharactersFailed struct {
	Err RequestError
}

func (CharactersLoaded) isAction() {}
func (CharacterLoaded) isAction()  {}
func (CharacterAdded) isAction()   {}
func (CharacterUpdated) isAction() {}
func (CharacterDeleted) isAction() {}
func (CharactersFailed) isAction() {}

func reduceCharacters(s CharactersState, action Action) CharactersState {
	switch a := action.(type) {
	case CharactersLoaded:
		s.Characters = a.Characters
		s.Loading = false
	case CharacterLoaded:
		character := a.Character
		s.Current = &character
		s.Loading = false
	case CharacterAdded:
		s.Characters = append(append([]core.Character{}, s.Characters...), a.Character)
		s.Loading = false
	case CharacterUpdated:
		next := make([]core.Character, len(s.Characters))
		for i, character := range s.Characters {
			if character.ID == a.Character.ID {
				next[i] = a.Character
			} else {
				next[i] = character
			}
		}
		s.Characters = next
		character := a.Character
		s.Current = &character
		s.Loading = false
	case CharacterDeleted:
		next := make([]core.Character, 0, len(s.Characters))
		for _, character := range s.Characters {
			if character.ID != a.ID {
				next = append(next, character)
			}
		}
		s.Characters = next
		s.Current = nil
		s.Loading = false
	case CharactersFailed:
		err := a.Err
		s.Err = &err
		s.Loading = false
	}
	return s
}
