package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// jsonList is a slice persisted as a json column.
type jsonList[T any] []T

func (l jsonList[T]) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *jsonList[T]) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type %T for json column", value)
}

// Ability is a named power or skill on a character sheet.
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Relationship links a character to another character.
type Relationship struct {
	Character    string `json:"character"`
	Relationship string `json:"relationship"`
	Description  string `json:"description"`
}

// TimelineEntry is a dated note on a world or character history.
type TimelineEntry struct {
	Event       string `json:"event"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Image is an illustration reference.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// Landmark is a notable spot inside a location.
type Landmark struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Property is a named value on an item.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type (
	Abilities       = jsonList[Ability]
	Relationships   = jsonList[Relationship]
	TimelineEntries = jsonList[TimelineEntry]
	Images          = jsonList[Image]
	Landmarks       = jsonList[Landmark]
	Properties      = jsonList[Property]
)

// Coordinates is a position on a world map.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (c Coordinates) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Coordinates) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*c = Coordinates{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return fmt.Errorf("unsupported type %T for json column", value)
}

// World is the top-level owned container for narrative entities.
// mutable, owner is fixed at creation
type World struct {
	ID            string          `json:"id" gorm:"primaryKey;type:char(20)"`
	Name          string          `json:"name" gorm:"type:text;not null"`
	Description   string          `json:"description" gorm:"type:text;not null"`
	Owner         string          `json:"owner" gorm:"->;<-:create;type:char(20);index"`
	Collaborators pq.StringArray  `json:"collaborators" gorm:"type:text[]"`
	IsPublic      bool            `json:"isPublic" gorm:"type:boolean;default:false"`
	Tags          pq.StringArray  `json:"tags" gorm:"type:text[]"`
	Timeline      TimelineEntries `json:"timeline" gorm:"type:json;default:'[]'"`
	CDate         time.Time       `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate         time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Character belongs to exactly one World. The world reference is set at
// creation and never reassigned.
type Character struct {
	ID            string          `json:"id" gorm:"primaryKey;type:char(20)"`
	World         string          `json:"world" gorm:"->;<-:create;type:char(20);index;not null"`
	Name          string          `json:"name" gorm:"type:text;not null"`
	Description   string          `json:"description" gorm:"type:text;not null"`
	Race          string          `json:"race" gorm:"type:text"`
	Class         string          `json:"class" gorm:"type:text"`
	Age           int             `json:"age" gorm:"type:integer;default:0"`
	Gender        string          `json:"gender" gorm:"type:text"`
	Appearance    string          `json:"appearance" gorm:"type:text"`
	Personality   string          `json:"personality" gorm:"type:text"`
	Background    string          `json:"background" gorm:"type:text"`
	Abilities     Abilities       `json:"abilities" gorm:"type:json;default:'[]'"`
	Relationships Relationships   `json:"relationships" gorm:"type:json;default:'[]'"`
	Timeline      TimelineEntries `json:"timeline" gorm:"type:json;default:'[]'"`
	Images        Images          `json:"images" gorm:"type:json;default:'[]'"`
	CDate         time.Time       `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate         time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// LocationType classifies a location.
type LocationType string

const (
	LocationTypeCity     LocationType = "city"
	LocationTypeTown     LocationType = "town"
	LocationTypeVillage  LocationType = "village"
	LocationTypeDungeon  LocationType = "dungeon"
	LocationTypeForest   LocationType = "forest"
	LocationTypeMountain LocationType = "mountain"
	LocationTypeDesert   LocationType = "desert"
	LocationTypeOcean    LocationType = "ocean"
	LocationTypeOther    LocationType = "other"
)

func (t LocationType) Valid() bool {
	switch t {
	case LocationTypeCity, LocationTypeTown, LocationTypeVillage,
		LocationTypeDungeon, LocationTypeForest, LocationTypeMountain,
		LocationTypeDesert, LocationTypeOcean, LocationTypeOther:
		return true
	}
	return false
}

// Location belongs to exactly one World.
type Location struct {
	ID                string         `json:"id" gorm:"primaryKey;type:char(20)"`
	World             string         `json:"world" gorm:"->;<-:create;type:char(20);index;not null"`
	Name              string         `json:"name" gorm:"type:text;not null"`
	Description       string         `json:"description" gorm:"type:text;not null"`
	Type              LocationType   `json:"type" gorm:"type:text;default:'other'"`
	Climate           string         `json:"climate" gorm:"type:text"`
	Population        int64          `json:"population" gorm:"type:bigint;default:0"`
	Government        string         `json:"government" gorm:"type:text"`
	Economy           string         `json:"economy" gorm:"type:text"`
	Culture           string         `json:"culture" gorm:"type:text"`
	History           string         `json:"history" gorm:"type:text"`
	NotableLocations  Landmarks      `json:"notableLocations" gorm:"type:json;default:'[]'"`
	NotableCharacters pq.StringArray `json:"notableCharacters" gorm:"type:text[]"`
	Images            Images         `json:"images" gorm:"type:json;default:'[]'"`
	Coordinates       Coordinates    `json:"coordinates" gorm:"type:json;default:'{}'"`
	CDate             time.Time      `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate             time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// ItemType classifies an item.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeArtifact   ItemType = "artifact"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeMaterial   ItemType = "material"
	ItemTypeOther      ItemType = "other"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeWeapon, ItemTypeArmor, ItemTypeArtifact,
		ItemTypeConsumable, ItemTypeMaterial, ItemTypeOther:
		return true
	}
	return false
}

// ItemRarity grades an item.
type ItemRarity string

const (
	RarityCommon    ItemRarity = "common"
	RarityUncommon  ItemRarity = "uncommon"
	RarityRare      ItemRarity = "rare"
	RarityEpic      ItemRarity = "epic"
	RarityLegendary ItemRarity = "legendary"
	RarityMythic    ItemRarity = "mythic"
)

func (r ItemRarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare,
		RarityEpic, RarityLegendary, RarityMythic:
		return true
	}
	return false
}

// Item belongs to exactly one World.
type Item struct {
	ID           string     `json:"id" gorm:"primaryKey;type:char(20)"`
	World        string     `json:"world" gorm:"->;<-:create;type:char(20);index;not null"`
	Name         string     `json:"name" gorm:"type:text;not null"`
	Description  string     `json:"description" gorm:"type:text;not null"`
	Type         ItemType   `json:"type" gorm:"type:text;default:'other'"`
	Rarity       ItemRarity `json:"rarity" gorm:"type:text;default:'common'"`
	Properties   Properties `json:"properties" gorm:"type:json;default:'[]'"`
	History      string     `json:"history" gorm:"type:text"`
	CurrentOwner string     `json:"currentOwner" gorm:"type:char(20)"`
	Location     string     `json:"location" gorm:"type:char(20)"`
	Images       Images     `json:"images" gorm:"type:json;default:'[]'"`
	CDate        time.Time  `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate        time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// EventType classifies a timeline event.
type EventType string

const (
	EventTypeEvent     EventType = "event"
	EventTypeBirth     EventType = "birth"
	EventTypeDeath     EventType = "death"
	EventTypeBattle    EventType = "battle"
	EventTypeDiscovery EventType = "discovery"
	EventTypeOther     EventType = "other"
)

// Event is a timeline event. Events are managed client-side and have no
// backing table.
type Event struct {
	ID          string    `json:"id"`
	World       string    `json:"world"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Type        EventType `json:"type"`
	Characters  []string  `json:"characters"`
	Locations   []string  `json:"locations"`
	Items       []string  `json:"items"`
}

// WorldRef is implemented by every entity that transitively belongs to a
// World. OwningWorld returns the id of that World; a World returns its own
// id.
type WorldRef interface {
	OwningWorld() string
}

func (w World) OwningWorld() string     { return w.ID }
func (c Character) OwningWorld() string { return c.World }
func (l Location) OwningWorld() string  { return l.World }
func (i Item) OwningWorld() string      { return i.World }
