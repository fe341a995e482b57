package resource

// AttrKind says how the codec coerces an incoming attribute value and how the
// encoder renders it back out.
type AttrKind int

const (
	// Text passes the JSON value through untouched (strings, booleans, null).
	Text AttrKind = iota
	// Timestamp accepts "2006-01-02 15:04:05" with an optional microsecond
	// fraction.
	Timestamp
	// Enum restricts the value to a fixed set of literal strings, or null.
	Enum
	// Reference holds the integer id of a row of another entity type. The
	// codec resolves it against live data before it is accepted.
	Reference
)

// Attribute declares one column of an entity type, in domain (camelCase)
// naming. Declaration order is the wire serialization order.
type Attribute struct {
	Name     string
	Kind     AttrKind
	Enum     []string // allowed literals when Kind == Enum
	Target   string   // referenced type tag when Kind == Reference
	Nullable bool
}

// Relationship declares a read-only related collection: the roster of a game,
// the events of a player. Collections are derived views and are never accepted
// in create or update payloads.
type Relationship struct {
	Name   string // relation name the store understands, e.g. "players"
	Target string // type tag of the related entity
}

// Schema is the static declaration of one entity type: its wire type tag, its
// attributes and its related collections. One schema table drives the codec,
// the encoder and the controller for every entity type; there is no
// per-entity mapping code.
type Schema struct {
	TypeTag       string
	Attributes    []Attribute
	Relationships []Relationship
}

// Attr looks up a declared attribute by its domain name.
func (s *Schema) Attr(name string) (Attribute, bool) {
	for _, a := range s.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Relationship looks up a declared related collection by name.
func (s *Schema) Relationship(name string) (Relationship, bool) {
	for _, r := range s.Relationships {
		if r.Name == name {
			return r, true
		}
	}
	return Relationship{}, false
}

// Entity type tags as they appear in the wire "type" field.
const (
	TypePlayer          = "player"
	TypeGame            = "game"
	TypeEvent           = "event"
	TypeAchievement     = "achievement"
	TypeAchievementType = "achievement-type"
)

// PlayerSchema describes the player entity.
var PlayerSchema = &Schema{
	TypeTag: TypePlayer,
	Attributes: []Attribute{
		{Name: "avatarUrl", Kind: Text},
		{Name: "email", Kind: Text},
		{Name: "handle", Kind: Text},
		{Name: "name", Kind: Text},
	},
	Relationships: []Relationship{
		{Name: "achievements", Target: TypeAchievement},
		{Name: "events", Target: TypeEvent},
		{Name: "games", Target: TypeGame},
	},
}

// GameSchema describes the game entity.
var GameSchema = &Schema{
	TypeTag: TypeGame,
	Attributes: []Attribute{
		{Name: "active", Kind: Text},
		{Name: "endedAt", Kind: Timestamp, Nullable: true},
		{Name: "gameType", Kind: Enum, Enum: []string{"ffa", "duel", "ctf"}},
		{Name: "startedAt", Kind: Timestamp},
		{Name: "winnerID", Kind: Reference, Target: TypePlayer, Nullable: true},
	},
	Relationships: []Relationship{
		{Name: "achievements", Target: TypeAchievement},
		{Name: "events", Target: TypeEvent},
		{Name: "players", Target: TypePlayer},
	},
}

// EventSchema describes the game-event entity.
var EventSchema = &Schema{
	TypeTag: TypeEvent,
	Attributes: []Attribute{
		{Name: "eventType", Kind: Enum, Enum: []string{"joined", "left", "spawned", "damaged", "fragged"}},
		{Name: "gameID", Kind: Reference, Target: TypeGame},
		{Name: "playerID", Kind: Reference, Target: TypePlayer},
		{Name: "timestamp", Kind: Timestamp},
		{Name: "toID", Kind: Reference, Target: TypePlayer, Nullable: true},
	},
}

// AchievementSchema describes the achievement entity.
var AchievementSchema = &Schema{
	TypeTag: TypeAchievement,
	Attributes: []Attribute{
		{Name: "achievementTypeID", Kind: Reference, Target: TypeAchievementType},
		{Name: "gameID", Kind: Reference, Target: TypeGame},
		{Name: "playerID", Kind: Reference, Target: TypePlayer},
		{Name: "timestamp", Kind: Timestamp},
	},
}

// AchievementTypeSchema describes the achievement-type entity.
var AchievementTypeSchema = &Schema{
	TypeTag: TypeAchievementType,
	Attributes: []Attribute{
		{Name: "name", Kind: Text},
	},
}

// Schemas indexes every entity schema by its type tag.
var Schemas = map[string]*Schema{
	TypePlayer:          PlayerSchema,
	TypeGame:            GameSchema,
	TypeEvent:           EventSchema,
	TypeAchievement:     AchievementSchema,
	TypeAchievementType: AchievementTypeSchema,
}
