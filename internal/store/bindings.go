package store

import (
	"time"

	"ledgerman/backend/internal/models"
	"ledgerman/backend/internal/resource"
)

type assocLink struct {
	field  string // gorm association name on the model
	target string // type tag of the related entity
}

// binding adapts one gorm model to the neutral entity record. The attribute
// maps use domain (camelCase) names, matching the schema declarations.
type binding struct {
	model   func() any
	slice   func() any
	byID    func(id uint) any
	id      func(m any) uint
	attrs   func(m any) map[string]any
	apply   func(m any, attrs map[string]any) error
	collect func(slice any) []any
	assocs  map[string]assocLink
}

func (b *binding) entity(tag string, m any) resource.Entity {
	return resource.Entity{ID: b.id(m), Type: tag, Attrs: b.attrs(m)}
}

func (b *binding) entities(tag string, slice any) []resource.Entity {
	items := b.collect(slice)
	out := make([]resource.Entity, 0, len(items))
	for _, m := range items {
		out = append(out, b.entity(tag, m))
	}
	return out
}

var bindings = map[string]*binding{
	resource.TypePlayer: {
		model: func() any { return new(models.Player) },
		slice: func() any { return new([]models.Player) },
		byID:  func(id uint) any { return &models.Player{ID: id} },
		id:    func(m any) uint { return m.(*models.Player).ID },
		attrs: func(m any) map[string]any {
			p := m.(*models.Player)
			return map[string]any{
				"avatarUrl": p.AvatarURL,
				"email":     p.Email,
				"handle":    p.Handle,
				"name":      p.Name,
			}
		},
		apply:   applyPlayer,
		collect: collectSlice[models.Player],
		assocs: map[string]assocLink{
			"achievements": {"Achievements", resource.TypeAchievement},
			"events":       {"Events", resource.TypeEvent},
			"games":        {"Games", resource.TypeGame},
		},
	},
	resource.TypeGame: {
		model: func() any { return new(models.Game) },
		slice: func() any { return new([]models.Game) },
		byID:  func(id uint) any { return &models.Game{ID: id} },
		id:    func(m any) uint { return m.(*models.Game).ID },
		attrs: func(m any) map[string]any {
			g := m.(*models.Game)
			return map[string]any{
				"active":    g.Active,
				"endedAt":   g.EndedAt,
				"gameType":  g.GameType,
				"startedAt": g.StartedAt,
				"winnerID":  g.WinnerID,
			}
		},
		apply:   applyGame,
		collect: collectSlice[models.Game],
		assocs: map[string]assocLink{
			"achievements": {"Achievements", resource.TypeAchievement},
			"events":       {"Events", resource.TypeEvent},
			"players":      {"Players", resource.TypePlayer},
		},
	},
	resource.TypeEvent: {
		model: func() any { return new(models.GameEvent) },
		slice: func() any { return new([]models.GameEvent) },
		byID:  func(id uint) any { return &models.GameEvent{ID: id} },
		id:    func(m any) uint { return m.(*models.GameEvent).ID },
		attrs: func(m any) map[string]any {
			e := m.(*models.GameEvent)
			return map[string]any{
				"eventType": e.EventType,
				"gameID":    e.GameID,
				"playerID":  e.PlayerID,
				"timestamp": e.Timestamp,
				"toID":      e.ToID,
			}
		},
		apply:   applyEvent,
		collect: collectSlice[models.GameEvent],
	},
	resource.TypeAchievement: {
		model: func() any { return new(models.Achievement) },
		slice: func() any { return new([]models.Achievement) },
		byID:  func(id uint) any { return &models.Achievement{ID: id} },
		id:    func(m any) uint { return m.(*models.Achievement).ID },
		attrs: func(m any) map[string]any {
			a := m.(*models.Achievement)
			return map[string]any{
				"achievementTypeID": a.AchievementTypeID,
				"gameID":            a.GameID,
				"playerID":          a.PlayerID,
				"timestamp":         a.Timestamp,
			}
		},
		apply:   applyAchievement,
		collect: collectSlice[models.Achievement],
	},
	resource.TypeAchievementType: {
		model: func() any { return new(models.AchievementType) },
		slice: func() any { return new([]models.AchievementType) },
		byID:  func(id uint) any { return &models.AchievementType{ID: id} },
		id:    func(m any) uint { return m.(*models.AchievementType).ID },
		attrs: func(m any) map[string]any {
			t := m.(*models.AchievementType)
			return map[string]any{"name": t.Name}
		},
		apply:   applyAchievementType,
		collect: collectSlice[models.AchievementType],
	},
}

func collectSlice[T any](slice any) []any {
	items := *slice.(*[]T)
	out := make([]any, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

func applyPlayer(m any, attrs map[string]any) error {
	p := m.(*models.Player)
	for k, v := range attrs {
		var ok bool
		switch k {
		case "avatarUrl":
			p.AvatarURL, ok = asString(v)
		case "email":
			p.Email, ok = asString(v)
		case "handle":
			p.Handle, ok = asString(v)
		case "name":
			p.Name, ok = asString(v)
		default:
			continue
		}
		if !ok {
			return badAttr(k)
		}
	}
	return nil
}

func applyGame(m any, attrs map[string]any) error {
	g := m.(*models.Game)
	for k, v := range attrs {
		var ok bool
		switch k {
		case "active":
			g.Active, ok = asBool(v)
		case "endedAt":
			g.EndedAt, ok = asTimePtr(v)
		case "gameType":
			g.GameType, ok = asString(v)
		case "startedAt":
			g.StartedAt, ok = asTime(v)
		case "winnerID":
			g.WinnerID, ok = asUintPtr(v)
		default:
			continue
		}
		if !ok {
			return badAttr(k)
		}
	}
	return nil
}

func applyEvent(m any, attrs map[string]any) error {
	e := m.(*models.GameEvent)
	for k, v := range attrs {
		var ok bool
		switch k {
		case "eventType":
			e.EventType, ok = asString(v)
		case "gameID":
			e.GameID, ok = asUint(v)
		case "playerID":
			e.PlayerID, ok = asUint(v)
		case "timestamp":
			e.Timestamp, ok = asTime(v)
		case "toID":
			e.ToID, ok = asUintPtr(v)
		default:
			continue
		}
		if !ok {
			return badAttr(k)
		}
	}
	return nil
}

func applyAchievement(m any, attrs map[string]any) error {
	a := m.(*models.Achievement)
	for k, v := range attrs {
		var ok bool
		switch k {
		case "achievementTypeID":
			a.AchievementTypeID, ok = asUint(v)
		case "gameID":
			a.GameID, ok = asUint(v)
		case "playerID":
			a.PlayerID, ok = asUint(v)
		case "timestamp":
			a.Timestamp, ok = asTime(v)
		default:
			continue
		}
		if !ok {
			return badAttr(k)
		}
	}
	return nil
}

func applyAchievementType(m any, attrs map[string]any) error {
	t := m.(*models.AchievementType)
	for k, v := range attrs {
		var ok bool
		switch k {
		case "name":
			t.Name, ok = asString(v)
		default:
			continue
		}
		if !ok {
			return badAttr(k)
		}
	}
	return nil
}

// Coercions from the codec's value set onto model fields. nil is accepted
// wherever the column is a pointer; a nil for a plain string lands as the
// empty string, matching how the database would render NULL text.

func asString(v any) (string, bool) {
	if v == nil {
		return "", true
	}
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asTime(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

func asTimePtr(v any) (*time.Time, bool) {
	if v == nil {
		return nil, true
	}
	t, ok := v.(time.Time)
	if !ok {
		return nil, false
	}
	return &t, true
}

func asUint(v any) (uint, bool) {
	u, ok := v.(uint)
	return u, ok
}

func asUintPtr(v any) (*uint, bool) {
	if v == nil {
		return nil, true
	}
	u, ok := v.(uint)
	if !ok {
		return nil, false
	}
	return &u, true
}

func badAttr(domainName string) error {
	wireName := resource.ToWireName(domainName)
	return &resource.Error{
		Kind:    resource.KindMalformedPayload,
		Attr:    wireName,
		Message: "'" + wireName + "' has the wrong type",
	}
}
