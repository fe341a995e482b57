package resource

// Domain rules layered on top of the generic create operation for events.
// They are wired into the event controller as an explicit guard and hook so
// the transactional boundary around create-then-roster-add stays visible.

// RequireActiveGame rejects an event payload that carries no game reference,
// or one whose game is no longer active. It runs before the event row is
// written, so a rejection never leaves a partial write behind.
func RequireActiveGame(st Store, attrs map[string]any) error {
	gameID, ok := attrs["gameID"].(uint)
	if !ok {
		return newError(KindMissingRequiredReference, "game-id", "Missing 'game-id' attribute")
	}

	game, err := st.Get(TypeGame, gameID)
	if err != nil {
		return err
	}

	if active, _ := game.Attrs["active"].(bool); !active {
		return newError(KindInactiveGameRejection, "", "Events cannot be created for an inactive game")
	}
	return nil
}

// JoinedAddsToRoster puts the acting player on the game's roster when a
// "joined" event is recorded. Everyone who ever joined the game is part of
// the game's players, even if they leave; adding an existing member is a
// no-op. Other event types have no roster effect.
func JoinedAddsToRoster(st Store, created Entity) error {
	if created.Attrs["eventType"] != "joined" {
		return nil
	}

	gameID, _ := created.Attrs["gameID"].(uint)
	playerID, _ := created.Attrs["playerID"].(uint)

	game, err := st.Get(TypeGame, gameID)
	if err != nil {
		return err
	}
	player, err := st.Get(TypePlayer, playerID)
	if err != nil {
		return err
	}

	return st.AddRelated(game, "players", player)
}
