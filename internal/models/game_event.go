package models

import "time"

// Event types recorded during a game.
const (
	EventJoined  = "joined"
	EventLeft    = "left"
	EventSpawned = "spawned"
	EventDamaged = "damaged"
	EventFragged = "fragged"
)

// GameEvent records something a player did during a game. Events are
// append-only: no update or delete route is ever registered for them.
type GameEvent struct {
	ID        uint   `gorm:"primaryKey"`
	EventType string `gorm:"size:20;not null"`
	GameID    uint   `gorm:"not null;index"`
	PlayerID  uint   `gorm:"not null;index"`
	Timestamp time.Time
	ToID      *uint // target player, e.g. who got fragged

	Game   Game    `gorm:"foreignKey:GameID"`
	Player Player  `gorm:"foreignKey:PlayerID"`
	To     *Player `gorm:"foreignKey:ToID"`
}
