package models

import "time"

// Supported match formats.
const (
	GameTypeFFA  = "ffa"
	GameTypeDuel = "duel"
	GameTypeCTF  = "ctf"
)

// Game represents one play session. A game stays on a player's record even
// after they leave, so the roster only ever grows.
type Game struct {
	ID        uint `gorm:"primaryKey"`
	Active    bool
	EndedAt   *time.Time
	GameType  string `gorm:"size:20;not null"`
	StartedAt time.Time
	WinnerID  *uint

	Winner       *Player       `gorm:"foreignKey:WinnerID"`
	Players      []*Player     `gorm:"many2many:game_players;"`
	Events       []GameEvent   `gorm:"foreignKey:GameID"`
	Achievements []Achievement `gorm:"foreignKey:GameID"`
}
