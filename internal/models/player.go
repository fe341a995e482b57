package models

// Player represents a player account in the system.
type Player struct {
	ID        uint   `gorm:"primaryKey"`
	AvatarURL string `gorm:"size:512"`
	Email     string `gorm:"size:255"`
	Handle    string `gorm:"size:255"`
	Name      string `gorm:"size:255"`

	Achievements []Achievement `gorm:"foreignKey:PlayerID"`
	Events       []GameEvent   `gorm:"foreignKey:PlayerID"`
	Games        []*Game       `gorm:"many2many:game_players;"`
}
