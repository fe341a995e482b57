package models

import "time"

// Achievement records a player earning an achievement in a particular game.
type Achievement struct {
	ID                uint `gorm:"primaryKey"`
	AchievementTypeID uint `gorm:"not null;index"`
	GameID            uint `gorm:"not null;index"`
	PlayerID          uint `gorm:"not null;index"`
	Timestamp         time.Time

	AchievementType AchievementType `gorm:"foreignKey:AchievementTypeID"`
	Game            Game            `gorm:"foreignKey:GameID"`
	Player          Player          `gorm:"foreignKey:PlayerID"`
}
