package models

// AchievementType is the catalog of achievements that can be earned.
type AchievementType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
}
