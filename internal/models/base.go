package models

import "time"

// BaseModel uses hard deletes: rows vanish for real, so unique indexes and
// delete-then-recreate behave the way the catalog expects.
type BaseModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
