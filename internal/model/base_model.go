package model

import "time"

// BaseModel carries the surrogate key and the timestamps every table shares.
// Rows are never soft-deleted.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
