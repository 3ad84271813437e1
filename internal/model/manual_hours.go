package model

import "time"

// ManualHours is one additive hour adjustment, stored in manual_hours.
// Covers cases the automatic derivation cannot, e.g. partial sick-leave hours.
type ManualHours struct {
	ID        int64     `gorm:"primaryKey"                            json:"id"`
	NIP       string    `gorm:"type:char(6);not null;index"           json:"nip"`
	Month     int       `gorm:"type:smallint;not null"                json:"month"` // 1..12
	Concept   string    `gorm:"type:varchar(100);not null;default:''" json:"concept"`
	Hours     float64   `gorm:"type:numeric(6,2);not null"            json:"hours"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"created_at"`
}

func (ManualHours) TableName() string { return "manual_hours" }
