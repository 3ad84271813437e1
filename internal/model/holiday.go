package model

import "time"

// Holiday is one calendar holiday, stored in holidays.
// Sundays are treated as holiday-equivalent without a row here.
type Holiday struct {
	Date time.Time `gorm:"type:date;primaryKey"                  json:"date"`
	Name string    `gorm:"type:varchar(100);not null;default:''" json:"name"`
}

func (Holiday) TableName() string { return "holidays" }
