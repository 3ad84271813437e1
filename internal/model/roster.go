package model

import "time"

// RosterEntry is one base-cuadrante cell, stored in roster_entries.
// Unique per (nip, date); mutated only through edit replay, never in place.
type RosterEntry struct {
	ID        int64     `gorm:"primaryKey"                           json:"id"`
	NIP       string    `gorm:"type:char(6);not null;index:,unique,composite:nip_date" json:"nip"`
	Date      time.Time `gorm:"type:date;not null;index:,unique,composite:nip_date"   json:"date"`
	Code      string    `gorm:"type:varchar(20);not null;default:''" json:"code"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"   json:"created_at"`

	Worker *Worker `gorm:"foreignKey:NIP;references:NIP" json:"worker,omitempty"`
}

func (RosterEntry) TableName() string { return "roster_entries" }

// ShiftEdit is one append-only change-log row, stored in shift_edits.
// Rows are only ever inserted; the effective roster is derived by replay.
type ShiftEdit struct {
	ID           int64     `gorm:"primaryKey"                            json:"id"`
	EditedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"edited_at"`
	AdminNIP     string    `gorm:"type:char(6);not null"                 json:"admin_nip"`
	NIP          string    `gorm:"type:char(6);not null"                 json:"nip"`
	WorkerName   string    `gorm:"type:varchar(100);not null;default:''" json:"worker_name"` // snapshot at edit time
	Date         time.Time `gorm:"type:date;not null"                    json:"date"`
	PreviousCode string    `gorm:"type:varchar(20);not null;default:''"  json:"previous_code"`
	NewCode      string    `gorm:"type:varchar(20);not null"             json:"new_code"`
	Note         string    `gorm:"type:varchar(500);not null;default:''" json:"note"`
}

func (ShiftEdit) TableName() string { return "shift_edits" }
