package model

import "time"

// Worker roles.
const (
	RoleWorker = "worker"
	RoleAdmin  = "admin"
)

// Worker is one police officer, stored in workers.
// NIP is the fixed-width, zero-padded badge number.
type Worker struct {
	NIP          string    `gorm:"type:char(6);primaryKey"                    json:"nip"`
	Name         string    `gorm:"type:varchar(100);not null"                 json:"name"`
	Category     string    `gorm:"type:varchar(50);not null;default:''"       json:"category"`
	Role         string    `gorm:"type:varchar(20);not null;default:'worker'" json:"role"` // worker | admin
	PasswordHash string    `gorm:"type:varchar(255);not null"                 json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"         json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"         json:"updated_at"`
}

func (Worker) TableName() string { return "workers" }
