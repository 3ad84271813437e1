package repository

import "gorm.io/gorm"

// Repository aggregates every repository interface.
type Repository struct {
	Worker      WorkerRepository
	Roster      RosterRepository
	ShiftEdit   ShiftEditRepository
	ManualHours ManualHoursRepository
	Holiday     HolidayRepository
}

// NewRepository wires the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Worker:      NewWorkerRepo(db),
		Roster:      NewRosterRepo(db),
		ShiftEdit:   NewShiftEditRepo(db),
		ManualHours: NewManualHoursRepo(db),
		Holiday:     NewHolidayRepo(db),
	}
}
