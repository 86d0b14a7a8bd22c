package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Daily operational records. Append-only: workers create entries, nothing
// updates or deletes them through the application.

type EggProduction struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	WorkerID       string    `json:"worker_id" gorm:"type:uuid;not null;index"`
	FarmID         string    `json:"farm_id" gorm:"type:uuid;not null;index"`
	Date           time.Time `json:"date" gorm:"type:date;not null"`
	TraysCollected int       `json:"trays_collected" gorm:"not null"`
	EggsPerTray    int       `json:"eggs_per_tray" gorm:"not null"`
	DamagedTrays   int       `json:"damaged_trays" gorm:"default:0"`
	DamagedEggs    int       `json:"damaged_eggs" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
}

func (e *EggProduction) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type FeedUsage struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey"`
	WorkerID         string    `json:"worker_id" gorm:"type:uuid;not null;index"`
	FarmID           string    `json:"farm_id" gorm:"type:uuid;not null;index"`
	Date             time.Time `json:"date" gorm:"type:date;not null"`
	FeedType         string    `json:"feed_type" gorm:"not null"`
	QuantityUsedKg   float64   `json:"quantity_used_kg" gorm:"not null"`
	RemainingStockKg float64   `json:"remaining_stock_kg" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
}

func (f *FeedUsage) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type Mortality struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	WorkerID       string    `json:"worker_id" gorm:"type:uuid;not null;index"`
	FarmID         string    `json:"farm_id" gorm:"type:uuid;not null;index"`
	Date           time.Time `json:"date" gorm:"type:date;not null"`
	NumberDead     int       `json:"number_dead" gorm:"not null"`
	SuspectedCause string    `json:"suspected_cause"`
	AgeWeeks       int       `json:"age_weeks"`
	CreatedAt      time.Time `json:"created_at"`
}

func (m *Mortality) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type Vaccination struct {
	ID              string    `json:"id" gorm:"type:uuid;primaryKey"`
	WorkerID        string    `json:"worker_id" gorm:"type:uuid;not null;index"`
	FarmID          string    `json:"farm_id" gorm:"type:uuid;not null;index"`
	Date            time.Time `json:"date" gorm:"type:date;not null"`
	VaccineName     string    `json:"vaccine_name" gorm:"not null"`
	BirdsVaccinated int       `json:"birds_vaccinated" gorm:"not null"`
	AdministeredBy  string    `json:"administered_by"`
	CreatedAt       time.Time `json:"created_at"`
}

func (v *Vaccination) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

type DailyNote struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	WorkerID  string    `json:"worker_id" gorm:"type:uuid;not null;index"`
	FarmID    string    `json:"farm_id" gorm:"type:uuid;not null;index"`
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	Note      string    `json:"note" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *DailyNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
