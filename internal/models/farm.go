package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Farm struct {
	ID                string     `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID           string     `json:"owner_id" gorm:"type:uuid;not null;index"`
	Name              string     `json:"name" gorm:"not null"`
	FarmType          string     `json:"farm_type" gorm:"not null"` // layers, broilers, dual_purpose
	LocationDistrict  string     `json:"location_district" gorm:"not null"`
	LocationSubcounty *string    `json:"location_subcounty"`
	LocationParish    *string    `json:"location_parish"`
	LocationVillage   *string    `json:"location_village"`
	SizeAcres         *float64   `json:"size_acres"`
	BirdCapacity      *int       `json:"bird_capacity"`
	StartDate         time.Time  `json:"start_date" gorm:"type:date;not null"`
	Description       *string    `json:"description"`
	IsActive          bool       `json:"is_active" gorm:"default:true"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (f *Farm) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type FarmType string

const (
	Layers      FarmType = "layers"
	Broilers    FarmType = "broilers"
	DualPurpose FarmType = "dual_purpose"
)
