package services

import (
	"errors"
	"time"

	"farmsync/internal/models"
	"farmsync/internal/repository"
	"farmsync/internal/validation"
)

var ErrNotFarmOwner = errors.New("farm does not belong to this account")

type FarmService interface {
	CreateFarm(ownerID string, in validation.FarmInput) (*models.Farm, error)
	GetFarm(id string) (*models.Farm, error)
	ListFarms(ownerID string) ([]models.Farm, error)
	UpdateFarm(id, ownerID string, in validation.FarmInput) (*models.Farm, error)
	DeactivateFarm(id, ownerID string) error
}

type farmService struct {
	farmRepo repository.FarmRepository
}

func NewFarmService(farmRepo repository.FarmRepository) FarmService {
	return &farmService{farmRepo: farmRepo}
}

func (s *farmService) CreateFarm(ownerID string, in validation.FarmInput) (*models.Farm, error) {
	if err := validation.ValidateFarm(in); err != nil {
		return nil, err
	}

	startDate, _ := time.Parse("2006-01-02", in.StartDate)

	farm := &models.Farm{
		OwnerID:           ownerID,
		Name:              in.Name,
		FarmType:          in.FarmType,
		LocationDistrict:  in.LocationDistrict,
		LocationSubcounty: optional(in.LocationSubcounty),
		LocationParish:    optional(in.LocationParish),
		LocationVillage:   optional(in.LocationVillage),
		SizeAcres:         in.SizeAcres,
		BirdCapacity:      in.BirdCapacity,
		StartDate:         startDate,
		Description:       optional(in.Description),
		IsActive:          true,
	}
	if err := s.farmRepo.Create(farm); err != nil {
		return nil, err
	}
	return farm, nil
}

func (s *farmService) GetFarm(id string) (*models.Farm, error) {
	return s.farmRepo.GetByID(id)
}

func (s *farmService) ListFarms(ownerID string) ([]models.Farm, error) {
	return s.farmRepo.GetActiveByOwner(ownerID)
}

func (s *farmService) UpdateFarm(id, ownerID string, in validation.FarmInput) (*models.Farm, error) {
	if err := validation.ValidateFarm(in); err != nil {
		return nil, err
	}

	farm, err := s.ownedFarm(id, ownerID)
	if err != nil {
		return nil, err
	}

	startDate, _ := time.Parse("2006-01-02", in.StartDate)

	farm.Name = in.Name
	farm.FarmType = in.FarmType
	farm.LocationDistrict = in.LocationDistrict
	farm.LocationSubcounty = optional(in.LocationSubcounty)
	farm.LocationParish = optional(in.LocationParish)
	farm.LocationVillage = optional(in.LocationVillage)
	farm.SizeAcres = in.SizeAcres
	farm.BirdCapacity = in.BirdCapacity
	farm.StartDate = startDate
	farm.Description = optional(in.Description)

	if err := s.farmRepo.Update(farm); err != nil {
		return nil, err
	}
	return farm, nil
}

func (s *farmService) DeactivateFarm(id, ownerID string) error {
	if _, err := s.ownedFarm(id, ownerID); err != nil {
		return err
	}
	return s.farmRepo.Deactivate(id)
}

func (s *farmService) ownedFarm(id, ownerID string) (*models.Farm, error) {
	farm, err := s.farmRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if farm.OwnerID != ownerID {
		return nil, ErrNotFarmOwner
	}
	return farm, nil
}

// optional maps an empty string to NULL so unset dialog fields stay null in
// storage instead of being stored as "".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
