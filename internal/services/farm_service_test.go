package services

import (
	"testing"

	"farmsync/internal/repository"
	"farmsync/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFarmLeavesOptionalFieldsNull(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewFarmRepository(db)
	service := NewFarmService(repo)

	ownerID := uuid.NewString()
	farm, err := service.CreateFarm(ownerID, validation.FarmInput{
		Name:             "Green Valley",
		FarmType:         "layers",
		LocationDistrict: "Kampala",
		StartDate:        "2025-01-01",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(farm.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SizeAcres)
	assert.Nil(t, got.BirdCapacity)
	assert.Nil(t, got.LocationSubcounty)
	assert.Nil(t, got.Description)
	assert.True(t, got.IsActive)
	assert.Equal(t, ownerID, got.OwnerID)
}

func TestCreateFarmValidates(t *testing.T) {
	db := newTestDB(t)
	service := NewFarmService(repository.NewFarmRepository(db))

	_, err := service.CreateFarm(uuid.NewString(), validation.FarmInput{
		Name:             "G",
		FarmType:         "goats",
		LocationDistrict: "",
		StartDate:        "soon",
	})
	require.Error(t, err)

	fieldErrs, ok := err.(validation.FieldErrors)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "farm_type")
	assert.Contains(t, fieldErrs, "location_district")
	assert.Contains(t, fieldErrs, "start_date")
}

func TestUpdateFarmChecksOwnership(t *testing.T) {
	db := newTestDB(t)
	service := NewFarmService(repository.NewFarmRepository(db))

	farm, err := service.CreateFarm(uuid.NewString(), validation.FarmInput{
		Name:             "Green Valley",
		FarmType:         "layers",
		LocationDistrict: "Kampala",
		StartDate:        "2025-01-01",
	})
	require.NoError(t, err)

	_, err = service.UpdateFarm(farm.ID, uuid.NewString(), validation.FarmInput{
		Name:             "Stolen Valley",
		FarmType:         "layers",
		LocationDistrict: "Kampala",
		StartDate:        "2025-01-01",
	})
	assert.ErrorIs(t, err, ErrNotFarmOwner)
}

func TestDeactivateFarmHidesItFromListing(t *testing.T) {
	db := newTestDB(t)
	service := NewFarmService(repository.NewFarmRepository(db))

	ownerID := uuid.NewString()
	farm, err := service.CreateFarm(ownerID, validation.FarmInput{
		Name:             "Green Valley",
		FarmType:         "layers",
		LocationDistrict: "Kampala",
		StartDate:        "2025-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeactivateFarm(farm.ID, ownerID))

	farms, err := service.ListFarms(ownerID)
	require.NoError(t, err)
	assert.Empty(t, farms)
}
