package repository

import (
	"fmt"
	"testing"
	"time"

	"farmsync/internal/database"
	"farmsync/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func testFarm(ownerID string) *models.Farm {
	return &models.Farm{
		OwnerID:          ownerID,
		Name:             "Green Valley",
		FarmType:         "layers",
		LocationDistrict: "Kampala",
		StartDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:         true,
	}
}

func testWorker(farmID, username string) *models.Worker {
	return &models.Worker{
		FarmID:                farmID,
		ManagerID:             uuid.NewString(),
		FullName:              "John Doe",
		Role:                  "worker",
		Gender:                "male",
		Age:                   25,
		NextOfKinName:         "Jane Doe",
		NextOfKinRelationship: "sibling",
		NextOfKinPhone:        "+256700000000",
		Username:              username,
		PasswordHash:          "x",
		IsActive:              true,
	}
}

func TestFarmRepositoryDeactivate(t *testing.T) {
	db := newTestDB(t)
	repo := NewFarmRepository(db)

	ownerID := uuid.NewString()
	farm := testFarm(ownerID)
	require.NoError(t, repo.Create(farm))

	farms, err := repo.GetActiveByOwner(ownerID)
	require.NoError(t, err)
	require.Len(t, farms, 1)

	require.NoError(t, repo.Deactivate(farm.ID))

	farms, err = repo.GetActiveByOwner(ownerID)
	require.NoError(t, err)
	assert.Empty(t, farms, "deactivated farms must not be listed")

	// The row itself is retained, only the flag changes.
	got, err := repo.GetByID(farm.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestFarmRepositoryKeepsOptionalFieldsNull(t *testing.T) {
	db := newTestDB(t)
	repo := NewFarmRepository(db)

	farm := testFarm(uuid.NewString())
	require.NoError(t, repo.Create(farm))

	got, err := repo.GetByID(farm.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SizeAcres)
	assert.Nil(t, got.BirdCapacity)
	assert.Nil(t, got.Description)
}

func TestWorkerRepositoryUsernamesByFarm(t *testing.T) {
	db := newTestDB(t)
	farmRepo := NewFarmRepository(db)
	workerRepo := NewWorkerRepository(db)

	farm := testFarm(uuid.NewString())
	require.NoError(t, farmRepo.Create(farm))

	w1 := testWorker(farm.ID, "john_gre001")
	w2 := testWorker(farm.ID, "john_gre002")
	w2.IsActive = false
	require.NoError(t, workerRepo.Create(w1))
	require.NoError(t, workerRepo.Create(w2))

	// Inactive workers still hold their username.
	usernames, err := workerRepo.UsernamesByFarm(farm.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"john_gre001", "john_gre002"}, usernames)

	require.NoError(t, workerRepo.Delete(w2.ID))

	usernames, err = workerRepo.UsernamesByFarm(farm.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"john_gre001"}, usernames)
}

func TestWorkerRepositoryGetActiveCoworkers(t *testing.T) {
	db := newTestDB(t)
	farmRepo := NewFarmRepository(db)
	workerRepo := NewWorkerRepository(db)

	farm := testFarm(uuid.NewString())
	require.NoError(t, farmRepo.Create(farm))

	me := testWorker(farm.ID, "john_gre001")
	active := testWorker(farm.ID, "jane_gre001")
	inactive := testWorker(farm.ID, "mary_gre001")
	inactive.IsActive = false
	require.NoError(t, workerRepo.Create(me))
	require.NoError(t, workerRepo.Create(active))
	require.NoError(t, workerRepo.Create(inactive))

	coworkers, err := workerRepo.GetActiveCoworkers(farm.ID, me.ID)
	require.NoError(t, err)
	require.Len(t, coworkers, 1)
	assert.Equal(t, "jane_gre001", coworkers[0].Username)
}

func TestRecordRepositoryFilters(t *testing.T) {
	db := newTestDB(t)
	recordRepo := NewRecordRepository(db)

	farmID := uuid.NewString()
	workerA := uuid.NewString()
	workerB := uuid.NewString()

	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	for i, workerID := range []string{workerA, workerA, workerB} {
		rec := &models.EggProduction{
			WorkerID:       workerID,
			FarmID:         farmID,
			Date:           day(i + 1),
			TraysCollected: 10,
			EggsPerTray:    30,
		}
		require.NoError(t, recordRepo.CreateEggProduction(rec))
	}

	all, err := recordRepo.ListEggProduction(farmID, RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byWorker, err := recordRepo.ListEggProduction(farmID, RecordFilter{WorkerID: workerA})
	require.NoError(t, err)
	assert.Len(t, byWorker, 2)

	from := day(2)
	ranged, err := recordRepo.ListEggProduction(farmID, RecordFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}
