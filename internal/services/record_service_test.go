package services

import (
	"testing"

	"farmsync/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordService(t *testing.T) RecordService {
	t.Helper()
	return NewRecordService(repository.NewRecordRepository(newTestDB(t)))
}

func TestRecordEggProduction(t *testing.T) {
	service := newRecordService(t)

	workerID := uuid.NewString()
	farmID := uuid.NewString()

	rec, err := service.RecordEggProduction(workerID, farmID, EggProductionInput{
		Date:           "2025-03-01",
		TraysCollected: 12,
		EggsPerTray:    30,
		DamagedTrays:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, workerID, rec.WorkerID)
	assert.Equal(t, farmID, rec.FarmID)

	recs, err := service.ListEggProduction(farmID, ListFilter{WorkerID: workerID})
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestRecordRejectsBadDates(t *testing.T) {
	service := newRecordService(t)

	_, err := service.RecordEggProduction("w", "f", EggProductionInput{Date: "yesterday"})
	assert.Error(t, err)

	_, err = service.RecordDailyNote("w", "f", DailyNoteInput{Date: "", Note: "all fine"})
	assert.Error(t, err)
}

func TestRecordRejectsNegativeQuantities(t *testing.T) {
	service := newRecordService(t)

	_, err := service.RecordMortality("w", "f", MortalityInput{Date: "2025-03-01", NumberDead: -1})
	assert.Error(t, err)

	_, err = service.RecordFeedUsage("w", "f", FeedUsageInput{
		Date:           "2025-03-01",
		FeedType:       "starter",
		QuantityUsedKg: -2,
	})
	assert.Error(t, err)
}

func TestListFilterValidatesRange(t *testing.T) {
	service := newRecordService(t)

	_, err := service.ListVaccination(uuid.NewString(), ListFilter{From: "last week"})
	assert.Error(t, err)
}
