package repository

import (
	"time"

	"farmsync/internal/models"

	"gorm.io/gorm"
)

// RecordFilter narrows a daily-record listing. Zero values mean no filter.
type RecordFilter struct {
	WorkerID string
	From     *time.Time
	To       *time.Time
}

// RecordRepository covers the five append-only daily-record tables. Records
// are created and listed; there is no update or delete path.
type RecordRepository interface {
	CreateEggProduction(rec *models.EggProduction) error
	ListEggProduction(farmID string, f RecordFilter) ([]models.EggProduction, error)
	CreateFeedUsage(rec *models.FeedUsage) error
	ListFeedUsage(farmID string, f RecordFilter) ([]models.FeedUsage, error)
	CreateMortality(rec *models.Mortality) error
	ListMortality(farmID string, f RecordFilter) ([]models.Mortality, error)
	CreateVaccination(rec *models.Vaccination) error
	ListVaccination(farmID string, f RecordFilter) ([]models.Vaccination, error)
	CreateDailyNote(rec *models.DailyNote) error
	ListDailyNotes(farmID string, f RecordFilter) ([]models.DailyNote, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) scope(farmID string, f RecordFilter) *gorm.DB {
	q := r.db.Where("farm_id = ?", farmID)
	if f.WorkerID != "" {
		q = q.Where("worker_id = ?", f.WorkerID)
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}
	return q.Order("date DESC")
}

func (r *recordRepository) CreateEggProduction(rec *models.EggProduction) error {
	return r.db.Create(rec).Error
}

func (r *recordRepository) ListEggProduction(farmID string, f RecordFilter) ([]models.EggProduction, error) {
	var recs []models.EggProduction
	err := r.scope(farmID, f).Find(&recs).Error
	return recs, err
}

func (r *recordRepository) CreateFeedUsage(rec *models.FeedUsage) error {
	return r.db.Create(rec).Error
}

func (r *recordRepository) ListFeedUsage(farmID string, f RecordFilter) ([]models.FeedUsage, error) {
	var recs []models.FeedUsage
	err := r.scope(farmID, f).Find(&recs).Error
	return recs, err
}

func (r *recordRepository) CreateMortality(rec *models.Mortality) error {
	return r.db.Create(rec).Error
}

func (r *recordRepository) ListMortality(farmID string, f RecordFilter) ([]models.Mortality, error) {
	var recs []models.Mortality
	err := r.scope(farmID, f).Find(&recs).Error
	return recs, err
}

func (r *recordRepository) CreateVaccination(rec *models.Vaccination) error {
	return r.db.Create(rec).Error
}

func (r *recordRepository) ListVaccination(farmID string, f RecordFilter) ([]models.Vaccination, error) {
	var recs []models.Vaccination
	err := r.scope(farmID, f).Find(&recs).Error
	return recs, err
}

func (r *recordRepository) CreateDailyNote(rec *models.DailyNote) error {
	return r.db.Create(rec).Error
}

func (r *recordRepository) ListDailyNotes(farmID string, f RecordFilter) ([]models.DailyNote, error) {
	var recs []models.DailyNote
	err := r.scope(farmID, f).Find(&recs).Error
	return recs, err
}
