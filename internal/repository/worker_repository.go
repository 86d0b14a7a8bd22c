package repository

import (
	"farmsync/internal/models"

	"gorm.io/gorm"
)

type WorkerRepository interface {
	Create(worker *models.Worker) error
	GetByID(id string) (*models.Worker, error)
	GetByUsername(username string) (*models.Worker, error)
	GetByFarmID(farmID string) ([]models.Worker, error)
	GetActiveCoworkers(farmID, excludeID string) ([]models.Worker, error)
	UsernamesByFarm(farmID string) ([]string, error)
	Update(worker *models.Worker) error
	Delete(id string) error
}

type workerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(worker *models.Worker) error {
	return r.db.Create(worker).Error
}

func (r *workerRepository) GetByID(id string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.First(&worker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) GetByUsername(username string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.First(&worker, "auto_generated_username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) GetByFarmID(farmID string) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.Where("farm_id = ?", farmID).Order("created_at").Find(&workers).Error
	return workers, err
}

func (r *workerRepository) GetActiveCoworkers(farmID, excludeID string) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.Where("farm_id = ? AND is_active = ? AND id <> ?", farmID, true, excludeID).
		Find(&workers).Error
	return workers, err
}

// UsernamesByFarm returns every username assigned on the farm, active or
// not. The credential generator scans this list for free suffixes.
func (r *workerRepository) UsernamesByFarm(farmID string) ([]string, error) {
	var usernames []string
	err := r.db.Model(&models.Worker{}).
		Where("farm_id = ?", farmID).
		Pluck("auto_generated_username", &usernames).Error
	return usernames, err
}

func (r *workerRepository) Update(worker *models.Worker) error {
	return r.db.Save(worker).Error
}

// Delete removes the row outright, freeing the username suffix for reuse.
func (r *workerRepository) Delete(id string) error {
	return r.db.Delete(&models.Worker{}, "id = ?", id).Error
}
