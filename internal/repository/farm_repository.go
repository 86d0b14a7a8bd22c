package repository

import (
	"farmsync/internal/models"

	"gorm.io/gorm"
)

type FarmRepository interface {
	Create(farm *models.Farm) error
	GetByID(id string) (*models.Farm, error)
	GetActiveByOwner(ownerID string) ([]models.Farm, error)
	Update(farm *models.Farm) error
	Deactivate(id string) error
}

type farmRepository struct {
	db *gorm.DB
}

func NewFarmRepository(db *gorm.DB) FarmRepository {
	return &farmRepository{db: db}
}

func (r *farmRepository) Create(farm *models.Farm) error {
	return r.db.Create(farm).Error
}

func (r *farmRepository) GetByID(id string) (*models.Farm, error) {
	var farm models.Farm
	err := r.db.First(&farm, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

func (r *farmRepository) GetActiveByOwner(ownerID string) ([]models.Farm, error) {
	var farms []models.Farm
	err := r.db.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at").
		Find(&farms).Error
	return farms, err
}

func (r *farmRepository) Update(farm *models.Farm) error {
	return r.db.Save(farm).Error
}

// Deactivate soft-removes a farm by clearing its active flag. Farm rows are
// never hard-deleted.
func (r *farmRepository) Deactivate(id string) error {
	return r.db.Model(&models.Farm{}).Where("id = ?", id).
		Update("is_active", false).Error
}
