package repository

import (
	"github.com/ManuelReschke/featurehub/app/models"
	"gorm.io/gorm"
)

// systemIntegrationRepository implements the SystemIntegrationRepository interface
type systemIntegrationRepository struct {
	db *gorm.DB
}

// NewSystemIntegrationRepository creates a new system integration repository instance
func NewSystemIntegrationRepository(db *gorm.DB) SystemIntegrationRepository {
	return &systemIntegrationRepository{db: db}
}

// Create stores a new integration record
func (r *systemIntegrationRepository) Create(integration *models.SystemIntegration) error {
	if err := integration.Validate(); err != nil {
		return err
	}
	return r.db.Create(integration).Error
}

// ListEnabled returns all integrations with status enabled, oldest first
func (r *systemIntegrationRepository) ListEnabled() ([]models.SystemIntegration, error) {
	var integrations []models.SystemIntegration
	err := r.db.Where("status = ?", true).Order("created_at ASC").Find(&integrations).Error
	return integrations, err
}
