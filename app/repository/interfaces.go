package repository

import (
	"github.com/ManuelReschke/featurehub/app/models"
	"gorm.io/gorm"
)

// SystemIntegrationRepository defines the interface for third-party login integration records
type SystemIntegrationRepository interface {
	Create(integration *models.SystemIntegration) error
	ListEnabled() ([]models.SystemIntegration, error)
}

// Repositories holds all repository instances
type Repositories struct {
	SystemIntegration SystemIntegrationRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		SystemIntegration: NewSystemIntegrationRepository(db),
	}
}
