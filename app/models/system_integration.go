package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	INTEGRATION_DINGTALK = "dingtalk"
	INTEGRATION_OAUTH2   = "oauth2"
)

// SystemIntegration is a configured third-party login provider.
type SystemIntegration struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Classify  string    `gorm:"type:varchar(50);index" json:"classify" validate:"required,oneof=dingtalk oauth2"`
	Status    bool      `gorm:"index;default:false" json:"status"`
	AppKey    string    `gorm:"type:varchar(255);default:null" json:"app_key" validate:"max=255"`
	AppSecret string    `gorm:"type:varchar(255);default:null" json:"-" validate:"max=255"`
	CorpID    string    `gorm:"type:varchar(255);default:null" json:"corp_id" validate:"max=255"`
	Config    string    `gorm:"type:text" json:"config"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// OAuth2Config is the part of an oauth2 integration's config blob the feature views need.
type OAuth2Config struct {
	ServerURL string  `json:"server_url"`
	LogoutURL *string `json:"logout_url"`
}

func (SystemIntegration) TableName() string {
	return "system_integrations"
}

func (s *SystemIntegration) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *SystemIntegration) Validate() error {
	v := validator.New()

	return v.Struct(s)
}

// OAuth2Settings decodes the config blob of an oauth2 integration.
// An empty blob decodes to a zero config.
func (s *SystemIntegration) OAuth2Settings() (*OAuth2Config, error) {
	var cfg OAuth2Config
	raw := strings.TrimSpace(s.Config)
	if raw == "" {
		return &cfg, nil
	}
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("integration %s: invalid config: %w", s.ID, err)
	}
	return &cfg, nil
}

// LogoutEndpoint joins server_url and logout_url. It returns "" when no logout_url is configured.
func (c *OAuth2Config) LogoutEndpoint() string {
	if c == nil || c.LogoutURL == nil {
		return ""
	}
	return c.ServerURL + *c.LogoutURL
}
