package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ManuelReschke/featurehub/internal/pkg/env"
)

// DefaultPluginMaxPackageSize is 50 MiB.
const DefaultPluginMaxPackageSize = 52428800

// Config holds the process-level settings the feature service reads.
// Every field has a built-in default; a missing key never fails startup.
type Config struct {
	BillingEnabled      bool
	BillingAPIURL       string `validate:"omitempty,url"`
	BillingAPISecretKey string

	EnterpriseEnabled      bool
	EnterpriseAPIURL       string `validate:"omitempty,url"`
	EnterpriseAPISecretKey string

	MarketplaceEnabled   bool
	PluginMaxPackageSize int `validate:"gte=0"`

	EnableEmailCodeLogin     bool
	EnableEmailPasswordLogin bool
	EnableSocialOAuthLogin   bool
	AllowRegister            bool
	AllowCreateWorkspace     bool
	MailType                 string

	CanReplaceLogo         bool
	ModelLBEnabled         bool
	DatasetOperatorEnabled bool
	EducationEnabled       bool

	ConsoleWebURL string `validate:"omitempty,url"`
}

// Load builds a Config from the loaded .env map and the process environment.
func Load() *Config {
	return &Config{
		BillingEnabled:      env.GetEnvBool("BILLING_ENABLED", false),
		BillingAPIURL:       strings.TrimSpace(env.GetEnv("BILLING_API_URL", "")),
		BillingAPISecretKey: strings.TrimSpace(env.GetEnv("BILLING_API_SECRET_KEY", "")),

		EnterpriseEnabled:      env.GetEnvBool("ENTERPRISE_ENABLED", false),
		EnterpriseAPIURL:       strings.TrimSpace(env.GetEnv("ENTERPRISE_API_URL", "")),
		EnterpriseAPISecretKey: strings.TrimSpace(env.GetEnv("ENTERPRISE_API_SECRET_KEY", "")),

		MarketplaceEnabled:   env.GetEnvBool("MARKETPLACE_ENABLED", false),
		PluginMaxPackageSize: env.GetEnvInt("PLUGIN_MAX_PACKAGE_SIZE", DefaultPluginMaxPackageSize),

		EnableEmailCodeLogin:     env.GetEnvBool("ENABLE_EMAIL_CODE_LOGIN", false),
		EnableEmailPasswordLogin: env.GetEnvBool("ENABLE_EMAIL_PASSWORD_LOGIN", true),
		EnableSocialOAuthLogin:   env.GetEnvBool("ENABLE_SOCIAL_OAUTH_LOGIN", false),
		AllowRegister:            env.GetEnvBool("ALLOW_REGISTER", false),
		AllowCreateWorkspace:     env.GetEnvBool("ALLOW_CREATE_WORKSPACE", false),
		MailType:                 strings.TrimSpace(env.GetEnv("MAIL_TYPE", "")),

		CanReplaceLogo:         env.GetEnvBool("CAN_REPLACE_LOGO", false),
		ModelLBEnabled:         env.GetEnvBool("MODEL_LB_ENABLED", false),
		DatasetOperatorEnabled: env.GetEnvBool("DATASET_OPERATOR_ENABLED", false),
		EducationEnabled:       env.GetEnvBool("EDUCATION_ENABLED", false),

		ConsoleWebURL: strings.TrimSpace(env.GetEnv("CONSOLE_WEB_URL", "")),
	}
}

// Validate checks URL formats and that every enabled collaborator has an endpoint.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.BillingEnabled && c.BillingAPIURL == "" {
		return errors.New("BILLING_API_URL is required when BILLING_ENABLED is set")
	}
	if c.EnterpriseEnabled && c.EnterpriseAPIURL == "" {
		return errors.New("ENTERPRISE_API_URL is required when ENTERPRISE_ENABLED is set")
	}
	return nil
}

// IsEmailSetup reports whether a mail backend is configured.
func (c *Config) IsEmailSetup() bool {
	return c.MailType != ""
}
