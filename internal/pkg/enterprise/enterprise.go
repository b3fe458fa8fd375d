package enterprise

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ManuelReschke/featurehub/internal/pkg/apiclient"
	"github.com/ManuelReschke/featurehub/internal/pkg/config"
	"github.com/ManuelReschke/featurehub/internal/pkg/entitlements"
	"github.com/ManuelReschke/featurehub/internal/pkg/metrics"
)

const secretKeyHeader = "Enterprise-Api-Secret-Key"

// Info is the enterprise deployment payload. Nil fields were absent.
type Info struct {
	SSOEnforcedForSignin         *bool    `json:"sso_enforced_for_signin"`
	SSOEnforcedForSigninProtocol *string  `json:"sso_enforced_for_signin_protocol"`
	SSOEnforcedForWeb            *bool    `json:"sso_enforced_for_web"`
	SSOEnforcedForWebProtocol    *string  `json:"sso_enforced_for_web_protocol"`
	EnableEmailCodeLogin         *bool    `json:"enable_email_code_login"`
	EnableEmailPasswordLogin     *bool    `json:"enable_email_password_login"`
	IsAllowRegister              *bool    `json:"is_allow_register"`
	IsAllowCreateWorkspace       *bool    `json:"is_allow_create_workspace"`
	License                      *License `json:"license"`
}

type License struct {
	// Status is normalized on decode; a present key with an unknown value
	// (null included) becomes inactive.
	Status    *entitlements.LicenseStatus `json:"status"`
	ExpiredAt *string                     `json:"expired_at"`
}

func (l *License) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*l = License{}
	if raw, ok := fields["status"]; ok {
		var status entitlements.LicenseStatus
		if err := status.UnmarshalJSON(raw); err != nil {
			return err
		}
		l.Status = &status
	}
	if raw, ok := fields["expired_at"]; ok {
		if err := json.Unmarshal(raw, &l.ExpiredAt); err != nil {
			return err
		}
	}
	return nil
}

// Client talks to the enterprise service.
type Client struct {
	BaseURL   string
	SecretKey string

	HTTPClient *http.Client
	Metrics    metrics.CollaboratorMetrics
}

func NewClientFromConfig(cfg *config.Config, m metrics.CollaboratorMetrics) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(cfg.EnterpriseAPIURL, "/"),
		SecretKey:  cfg.EnterpriseAPISecretKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Metrics:    m,
	}
}

// GetInfo fetches SSO, login and license settings of the deployment.
func (c *Client) GetInfo(ctx context.Context) (info *Info, err error) {
	start := time.Now()
	defer func() { metrics.Observe(c.Metrics, "enterprise", start, err) }()

	if strings.TrimSpace(c.BaseURL) == "" {
		return nil, errors.New("ENTERPRISE_API_URL is not configured")
	}

	var out Info
	headers := map[string]string{secretKeyHeader: c.SecretKey}
	if err := apiclient.GetJSON(ctx, c.HTTPClient, c.BaseURL+"/info", headers, &out); err != nil {
		return nil, fmt.Errorf("enterprise info: %w", err)
	}
	return &out, nil
}
