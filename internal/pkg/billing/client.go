package billing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ManuelReschke/featurehub/internal/pkg/apiclient"
	"github.com/ManuelReschke/featurehub/internal/pkg/config"
	"github.com/ManuelReschke/featurehub/internal/pkg/metrics"
)

const secretKeyHeader = "Billing-Api-Secret-Key"

// Client talks to the billing service. It does not retry; failures are returned as-is.
type Client struct {
	BaseURL   string
	SecretKey string

	HTTPClient *http.Client
	Metrics    metrics.CollaboratorMetrics
}

func NewClientFromConfig(cfg *config.Config, m metrics.CollaboratorMetrics) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(cfg.BillingAPIURL, "/"),
		SecretKey:  cfg.BillingAPISecretKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Metrics:    m,
	}
}

// GetInfo returns the subscription and quota state of a tenant.
func (c *Client) GetInfo(ctx context.Context, tenantID string) (*Info, error) {
	var out Info
	if err := c.get(ctx, "/subscription/info", tenantID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetKnowledgeRateLimit returns the knowledge base request limit for a tenant.
func (c *Client) GetKnowledgeRateLimit(ctx context.Context, tenantID string) (*KnowledgeRateLimit, error) {
	var out KnowledgeRateLimit
	if err := c.get(ctx, "/subscription/knowledge-rate-limit", tenantID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path, tenantID string, out any) (err error) {
	start := time.Now()
	defer func() { metrics.Observe(c.Metrics, "billing", start, err) }()

	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("BILLING_API_URL is not configured")
	}
	if strings.TrimSpace(tenantID) == "" {
		return errors.New("tenant id is required")
	}

	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("invalid BILLING_API_URL: %w", err)
	}
	q := u.Query()
	q.Set("tenant_id", tenantID)
	u.RawQuery = q.Encode()

	headers := map[string]string{secretKeyHeader: c.SecretKey}
	if err := apiclient.GetJSON(ctx, c.HTTPClient, u.String(), headers, out); err != nil {
		return fmt.Errorf("billing request %s: %w", path, err)
	}
	return nil
}
