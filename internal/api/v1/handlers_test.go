package apiv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/featurehub/internal/pkg/billing"
	"github.com/ManuelReschke/featurehub/internal/pkg/config"
	"github.com/ManuelReschke/featurehub/internal/pkg/features"
	"github.com/ManuelReschke/featurehub/internal/pkg/middleware"
	"github.com/ManuelReschke/featurehub/internal/pkg/tenantcontext"
)

const testTenant = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"

type hostRecorder struct {
	host string
}

func (h *hostRecorder) PublishAPIHost(_ context.Context, host string) error {
	h.host = host
	return nil
}

func newBillingServer(t *testing.T, status int, body string) *billing.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testTenant, r.URL.Query().Get("tenant_id"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &billing.Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
}

func newTestApp(svc *features.Service) *fiber.App {
	app := fiber.New()
	v1 := app.Group("/api/v1", middleware.TenantContextMiddleware)
	RegisterHandlers(v1, NewAPIServer(svc))
	return app
}

func doGet(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(tenantcontext.HeaderTenantID, testTenant)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out))
	}
	return resp.StatusCode
}

func TestGetPing(t *testing.T) {
	app := newTestApp(features.NewService(&config.Config{}, nil, nil, nil, nil, nil))

	var pong Pong
	assert.Equal(t, fiber.StatusOK, doGet(t, app, "/api/v1/ping", &pong))
	assert.Equal(t, "pong", pong.Ping)
}

func TestGetFeaturesEndpoint(t *testing.T) {
	bc := newBillingServer(t, http.StatusOK, `{"enabled": true, "subscription": {"plan": "professional", "interval": "month"}}`)
	svc := features.NewService(&config.Config{BillingEnabled: true}, bc, nil, nil, nil, nil)

	var view features.FeatureView
	assert.Equal(t, fiber.StatusOK, doGet(t, newTestApp(svc), "/api/v1/features", &view))
	assert.True(t, view.Billing.Enabled)
	assert.Equal(t, "professional", view.Billing.Subscription.Plan)
	assert.Equal(t, "month", view.Billing.Subscription.Interval)
	assert.Equal(t, 1, view.Members.Limit)
}

func TestGetFeaturesEndpointUpstreamFailure(t *testing.T) {
	bc := newBillingServer(t, http.StatusInternalServerError, `oops`)
	svc := features.NewService(&config.Config{BillingEnabled: true}, bc, nil, nil, nil, nil)

	var resp ErrorResponse
	assert.Equal(t, fiber.StatusBadGateway, doGet(t, newTestApp(svc), "/api/v1/features", &resp))
	assert.Equal(t, "bad_gateway", resp.Error)
}

func TestGetKnowledgeRateLimitEndpoint(t *testing.T) {
	bc := newBillingServer(t, http.StatusOK, `{}`)
	svc := features.NewService(&config.Config{BillingEnabled: true}, bc, nil, nil, nil, nil)

	var view features.KnowledgeRateLimitView
	assert.Equal(t, fiber.StatusOK, doGet(t, newTestApp(svc), "/api/v1/features/knowledge-rate-limit", &view))
	assert.Equal(t, features.KnowledgeRateLimitView{Enabled: true, Limit: 10, SubscriptionPlan: "sandbox"}, view)
}

func TestGetSystemFeaturesEndpoint(t *testing.T) {
	rec := &hostRecorder{}
	svc := features.NewService(&config.Config{MarketplaceEnabled: true, EnableEmailPasswordLogin: true}, nil, nil, nil, rec, nil)

	var view features.SystemFeatureView
	assert.Equal(t, fiber.StatusOK, doGet(t, newTestApp(svc), "/api/v1/system-features", &view))
	assert.True(t, view.EnableMarketplace)
	assert.True(t, view.EnableEmailPasswordLogin)
	assert.Equal(t, "http://example.com/", rec.host)
}
