package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/featurehub/internal/pkg/config"
	"github.com/ManuelReschke/featurehub/internal/pkg/features"
	"github.com/ManuelReschke/featurehub/internal/pkg/metrics"
)

func TestInstallRouter(t *testing.T) {
	prom := metrics.NewProm("featurehub_router_test")
	svc := features.NewService(&config.Config{}, nil, nil, nil, nil, prom)

	app := fiber.New()
	InstallRouter(app, NewApiRouter(svc), NewMetricsRouter(prom))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/system-features", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics/prometheus", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/metrics/prometheus", nil)
	req.SetBasicAuth("admin", "admin")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
