package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/ManuelReschke/featurehub/internal/pkg/env"
	"github.com/ManuelReschke/featurehub/internal/pkg/metrics"
)

type MetricsRouter struct {
	prom *metrics.Prom
}

func (h MetricsRouter) InstallRouter(app *fiber.App) {
	auth := basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "admin"),
		},
	})

	// fiber runtime metrics
	app.Get("/metrics", auth, monitor.New())
	// collaborator call metrics
	app.Get("/metrics/prometheus", auth, adaptor.HTTPHandler(h.prom.Handler()))
}

func NewMetricsRouter(prom *metrics.Prom) *MetricsRouter {
	return &MetricsRouter{prom: prom}
}
