package router

import (
	apiv1 "github.com/ManuelReschke/featurehub/internal/api/v1"
	"github.com/ManuelReschke/featurehub/internal/pkg/features"
	"github.com/ManuelReschke/featurehub/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
	features *features.Service
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1", middleware.TenantContextMiddleware)
	apiServer := apiv1.NewAPIServer(h.features)
	apiv1.RegisterHandlers(v1, apiServer)
}

func NewApiRouter(svc *features.Service) *ApiRouter {
	return &ApiRouter{features: svc}
}
