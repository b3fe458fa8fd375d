package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ManuelReschke/featurehub/app/repository"
	"github.com/ManuelReschke/featurehub/internal/pkg/billing"
	"github.com/ManuelReschke/featurehub/internal/pkg/cache"
	"github.com/ManuelReschke/featurehub/internal/pkg/config"
	"github.com/ManuelReschke/featurehub/internal/pkg/database"
	"github.com/ManuelReschke/featurehub/internal/pkg/enterprise"
	"github.com/ManuelReschke/featurehub/internal/pkg/env"
	"github.com/ManuelReschke/featurehub/internal/pkg/features"
	"github.com/ManuelReschke/featurehub/internal/pkg/metrics"
	"github.com/ManuelReschke/featurehub/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())
	cache.SetupCache()

	prom := metrics.NewProm("featurehub")
	svc := features.NewService(
		cfg,
		billing.NewClientFromConfig(cfg, prom),
		enterprise.NewClientFromConfig(cfg, prom),
		repository.GetGlobalFactory().GetSystemIntegrationRepository(),
		cache.NewAPIHostPublisher(cache.GetClient()),
		prom,
	)

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/featurehub to project root
		"../../../", // Fallback
	}

	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	app := fiber.New()

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, router.NewApiRouter(svc), router.NewMetricsRouter(prom))

	return app
}
