package apiv1

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/featurehub/internal/pkg/features"
	"github.com/ManuelReschke/featurehub/internal/pkg/tenantcontext"
)

// APIServer serves the feature endpoints
type APIServer struct {
	features *features.Service
}

// NewAPIServer creates a new API server instance
func NewAPIServer(svc *features.Service) *APIServer {
	return &APIServer{features: svc}
}

// RegisterHandlers mounts the v1 routes on the given router
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)
	router.Get("/features", s.GetFeatures)
	router.Get("/features/knowledge-rate-limit", s.GetKnowledgeRateLimit)
	router.Get("/system-features", s.GetSystemFeatures)
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetFeatures returns the feature view of the tenant in the X-Tenant-ID header.
func (s *APIServer) GetFeatures(c *fiber.Ctx) error {
	view, err := s.features.GetFeatures(c.UserContext(), tenantcontext.GetTenantID(c))
	if err != nil {
		return upstreamError(c, "Could not load features", err)
	}
	return c.JSON(view)
}

// GetKnowledgeRateLimit returns the knowledge base rate limit of the current tenant.
func (s *APIServer) GetKnowledgeRateLimit(c *fiber.Ctx) error {
	view, err := s.features.GetKnowledgeRateLimit(c.UserContext(), tenantcontext.GetTenantID(c))
	if err != nil {
		return upstreamError(c, "Could not load knowledge rate limit", err)
	}
	return c.JSON(view)
}

// GetSystemFeatures returns deployment-wide login, SSO and license settings.
func (s *APIServer) GetSystemFeatures(c *fiber.Ctx) error {
	view, err := s.features.GetSystemFeatures(c.UserContext(), requestHostURL(c))
	if err != nil {
		return upstreamError(c, "Could not load system features", err)
	}
	return c.JSON(view)
}

// requestHostURL mirrors the scheme://host/ form the login flow expects.
func requestHostURL(c *fiber.Ctx) string {
	return strings.TrimRight(c.BaseURL(), "/") + "/"
}

func upstreamError(c *fiber.Ctx, message string, err error) error {
	fiberlog.Errorf("[API] %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
		Error:   "bad_gateway",
		Message: message,
	})
}
