package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ManuelReschke/featurehub/internal/pkg/tenantcontext"
)

// TenantContextMiddleware reads the tenant header and stores it in Locals.
// A missing header is allowed; a malformed one is rejected.
func TenantContextMiddleware(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Get(tenantcontext.HeaderTenantID))
	if raw == "" {
		c.Locals(tenantcontext.KeyTenantContext, tenantcontext.TenantContext{})
		return c.Next()
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid tenant id"})
	}

	c.Locals(tenantcontext.KeyTenantContext, tenantcontext.TenantContext{TenantID: id.String()})
	return c.Next()
}
