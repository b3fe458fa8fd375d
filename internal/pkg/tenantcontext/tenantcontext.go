package tenantcontext

import "github.com/gofiber/fiber/v2"

// Locals key and request header used to carry the current tenant
const (
	KeyTenantContext = "TENANT_CONTEXT"
	HeaderTenantID   = "X-Tenant-ID"
)

// TenantContext represents the tenant a request acts on
type TenantContext struct {
	TenantID string `json:"tenant_id"`
}

// GetTenantContext retrieves the tenant context from fiber context
// Returns an empty context if none is set
func GetTenantContext(c *fiber.Ctx) TenantContext {
	if ctx, ok := c.Locals(KeyTenantContext).(TenantContext); ok {
		return ctx
	}
	return TenantContext{}
}

// GetTenantID returns the current tenant ID, or empty string for tenantless requests
func GetTenantID(c *fiber.Ctx) string {
	return GetTenantContext(c).TenantID
}
