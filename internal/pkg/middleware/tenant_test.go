package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/featurehub/internal/pkg/tenantcontext"
)

func newTenantApp() *fiber.App {
	app := fiber.New()
	app.Use(TenantContextMiddleware)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(tenantcontext.GetTenantID(c))
	})
	return app
}

func TestTenantContextMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "no header", header: "", wantStatus: fiber.StatusOK, wantBody: ""},
		{name: "valid uuid", header: "3F2504E0-4F89-41D3-9A0C-0305E82C3301", wantStatus: fiber.StatusOK, wantBody: "3f2504e0-4f89-41d3-9a0c-0305e82c3301"},
		{name: "invalid", header: "tenant-1", wantStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(tenantcontext.HeaderTenantID, tt.header)
			}
			resp, err := newTenantApp().Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == fiber.StatusOK {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}
