// FILE: internal/controller/tenant_controller.go
package controller

import (
	"feature-flag-be/internal/pkg/serverutils"
	"feature-flag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITenantController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type tenantController struct {
	tenantService service.ITenantService
}

func NewTenantController(tenantService service.ITenantService) ITenantController {
	return &tenantController{tenantService: tenantService}
}

func (c *tenantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tenants/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
}

func (c *tenantController) List(ctx *fiber.Ctx) error {
	res, err := c.tenantService.ListTenants(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get tenants", res))
}
