// FILE: internal/controller/audit_controller.go
package controller

import (
	"feature-flag-be/internal/pkg/apperrors"
	"feature-flag-be/internal/pkg/serverutils"
	"feature-flag-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuditController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type auditController struct {
	auditService service.IAuditService
}

func NewAuditController(auditService service.IAuditService) IAuditController {
	return &auditController{auditService: auditService}
}

func (c *auditController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/audit/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
}

func (c *auditController) List(ctx *fiber.Ctx) error {
	targetIdParam := ctx.Query("targetId")
	if targetIdParam == "" {
		return apperrors.InvalidArgument("targetId query parameter is required")
	}
	targetId, err := uuid.Parse(targetIdParam)
	if err != nil {
		return apperrors.InvalidArgument("targetId must be a valid UUID")
	}

	res, err := c.auditService.ListByTarget(ctx.Context(), targetId, ctx.QueryInt("page", 1), ctx.QueryInt("limit", 10))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get audit history", res))
}
