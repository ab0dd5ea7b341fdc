// FILE: internal/controller/feature_controller.go
package controller

import (
	"strconv"

	"feature-flag-be/internal/dto"
	"feature-flag-be/internal/pkg/apperrors"
	"feature-flag-be/internal/pkg/serverutils"
	"feature-flag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	GetEvaluated(ctx *fiber.Ctx) error
	GetRaw(ctx *fiber.Ctx) error
	GetDefinitions(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Promote(ctx *fiber.Ctx) error
}

type featureController struct {
	flagService   service.IFeatureFlagService
	tenantService service.ITenantService
}

func NewFeatureController(flagService service.IFeatureFlagService, tenantService service.ITenantService) IFeatureController {
	return &featureController{
		flagService:   flagService,
		tenantService: tenantService,
	}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/features/v1")

	// Evaluated flags are read by untrusted clients; everything else is
	// management surface behind the JWT.
	h.Get("evaluated", c.GetEvaluated)

	h.Get("raw", serverutils.JwtMiddleware, c.GetRaw)
	h.Get("definitions", serverutils.JwtMiddleware, c.GetDefinitions)
	h.Post("", serverutils.JwtMiddleware, c.Upsert)
	h.Delete("", serverutils.JwtMiddleware, c.Delete)
	h.Post("promote", serverutils.JwtMiddleware, c.Promote)
}

func (c *featureController) GetEvaluated(ctx *fiber.Ctx) error {
	tenant := ctx.Query("tenant")
	env := ctx.Query("env")
	if tenant == "" || env == "" {
		return apperrors.InvalidArgument("tenant and env query parameters are required")
	}

	res, err := c.flagService.GetEvaluated(ctx.Context(), tenant, env, ctx.Query("userId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get evaluated flags", res))
}

func (c *featureController) GetRaw(ctx *fiber.Ctx) error {
	tenant := ctx.Query("tenant")
	env := ctx.Query("env")
	if tenant == "" || env == "" {
		return apperrors.InvalidArgument("tenant and env query parameters are required")
	}

	opts := dto.FlagListOptions{
		Page:        ctx.QueryInt("page", 1),
		Limit:       ctx.QueryInt("limit", 10),
		FeatureName: ctx.Query("featureName"),
	}
	if raw := ctx.Query("enabled"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return apperrors.InvalidArgument("enabled must be true or false")
		}
		opts.Enabled = &enabled
	}

	res, err := c.flagService.GetRaw(ctx.Context(), tenant, env, opts)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get raw flags", res))
}

func (c *featureController) GetDefinitions(ctx *fiber.Ctx) error {
	res, err := c.tenantService.ListFeatureDefinitions(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get feature definitions", res))
}

func (c *featureController) Upsert(ctx *fiber.Ctx) error {
	var req dto.UpsertFlagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.InvalidArgument("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.flagService.Upsert(ctx.Context(), serverutils.Actor(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upsert feature flag", res))
}

func (c *featureController) Delete(ctx *fiber.Ctx) error {
	var req dto.DeleteFlagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.InvalidArgument("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.flagService.Delete(ctx.Context(), serverutils.Actor(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete feature flag", res))
}

func (c *featureController) Promote(ctx *fiber.Ctx) error {
	var req dto.PromoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.InvalidArgument("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.flagService.Promote(ctx.Context(), serverutils.Actor(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
