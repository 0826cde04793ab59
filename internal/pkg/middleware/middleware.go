package middleware

import (
	"fmt"
	"strings"

	"booking-engine/internal/module/booking/engine"
	"booking-engine/internal/module/booking/repositories"
	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log  *otelzap.Logger
	Repo repositories.Repositories
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	// get token from header
	auth := ctx.Get("Authorization")
	if auth == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	// grab token from "Bearer <token>"
	parts := strings.Fields(auth)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}
	token := parts[1]

	resp, err := m.Repo.ValidateToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !resp.IsValid {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", resp.UserID)
	ctx.Locals("role", strings.ToLower(resp.Role))

	return ctx.Next()
}

// RequireStaff lets only admins and editors through. Must run after ValidateToken.
func (m *Middleware) RequireStaff(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	switch engine.Role(role) {
	case engine.RoleAdmin, engine.RoleEditor:
		return ctx.Next()
	}

	m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error role %q is not staff", role))
	return helpers.RespError(ctx, m.Log, errors.AuthorizationError("staff only"))
}
