package middleware

import (
	"workvera-backend/lib/rbac"
	"workvera-backend/lib/utils/app-error"

	"github.com/gofiber/fiber/v2"
)

// RbacMiddleware is the coarse role check in front of the handlers. Routes without a rule are public.
func RbacMiddleware(rules rbac.Provider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		handler, found := rules.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}

		actor := GetActor(ctx)
		if !actor.IsAuthenticated() {
			return abort(ctx, apperror.Unauthorized("authentication credentials were not provided"))
		}
		if !handler(actor, ctx.Path()) {
			return abort(ctx, apperror.PermissionDenied("you do not have permission to perform this action"))
		}

		return ctx.Next()
	}
}
