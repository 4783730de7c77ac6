package middleware

import (
	"workvera-backend/config"
	"workvera-backend/lib/access"
	"workvera-backend/lib/utils/app-error"
	authutils "workvera-backend/lib/utils/auth-utils"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ActorSource reloads the account behind a token subject.
type ActorSource interface {
	GetActor(userID string) (access.Actor, error)
}

// Authentication parses the bearer token when one is sent and stores the resolved actor.
// Requests without an Authorization header continue as anonymous.
func Authentication(source ActorSource) fiber.Handler {
	return jwtware.New(jwtware.Config{
		Filter: func(ctx *fiber.Ctx) bool {
			return ctx.Get(fiber.HeaderAuthorization) == ""
		},
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return abort(ctx, apperror.Wrap(apperror.KindUnauthorized, err, "invalid or expired token"))
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			claims := authutils.GetClaims(ctx)
			if !authutils.IsAccessToken(claims) {
				return abort(ctx, apperror.Unauthorized("access token required"))
			}
			actor, err := source.GetActor(authutils.GetUserID(ctx))
			if err != nil {
				return abort(ctx, err)
			}
			if !actor.IsActive {
				return abort(ctx, apperror.PermissionDenied("user account is disabled"))
			}
			ctx.Locals(actorKey, actor)
			return ctx.Next()
		},
	})
}

// AuthorizationRequired rejects anonymous callers.
func AuthorizationRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !GetActor(ctx).IsAuthenticated() {
			return abort(ctx, apperror.Unauthorized("authentication credentials were not provided"))
		}
		return ctx.Next()
	}
}
