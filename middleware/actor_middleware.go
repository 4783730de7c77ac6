package middleware

import (
	"workvera-backend/lib/access"
	apimodels "workvera-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const actorKey = "actor"

// GetActor returns the caller resolved by Authentication, anonymous when there is none.
func GetActor(ctx *fiber.Ctx) access.Actor {
	if actor, ok := ctx.Locals(actorKey).(access.Actor); ok {
		return actor
	}
	return access.Anonymous()
}

func GetUserID(ctx *fiber.Ctx) string {
	return GetActor(ctx).ID
}

func abort(ctx *fiber.Ctx, err error) error {
	status, resp := apimodels.NewAppError(err, "authentication failed")
	if status >= fiber.StatusInternalServerError {
		log.WithError(err).Error("failed to resolve request actor")
	}
	return ctx.Status(status).JSON(resp)
}
