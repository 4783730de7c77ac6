package middleware

import (
	"fmt"
	"strconv"
	"strings"
	apimodels "workvera-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

var uploadPaths = []string{
	"/profile/me/resume",
	"/profile/me/video",
}

// WithBodyLimit checks the declared Content-Length; profile uploads get uploadLimit instead of limit.
func WithBodyLimit(limit, uploadLimit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		maxSize := limit
		for _, path := range uploadPaths {
			if strings.HasSuffix(c.Path(), path) {
				maxSize = uploadLimit
				break
			}
		}
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength != "" && contentLength != "0" {
			size, err := strconv.ParseInt(contentLength, 10, 64)
			if err == nil && size > maxSize {
				return c.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewCodedError("VALIDATION_ERROR",
					fmt.Sprintf("request body too large, maximum allowed: %d bytes", maxSize)))
			}
		}

		return c.Next()
	}
}
