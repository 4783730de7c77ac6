package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotification struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

var notifyClient = &http.Client{Timeout: 5 * time.Second}

// ErrNotify posts a JSON alert to addr for every 5xx response.
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var data struct {
			Message string `json:"message"`
		}
		body := c.Response().Body()
		if unmErr := json.Unmarshal(body, &data); unmErr != nil {
			log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
		}
		msg := data.Message
		if msg == "" {
			msg = string(body)
		}
		if msg == "" && err != nil {
			msg = err.Error()
		}

		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload, _ := json.Marshal(errNotification{
			Code:      statusCode,
			Method:    c.Method(),
			Path:      path,
			RequestID: c.GetRespHeader(fiber.HeaderXRequestID),
			Error:     msg,
		})

		go func() {
			resp, reqErr := notifyClient.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("error sending error notification")
				return
			}
			resp.Body.Close()
		}()
		return err
	}
}
