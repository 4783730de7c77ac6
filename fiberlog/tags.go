package fiberlog

import (
	"strings"
	"time"
	"workvera-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid     = "pid"
	TagLatency = "latency"
	TagStatus  = "status"
	TagMethod  = "method"
	TagPath    = "path"
	TagURL     = "url"
	TagIP      = "ip"
	TagBody    = "body"
	TagResBody = "resBody"
	TagUserID  = "user_id"
	RequestID  = "request_id"
)

// data is collected once per request
type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag extracts one log field from the finished request.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func truncate(body []byte, limit int) string {
	if limit > 0 && len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
				return ""
			}
			return truncate(c.Body(), cfg.MaxBodySize)
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if !strings.HasPrefix(c.GetRespHeader(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
				return ""
			}
			return truncate(c.Response().Body(), cfg.MaxBodySize)
		},
		TagUserID: func(c *fiber.Ctx, _ *data) interface{} {
			return middleware.GetUserID(c)
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
