package handler

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
)

// Swagger serves the Swagger UI and doc.json with the host and scheme taken
// from the request. fallbackHost is used when the request has no Host header.
//
// swag renders doc.json from the shared spec, so the per-request host and scheme
// are written and rendered under one lock.
func Swagger(spec *swag.Spec, fallbackHost string) fiber.Handler {
	var mu sync.Mutex
	serve := swagger.HandlerDefault

	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get(fiber.HeaderXForwardedProto); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}
		host := c.Get(fiber.HeaderHost)
		if host == "" {
			host = fallbackHost
		}

		mu.Lock()
		defer mu.Unlock()
		spec.Host = host
		spec.Schemes = []string{scheme}
		return serve(c)
	}
}
