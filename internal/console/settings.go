package console

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/personaops/console/internal/querycache"
	"github.com/personaops/console/pkg/backend"
)

// SystemStatus reports whether backend automation loops are running.
func (con *Console) SystemStatus(c *fiber.Ctx) error {
	status, err := querycache.Through(c.UserContext(), con.cache, querycache.Key(kindStatus), func(ctx context.Context) (*backend.SystemStatus, error) {
		return con.api.SystemStatus(ctx)
	})
	if err != nil {
		return con.backendError(c, err)
	}
	return c.JSON(status)
}

// RateLimits reports today's usage against the global caps.
func (con *Console) RateLimits(c *fiber.Ctx) error {
	limits, err := querycache.Through(c.UserContext(), con.cache, querycache.Key(kindRateLimits), func(ctx context.Context) (*backend.RateLimits, error) {
		return con.api.RateLimits(ctx)
	})
	if err != nil {
		return con.backendError(c, err)
	}
	return c.JSON(limits)
}

// UpdateAutomation flips the global automation switches.
func (con *Console) UpdateAutomation(c *fiber.Ctx) error {
	var body backend.AutomationUpdate
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}

	settings, err := con.api.UpdateAutomation(c.UserContext(), body)
	if err != nil {
		return con.backendError(c, err)
	}

	con.cache.Invalidate(querycache.Key(kindStatus))
	return c.JSON(settings)
}

// UpdateRateLimits changes the global daily caps.
func (con *Console) UpdateRateLimits(c *fiber.Ctx) error {
	var body backend.RateLimitsUpdate
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}

	limits, err := con.api.UpdateRateLimits(c.UserContext(), body)
	if err != nil {
		return con.backendError(c, err)
	}

	con.cache.Invalidate(querycache.Key(kindRateLimits))
	return c.JSON(limits)
}
