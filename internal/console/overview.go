package console

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/personaops/console/internal/querycache"
	"github.com/personaops/console/pkg/backend"
)

const activityLogLimit = 50

// Overview serves the landing view: cross-persona stats, the recent activity
// log and today's rate-limit usage, each read through the cache.
func (con *Console) Overview(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := querycache.Through(ctx, con.cache, querycache.Key(kindStats), func(ctx context.Context) (*backend.DashboardStats, error) {
		return con.api.DashboardStats(ctx)
	})
	if err != nil {
		return con.backendError(c, err)
	}

	activity, err := querycache.Through(ctx, con.cache, querycache.Key(kindActivity), func(ctx context.Context) ([]backend.ActivityLogEntry, error) {
		return con.api.ActivityLog(ctx, activityLogLimit)
	})
	if err != nil {
		return con.backendError(c, err)
	}

	limits, err := querycache.Through(ctx, con.cache, querycache.Key(kindRateLimits), func(ctx context.Context) (*backend.RateLimits, error) {
		return con.api.RateLimits(ctx)
	})
	if err != nil {
		return con.backendError(c, err)
	}

	return c.JSON(fiber.Map{
		"stats":       stats,
		"activity":    activity,
		"rate_limits": limits,
	})
}
