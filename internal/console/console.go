// Package console is the HTTP surface of the persona ops console. Every
// handler is a thin aggregation over the backend client: reads go through
// the query cache, writes invalidate it, and asynchronous actions schedule
// delayed revalidation.
package console

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/personaops/console/internal/querycache"
	"github.com/personaops/console/internal/revalidate"
	"github.com/personaops/console/pkg/backend"
)

// Cache key kinds. Keys are built with querycache.Key.
const (
	kindPersonas     = "personas"
	kindPersona      = "persona"
	kindPersonaStats = "personastats"
	kindAccounts     = "accounts"
	kindContent      = "content"
	kindQueue        = "queue"
	kindStats        = "stats"
	kindActivity     = "activity"
	kindRateLimits   = "ratelimits"
	kindStatus       = "status"
)

// RefreshKinds are the read-only aggregates the periodic refresh drops; they
// change server-side without any console write.
var RefreshKinds = []string{kindStats, kindActivity, kindRateLimits, kindStatus}

// Console wires the backend client, cache and revalidation scheduler.
type Console struct {
	api   *backend.Client
	cache *querycache.Cache
	reval *revalidate.Scheduler
	log   *logrus.Logger
}

// New builds a Console.
func New(api *backend.Client, cache *querycache.Cache, reval *revalidate.Scheduler, log *logrus.Logger) *Console {
	return &Console{api: api, cache: cache, reval: reval, log: log}
}

// MountController registers the console routes.
func MountController(router fiber.Router, con *Console) {
	router.Get("/overview", con.Overview)

	router.Get("/personas", con.ListPersonas)
	router.Post("/personas", con.CreatePersona)
	router.Get("/personas/:id", con.PersonaDetail)
	router.Patch("/personas/:id", con.UpdatePersona)
	router.Delete("/personas/:id", con.DeletePersona)
	router.Post("/personas/:id/pause", con.PausePersona)
	router.Post("/personas/:id/resume", con.ResumePersona)
	router.Post("/personas/:id/generate", con.GenerateContent)
	router.Post("/personas/:id/engagement", con.TriggerEngagement)

	router.Get("/personas/:id/accounts", con.ListAccounts)
	router.Delete("/personas/:id/accounts/:accountId", con.DisconnectAccount)
	router.Patch("/personas/:id/accounts/:platform/toggle", con.ToggleAccount)
	router.Post("/personas/:id/accounts/twitter/start-oauth", con.StartTwitterOAuth)
	router.Post("/personas/:id/accounts/twitter/complete-oauth", con.CompleteTwitterOAuth)
	router.Post("/personas/:id/accounts/twitter/browser-login", con.TwitterBrowserLogin)
	router.Post("/personas/:id/accounts/instagram/connect", con.ConnectInstagram)
	router.Post("/personas/:id/accounts/:platform/set-cookies", con.SetCookies)
	router.Post("/personas/:id/accounts/:platform/guided-session", con.GuidedSession)

	router.Get("/content", con.ListContent)
	router.Get("/content/queue/:personaId", con.ContentQueue)
	router.Patch("/content/:id", con.UpdateContent)
	router.Delete("/content/:id", con.DeleteContent)
	router.Post("/content/:id/approve", con.ApproveContent)
	router.Post("/content/:id/reject", con.RejectContent)
	router.Post("/content/:id/post-now", con.PostContentNow)
	router.Post("/content/:id/retry", con.RetryContent)

	router.Get("/settings/status", con.SystemStatus)
	router.Get("/settings/rate-limits", con.RateLimits)
	router.Patch("/settings/automation", con.UpdateAutomation)
	router.Patch("/settings/rate-limits", con.UpdateRateLimits)
}

// backendError maps a failed backend call onto the console response. Backend
// statuses pass through untouched; transport failures become 502.
func (con *Console) backendError(c *fiber.Ctx, err error) error {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Detail
		if msg == "" {
			msg = apiErr.Error()
		}
		return c.Status(apiErr.StatusCode).JSON(fiber.Map{"error": msg})
	}

	con.log.WithError(err).Error("backend call failed")
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
