package console

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/personaops/console/internal/querycache"
	"github.com/personaops/console/pkg/backend"
)

// ListAccounts serves the persona's linked platform accounts.
func (con *Console) ListAccounts(c *fiber.Ctx) error {
	id := c.Params("id")

	accounts, err := querycache.Through(c.UserContext(), con.cache, querycache.Key(kindAccounts, id), func(ctx context.Context) ([]backend.PlatformAccount, error) {
		return con.api.PlatformAccounts(ctx, id)
	})
	if err != nil {
		return con.backendError(c, err)
	}
	return c.JSON(accounts)
}

// DisconnectAccount removes one account link.
func (con *Console) DisconnectAccount(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := con.api.DisconnectPlatformAccount(c.UserContext(), id, c.Params("accountId")); err != nil {
		return con.backendError(c, err)
	}

	con.cache.Invalidate(querycache.Key(kindAccounts, id))
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleAccount pauses or resumes engagement and posting independently on
// one platform link.
func (con *Console) ToggleAccount(c *fiber.Ctx) error {
	id := c.Params("id")

	var body ToggleAccountBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err)
	}

	account, err := con.api.TogglePlatformStatus(c.UserContext(), id, c.Params("platform"), backend.PlatformToggle{
		EngagementPaused: body.EngagementPaused,
		PostingPaused:    body.PostingPaused,
	})
	if err != nil {
		return con.backendError(c, err)
	}

	con.cache.Invalidate(querycache.Key(kindAccounts, id))
	return c.JSON(account)
}

// StartTwitterOAuth begins the PIN handshake and returns the URL the user
// must visit.
func (con *Console) StartTwitterOAuth(c *fiber.Ctx) error {
	start, err := con.api.StartTwitterOAuth(c.UserContext(), c.Params("id"))
	if err != nil {
		return con.backendError(c, err)
	}
	return c.JSON(start)
}

// CompleteTwitterOAuth finishes the handshake with the user's PIN.
func (con *Console) CompleteTwitterOAuth(c *fiber.Ctx) error {
	id := c.Params("id")

	var body CompleteOAuthBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err)
	}

	account, err := con.api.CompleteTwitterOAuth(c.UserContext(), id, body.OAuthToken, body.PIN)
	if err != nil {
		return con.backendError(c, err)
	}

	con.cache.Invalidate(querycache.Key(kindAccounts, id))
	return c.JSON(account)
}

// TwitterBrowserLogin has the backend log in through a browser it controls
// and relays the embedded outcome.
func (con *Console) TwitterBrowserLogin(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := con.api.TwitterBrowserLogin(c.UserContext(), id)
	if err != nil {
		return con.backendError(c, err)
	}

	if res.Success {
		con.cache.Invalidate(querycache.Key(kindAccounts, id))
	}
	return c.JSON(res)
}

// ConnectInstagram links an Instagram account with an access token.
func (con *Console) ConnectInstagram(c *fiber.Ctx) error {
	id := c.Params("id")

	var body ConnectInstagramBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err)
	}

	account, err := con.api.ConnectInstagram(c.UserContext(), id, body.AccessToken)
	if err != nil {
		return con.backendError(c, err)
	}

	con.cache.Invalidate(querycache.Key(kindAccounts, id))
	return c.JSON(account)
}

// SetCookies injects a captured session for any supported platform. The
// backend embeds failure in the response body, so the result is passed
// through for the caller to inspect rather than mapped to an HTTP error.
func (con *Console) SetCookies(c *fiber.Ctx) error {
	id := c.Params("id")
	platform := c.Params("platform")

	var body SetCookiesBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err)
	}

	var (
		res *backend.StatusResponse
		err error
	)
	switch platform {
	case backend.PlatformTwitter:
		res, err = con.api.SetTwitterCookies(c.UserContext(), id, body.Cookies)
	case backend.PlatformInstagram:
		res, err = con.api.SetInstagramCookies(c.UserContext(), id, body.Cookies)
	case backend.PlatformFanvue:
		res, err = con.api.SetFanvueCookies(c.UserContext(), id, body.Cookies)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported platform: " + platform})
	}
	if err != nil {
		return con.backendError(c, err)
	}

	if res.Success {
		con.cache.Invalidate(querycache.Key(kindAccounts, id))
	}
	return c.JSON(res)
}

// GuidedSession asks the backend to drive an interactive login for Twitter
// or Instagram and relays the embedded outcome.
func (con *Console) GuidedSession(c *fiber.Ctx) error {
	id := c.Params("id")
	platform := c.Params("platform")

	var call func(context.Context, string) (*backend.SessionResult, error)
	switch platform {
	case backend.PlatformTwitter:
		call = con.api.TwitterGuidedSession
	case backend.PlatformInstagram:
		call = con.api.InstagramGuidedSession
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported platform: " + platform})
	}

	res, err := call(c.UserContext(), id)
	if err != nil {
		return con.backendError(c, err)
	}

	if res.Success {
		con.cache.Invalidate(querycache.Key(kindAccounts, id))
	}
	return c.JSON(res)
}
