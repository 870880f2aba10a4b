package console

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/personaops/console/internal/querycache"
	"github.com/personaops/console/pkg/backend"
)

// ListPersonas serves the persona roster.
func (con *Console) ListPersonas(c *fiber.Ctx) error {
	personas, err := querycache.Through(c.UserContext(), con.cache, querycache.Key(kindPersonas), func(ctx context.Context) ([]backend.Persona, error) {
		return con.api.Personas(ctx)
	})
	if err != nil {
		return con.backendError(c, err)
	}
	return c.JSON(personas)
}

// PersonaDetail aggregates what the persona page showed: the persona itself,
// its analytics and its linked accounts.
func (con *Console) PersonaDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	ctx := c.UserContext()

	persona, err := querycache.Through(ctx, con.cache, querycache.Key(kindPersona, id), func(ctx context.Context) (*backend.Persona, error) {
		return con.api.Persona(ctx, id)
	})
	if err != nil {
		return con.backendError(c, err)
	}

	stats, err := querycache.Through(ctx, con.cache, querycache.Key(kindPersonaStats, id), func(ctx context.Context) (*backend.PersonaStats, error) {
		return con.api.PersonaStats(ctx, id)
	})
	if err != nil {
		return con.backendError(c, err)
	}

	accounts, err := querycache.Through(ctx, con.cache, querycache.Key(kindAccounts, id), func(ctx context.Context) ([]backend.PlatformAccount, error) {
		return con.api.PlatformAccounts(ctx, id)
	})
	if err != nil {
		return con.backendError(c, err)
	}

	return c.JSON(fiber.Map{
		"persona":  persona,
		"stats":    stats,
		"accounts": accounts,
	})
}

// CreatePersona validates the form body and creates the persona.
func (con *Console) CreatePersona(c *fiber.Ctx) error {
	var body CreatePersonaBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err)
	}

	persona, err := con.api.CreatePersona(c.UserContext(), body.toCreate())
	if err != nil {
		return con.backendError(c, err)
	}

	con.cache.InvalidateKind(kindPersonas)
	con.cache.InvalidateKind(kindStats)
	return c.Status(fiber.StatusCreated).JSON(persona)
}

// UpdatePersona forwards a partial update. Absent fields stay absent on the
// wire, so the backend merges only what the user edited.
func (con *Console) UpdatePersona(c *fiber.Ctx) error {
	id := c.Params("id")

	var body backend.PersonaUpdate
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}

	persona, err := con.api.UpdatePersona(c.UserContext(), id, body)
	if err != nil {
		return con.backendError(c, err)
	}

	con.cache.Invalidate(querycache.Key(kindPersona, id))
	con.cache.InvalidateKind(kindPersonas)
	return c.JSON(persona)
}

// DeletePersona removes the persona and everything cached under it.
func (con *Console) DeletePersona(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := con.api.DeletePersona(c.UserContext(), id); err != nil {
		return con.backendError(c, err)
	}

	con.cache.Invalidate(
		querycache.Key(kindPersona, id),
		querycache.Key(kindPersonaStats, id),
		querycache.Key(kindAccounts, id),
	)
	con.cache.InvalidateKind(kindPersonas)
	con.cache.InvalidateKind(kindStats)
	return c.SendStatus(fiber.StatusNoContent)
}

// PausePersona stops the persona's automation.
func (con *Console) PausePersona(c *fiber.Ctx) error {
	return con.setPersonaActive(c, con.api.PausePersona)
}

// ResumePersona restarts the persona's automation.
func (con *Console) ResumePersona(c *fiber.Ctx) error {
	return con.setPersonaActive(c, con.api.ResumePersona)
}

func (con *Console) setPersonaActive(c *fiber.Ctx, call func(context.Context, string) (*backend.Persona, error)) error {
	id := c.Params("id")

	persona, err := call(c.UserContext(), id)
	if err != nil {
		return con.backendError(c, err)
	}

	con.cache.Invalidate(querycache.Key(kindPersona, id))
	con.cache.InvalidateKind(kindPersonas)
	return c.JSON(persona)
}

// GenerateContent asks the backend to draft a post for the persona and drops
// the queue keys so the new item shows up on the next read.
func (con *Console) GenerateContent(c *fiber.Ctx) error {
	id := c.Params("id")

	var body GenerateBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err)
	}

	item, err := con.api.GenerateContent(c.UserContext(), id, backend.GenerateOptions{
		Topic:         body.Topic,
		ContentType:   backend.ContentType(body.ContentType),
		GenerateVideo: body.GenerateVideo,
		Platform:      body.Platform,
	})
	if err != nil {
		return con.backendError(c, err)
	}

	con.reval.AfterKind(kindContent, kindQueue)
	return c.Status(fiber.StatusCreated).JSON(item)
}

// TriggerEngagement kicks off an engagement run. The backend only
// acknowledges with a task id, so the activity log and persona counters are
// revalidated on the fixed-delay schedule.
func (con *Console) TriggerEngagement(c *fiber.Ctx) error {
	id := c.Params("id")

	task, err := con.api.TriggerEngagement(c.UserContext(), id)
	if err != nil {
		return con.backendError(c, err)
	}

	con.reval.After(
		querycache.Key(kindActivity),
		querycache.Key(kindPersona, id),
		querycache.Key(kindPersonaStats, id),
		querycache.Key(kindRateLimits),
	)
	return c.Status(fiber.StatusAccepted).JSON(task)
}
