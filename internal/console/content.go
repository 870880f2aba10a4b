package console

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/personaops/console/internal/querycache"
	"github.com/personaops/console/pkg/backend"
)

// filterContent is the review page's search box: case-insensitive substring
// match over caption and hashtags of an already-fetched list.
func filterContent(items []backend.Content, q string) []backend.Content {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}

	matched := make([]backend.Content, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Caption), q) {
			matched = append(matched, it)
			continue
		}
		for _, tag := range it.Hashtags {
			if strings.Contains(strings.ToLower(tag), q) {
				matched = append(matched, it)
				break
			}
		}
	}
	return matched
}

// ListContent serves the content list. persona_id and status are forwarded to
// the backend; q is applied client-side over the fetched list, the way the
// dashboard's search box worked.
func (con *Console) ListContent(c *fiber.Ctx) error {
	filters := &backend.ContentFilters{
		PersonaID: c.Query("persona_id"),
		Status:    backend.ContentStatus(c.Query("status")),
	}

	key := querycache.Key(kindContent, filters.PersonaID, string(filters.Status))
	items, err := querycache.Through(c.UserContext(), con.cache, key, func(ctx context.Context) ([]backend.Content, error) {
		return con.api.ListContent(ctx, filters)
	})
	if err != nil {
		return con.backendError(c, err)
	}

	return c.JSON(filterContent(items, c.Query("q")))
}

// ContentQueue serves one persona's pending-review queue.
func (con *Console) ContentQueue(c *fiber.Ctx) error {
	personaID := c.Params("personaId")

	items, err := querycache.Through(c.UserContext(), con.cache, querycache.Key(kindQueue, personaID), func(ctx context.Context) ([]backend.Content, error) {
		return con.api.ContentQueue(ctx, personaID)
	})
	if err != nil {
		return con.backendError(c, err)
	}
	return c.JSON(items)
}

// UpdateContent forwards a partial edit of caption, hashtags or schedule.
func (con *Console) UpdateContent(c *fiber.Ctx) error {
	id := c.Params("id")

	var body backend.ContentUpdate
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}

	item, err := con.api.UpdateContent(c.UserContext(), id, body)
	if err != nil {
		return con.backendError(c, err)
	}

	con.cache.InvalidateKind(kindContent)
	con.cache.InvalidateKind(kindQueue)
	return c.JSON(item)
}

// DeleteContent removes an item outright.
func (con *Console) DeleteContent(c *fiber.Ctx) error {
	if err := con.api.DeleteContent(c.UserContext(), c.Params("id")); err != nil {
		return con.backendError(c, err)
	}

	con.cache.InvalidateKind(kindContent)
	con.cache.InvalidateKind(kindQueue)
	con.cache.InvalidateKind(kindStats)
	return c.SendStatus(fiber.StatusNoContent)
}

// ApproveContent moves a reviewed item into the posting pipeline.
func (con *Console) ApproveContent(c *fiber.Ctx) error {
	item, err := con.api.ApproveContent(c.UserContext(), c.Params("id"))
	if err != nil {
		return con.backendError(c, err)
	}

	con.cache.InvalidateKind(kindContent)
	con.cache.InvalidateKind(kindQueue)
	return c.JSON(item)
}

// RejectContent discards a reviewed item.
func (con *Console) RejectContent(c *fiber.Ctx) error {
	if err := con.api.RejectContent(c.UserContext(), c.Params("id")); err != nil {
		return con.backendError(c, err)
	}

	con.cache.InvalidateKind(kindContent)
	con.cache.InvalidateKind(kindQueue)
	return c.SendStatus(fiber.StatusNoContent)
}

// PostContentNow publishes immediately. Publishing finishes out of band, so
// the content keys are revalidated on the fixed-delay schedule rather than
// once.
func (con *Console) PostContentNow(c *fiber.Ctx) error {
	id := c.Params("id")

	var body PostNowBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, err)
		}
		if err := body.Validate(); err != nil {
			return badRequest(c, err)
		}
	}

	item, err := con.api.PostContentNow(c.UserContext(), id, body.Platforms)
	if err != nil {
		return con.backendError(c, err)
	}

	con.reval.AfterKind(kindContent, kindQueue, kindStats, kindActivity)
	return c.Status(fiber.StatusAccepted).JSON(item)
}

// RetryContent moves a failed item back to scheduled; same revalidation
// story as PostContentNow.
func (con *Console) RetryContent(c *fiber.Ctx) error {
	item, err := con.api.RetryContent(c.UserContext(), c.Params("id"))
	if err != nil {
		return con.backendError(c, err)
	}

	con.reval.AfterKind(kindContent, kindQueue, kindStats)
	return c.Status(fiber.StatusAccepted).JSON(item)
}
