// Package preview proxies content media for the review views: remote images
// come back downscaled to a preview budget, videos as a first-frame
// thumbnail. Results are cached by URI so flipping between queue items does
// not refetch the same asset.
package preview

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/personaops/console/internal/querycache"
	"github.com/personaops/console/pkg/img"
	"github.com/personaops/console/pkg/video"
	"github.com/personaops/console/pkg/web"
)

// previewMPXS is the megapixel budget for inline previews.
const previewMPXS = 2.0

// Controller serves media previews.
type Controller struct {
	cache *querycache.Cache
	log   *logrus.Logger
}

// MountController registers the preview routes.
func MountController(router fiber.Router, cache *querycache.Cache, log *logrus.Logger) {
	ctl := &Controller{cache: cache, log: log}
	router.Post("/image", ctl.Image)
	router.Post("/video-thumbnail", ctl.VideoThumbnail)
}

// Image fetches and downscales one content image.
func (ctl *Controller) Image(c *fiber.Ctx) error {
	var body MediaURLBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := body.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	key := querycache.Key("previewimg", body.MediaURI)
	if cached, ok := ctl.cache.Get(key); ok {
		c.Context().SetContentType("image/jpeg")
		return c.Send(cached.([]byte))
	}

	raw, err := web.FetchMedia(c.UserContext(), body.MediaURI)
	if err != nil {
		ctl.log.WithError(err).WithField("uri", body.MediaURI).Warn("media fetch failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	preview, err := img.Downscale(raw, previewMPXS)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	ctl.cache.Set(key, preview)
	c.Context().SetContentType("image/jpeg")
	return c.Send(preview)
}

// VideoThumbnail fetches a content video and returns its first-second frame.
func (ctl *Controller) VideoThumbnail(c *fiber.Ctx) error {
	var body MediaURLBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := body.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	key := querycache.Key("previewvid", body.MediaURI)
	if cached, ok := ctl.cache.Get(key); ok {
		c.Context().SetContentType("image/png")
		return c.Send(cached.([]byte))
	}

	raw, err := web.FetchMedia(c.UserContext(), body.MediaURI)
	if err != nil {
		ctl.log.WithError(err).WithField("uri", body.MediaURI).Warn("media fetch failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	frame, err := video.Thumbnail(raw)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	ctl.cache.Set(key, frame)
	c.Context().SetContentType("image/png")
	return c.Send(frame)
}
