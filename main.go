package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/personaops/console/internal/config"
	"github.com/personaops/console/internal/console"
	"github.com/personaops/console/internal/preview"
	"github.com/personaops/console/internal/querycache"
	"github.com/personaops/console/internal/revalidate"
	"github.com/personaops/console/pkg/backend"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	opts := []backend.Option{backend.WithTimeout(cfg.RequestTimeout)}
	if cfg.BackendToken != "" {
		opts = append(opts, backend.WithAuthToken(cfg.BackendToken))
	}
	api := backend.New(cfg.BackendURL, opts...)

	cache := querycache.New(cfg.CacheTTL)
	defer cache.Close()

	reval := revalidate.New(cache, log)
	if err := reval.Periodic(cfg.RefreshSchedule, console.RefreshKinds...); err != nil {
		log.WithError(err).Fatal("invalid refresh schedule")
	}
	reval.Start()
	defer reval.Stop()

	app := fiber.New()

	console.MountController(app.Group("/console"), console.New(api, cache, reval, log))
	preview.MountController(app.Group("/preview"), cache, log)

	log.WithFields(logrus.Fields{
		"addr":    cfg.ListenAddr,
		"backend": cfg.BackendURL,
	}).Info("console listening")

	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
