// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mia-platform/loglane/internal/info"
	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/logger"
)

const (
	loggerPrefix = "server"

	statusPathPrefix = "/-/"
	recordsPath      = "/records"
)

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// Server exposes the records endpoint of a logger over HTTP.
type Server struct {
	config

	app *fiber.App
	log *logger.Logger
}

// recordRequest is the body accepted by the records endpoint.
type recordRequest struct {
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// NewServer returns a server whose records are written by log. Requests are logged by a
// child of log, and gatherer is exposed on the metrics route.
func NewServer(log *logger.Logger, gatherer prometheus.Gatherer) (*Server, error) {
	cfg, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.DisableStartupMessage,
	})
	app.Use(logger.RequestMiddlewareLogger(log.CreateChild(logger.WithPrefix(loggerPrefix)), []string{statusPathPrefix}))

	statusRoutes(app, info.AppName, info.Version)
	app.Get(statusPathPrefix+"metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	app.Post(recordsPath, recordsHandler(log))

	return &Server{
		config: *cfg,
		app:    app,
		log:    log,
	}, nil
}

func statusRoutes(app *fiber.App, name, version string) {
	status := func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":  "OK",
			"name":    name,
			"version": version,
		})
	}

	app.Get(statusPathPrefix+"healthz", status)
	app.Get(statusPathPrefix+"ready", status)
}

func recordsHandler(log *logger.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var record recordRequest
		if err := ctx.BodyParser(&record); err != nil {
			return badRequest(ctx, "invalid record body")
		}

		level, err := logdata.ParseLevel(record.Level)
		if err != nil {
			return badRequest(ctx, err.Error())
		}

		log.Log(level, record.Message, logger.Fields(record.Fields))
		return ctx.SendStatus(http.StatusNoContent)
	}
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
		"statusCode": http.StatusBadRequest,
		"error":      http.StatusText(http.StatusBadRequest),
		"message":    message,
	})
}

// Address returns the host and port the server listens on.
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.HTTPHost, s.HTTPPort)
}

func (s *Server) Start() error {
	if err := s.app.Listen(s.Address()); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

func (s *Server) Stop() error {
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}

// StartAsync starts listening in the background. Listen errors are logged on the
// logger stored in ctx.
func (s *Server) StartAsync(ctx context.Context) {
	log := logger.FromContext(ctx)
	go func() {
		if err := s.Start(); err != nil {
			log.Error(err.Error())
		}
	}()
}
