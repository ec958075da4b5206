// Package server exposes the study planner actions over HTTP.
package server

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/studyplanner/internal/actions"
	"github.com/abhisek/studyplanner/internal/version"
)

// HeaderRequestID carries the request id; an incoming value is reused.
const HeaderRequestID = "X-Request-ID"

type Options struct {
	Service *actions.Service

	// Gatherer backs GET /metrics. Nil leaves the route out.
	Gatherer prometheus.Gatherer

	// AccessLog receives the access log. Defaults to stderr.
	AccessLog io.Writer
}

// New returns a fiber app with all routes registered.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "studyplanner",
		DisableStartupMessage: true,
	})
	SetupRouter(app, NewActionHandler(opts.Service), opts)
	return app
}

func SetupRouter(app *fiber.App, handler *ActionHandler, opts Options) {
	out := opts.AccessLog
	if out == nil {
		out = os.Stderr
	}

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency} ${respHeader:" + HeaderRequestID + "}\n",
		Output: out,
	}))
	app.Use(requestID)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": version.String(),
		})
	})
	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := app.Group("/v1")
	v1.Post("/plans", handler.GenerateDailyStudyPlan)
	v1.Post("/plans/adapt", handler.AdaptStudyPlan)
	v1.Post("/resources/recommend", handler.RecommendResources)
}

func requestID(c *fiber.Ctx) error {
	id := c.Get(HeaderRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(HeaderRequestID, id)
	c.SetUserContext(actions.WithRequestID(c.UserContext(), id))
	return c.Next()
}
