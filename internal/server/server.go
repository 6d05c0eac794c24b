package server

import (
	"net/url"
	"strings"

	"mindful-campus-be/internal/bootstrap"
	"mindful-campus-be/internal/config"
	"mindful-campus-be/internal/constant"
	"mindful-campus-be/internal/pkg/serverutils"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "mindful-campus-be",
		BodyLimit:    constant.MaxBodyBytes,
		ErrorHandler: serverutils.ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(pathGuard)

	// Routes
	registerRoutes(app, container)

	// Static fallthrough
	app.Static("/", cfg.App.PublicDir, fiber.Static{Index: "index.html"})
	app.Use(func(ctx *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("SERVER", "Server is running", map[string]interface{}{
		"url": "http://localhost:" + s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.HealthController.RegisterRoutes(app)

	api := app.Group("/api")

	c.WellnessController.RegisterRoutes(api)
	c.BookingController.RegisterRoutes(api)
	c.AssessmentController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)
}

// pathGuard rejects requests whose raw path climbs out of the served root.
// The URI accessors are already normalized, so only the request line is checked.
func pathGuard(ctx *fiber.Ctx) error {
	if escapesRoot(ctx.OriginalURL()) || escapesRoot(ctx.Path()) {
		return fiber.ErrForbidden
	}
	return ctx.Next()
}

func escapesRoot(rawPath string) bool {
	if i := strings.IndexByte(rawPath, '?'); i >= 0 {
		rawPath = rawPath[:i]
	}
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return true
	}
	decoded = strings.ReplaceAll(decoded, "\\", "/")
	for _, segment := range strings.Split(decoded, "/") {
		if segment == ".." {
			return true
		}
	}
	return false
}
