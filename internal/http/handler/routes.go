package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kavitha8494/ca/internal/config"
	"github.com/Kavitha8494/ca/internal/http/middleware"
	"github.com/Kavitha8494/ca/internal/service"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Contacts service.ContactService
	Careers  service.CareerService
	Queries  service.QueryService
	News     service.NewsService
	Posts    service.PostService
	Auth     service.AuthService
	AuthCfg  config.AuthConfig
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, deps Deps) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks DB connectivity only
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Browser-side form rules and the script interpreting them
	app.Static("/static", "./web/static")

	// Public API
	app.Post("/api/contact", SubmitContact(deps.Contacts))
	app.Post("/api/careers", SubmitCareer(deps.Careers))
	app.Post("/api/query", SubmitQuery(deps.Queries))
	app.Get("/api/forms/rules", FormRules())

	// Public news listing mirrors the admin one without authentication
	app.Get("/api/news", func(c *fiber.Ctx) error {
		limit, offset, search, err := pageParams(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
		}
		res, err := deps.News.List(c.UserContext(), c.Query("category"), limit, offset, search)
		if err != nil {
			if errs, ok := validationErrorsFrom(err); ok {
				return writeValidationError(c, errs)
			}
			logInternal(c, err)
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	})

	// Back office
	adminHandler := NewAdminHandler(deps.Auth, deps.Contacts, deps.Careers, deps.Queries, deps.News, deps.Posts, deps.AuthCfg)

	app.Post("/admin/login", adminHandler.Login)
	app.Post("/admin/logout", adminHandler.Logout)

	admin := app.Group("/admin", middleware.RequireAdmin(deps.Auth, deps.AuthCfg.CookieName))

	admin.Get("/contacts", adminHandler.ListContacts)
	admin.Get("/contacts/:id", adminHandler.GetContact)
	admin.Post("/contacts/:id/review", adminHandler.ReviewContact)

	admin.Get("/careers", adminHandler.ListCareers)
	admin.Get("/careers/:id", adminHandler.GetCareer)
	admin.Get("/careers/:id/resume", adminHandler.DownloadResume)

	admin.Get("/queries", adminHandler.ListQueries)
	admin.Get("/queries/:id", adminHandler.GetQuery)

	admin.Get("/news", adminHandler.ListNews)
	admin.Post("/news", adminHandler.CreateNews)
	admin.Put("/news/:id", adminHandler.UpdateNews)
	admin.Delete("/news/:id", adminHandler.DeleteNews)

	admin.Get("/posts", adminHandler.ListPosts)
	admin.Post("/posts", adminHandler.CreatePost)
	admin.Put("/posts/:id", adminHandler.UpdatePost)
	admin.Delete("/posts/:id", adminHandler.DeletePost)
}
