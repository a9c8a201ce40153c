package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"bookcatalog/internal/service"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate HTTP to service calls; rules live in the service and repository.
func RegisterRoutes(app *fiber.App, db Pinger, svc service.CatalogService) {
	app.Get("/healthz", LivenessProbe())
	app.Get("/health", HealthCheck(db))

	app.Post("/books", AddBook(svc))
	app.Post("/books/bulk", AddBooks(svc))
	app.Get("/books/in-stock", BooksInStock(svc))
	app.Get("/books/limit-count/:which", BookWithLimitCount(svc))
	app.Get("/books/authors", Authors(svc))
	app.Get("/books/no-author", BooksWithNoAuthor(svc))
	app.Post("/books/increment-count", IncrementBooksCount(svc))
	app.Post("/books/favority", AddFavorityGenre(svc))
	app.Delete("/books/all", DeleteAllBooks(svc))
	app.Delete("/books", DeleteBooks(svc))
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// HealthCheck godoc
// @Summary Store connectivity check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}
