package routes

import (
	"movie-review-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, adminHandler *handlers.AdminHandler) {
	api := app.Group("/api")

	movies := api.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Post("/", movieHandler.CreateMovie)
		movies.Get("/:id/reviews", movieHandler.GetMovieReviews)
		movies.Post("/:id/review", movieHandler.CreateReview)
	}

	// Operational report, HTML not JSON
	app.Get("/admin", adminHandler.RenderReport)
}
