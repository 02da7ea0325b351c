package handlers

import (
	"strconv"

	"movie-review-backend/internal/services"
	"movie-review-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List all movies
// @Description Get every movie in ascending id order (creation order)
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie "List of movies"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	movies, err := h.service.GetAllMovies(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movies")
	}

	return c.Status(fiber.StatusOK).JSON(movies)
}

// CreateMovie godoc
// @Summary Add a movie
// @Description Create a movie; its poster is looked up from OMDB before the insert
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body CreateMovieRequest true "Movie to create"
// @Success 200 {object} models.Movie "Created movie"
// @Failure 400 {object} utils.ErrorBody "Missing title"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	var req CreateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	// Validation runs before the poster lookup; a rejected request never
	// touches OMDB or the database.
	if req.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}

	movie, err := h.service.CreateMovie(ctx, req.Title, req.Year)
	if err != nil {
		h.logger.WithError(err).WithField("title", req.Title).Error("Failed to add movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add movie")
	}

	return c.Status(fiber.StatusOK).JSON(movie)
}

// GetMovieReviews godoc
// @Summary List reviews for a movie
// @Description Get a movie's reviews in ascending id order; empty list when none exist
// @Tags reviews
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {array} models.Review "List of reviews"
// @Failure 400 {object} utils.ErrorBody "Invalid movie ID"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /movies/{id}/reviews [get]
func (h *MovieHandler) GetMovieReviews(c *fiber.Ctx) error {
	ctx := c.Context()

	movieID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id")
	}

	reviews, err := h.service.GetMovieReviews(ctx, uint(movieID))
	if err != nil {
		h.logger.WithError(err).WithField("movie_id", movieID).Error("Failed to fetch reviews")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch reviews")
	}

	return c.Status(fiber.StatusOK).JSON(reviews)
}

// CreateReview godoc
// @Summary Add a review to a movie
// @Description Create a star-rated review; fails when the movie does not exist
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param review body CreateReviewRequest true "Review to create"
// @Success 200 {object} models.Review "Created review"
// @Failure 400 {object} utils.ErrorBody "Invalid movie ID or missing fields"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /movies/{id}/review [post]
func (h *MovieHandler) CreateReview(c *fiber.Ctx) error {
	ctx := c.Context()

	movieID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id")
	}

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.ReviewText == "" || req.Rating == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "review_text and rating required")
	}

	review, err := h.service.CreateReview(ctx, uint(movieID), req.ReviewText, req.Rating)
	if err != nil {
		h.logger.WithError(err).WithField("movie_id", movieID).Error("Failed to add review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add review")
	}

	return c.Status(fiber.StatusOK).JSON(review)
}
