package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"movie-review-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovieRepo struct {
	movies []models.Movie
	err    error
}

func (r *fakeMovieRepo) Create(_ context.Context, movie *models.Movie) error {
	movie.ID = uint(len(r.movies) + 1)
	r.movies = append(r.movies, *movie)
	return nil
}

func (r *fakeMovieRepo) FindAll(_ context.Context) ([]models.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.movies, nil
}

type fakeReviewRepo struct {
	reviews map[uint][]models.Review
	err     error
}

func (r *fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	if r.reviews == nil {
		r.reviews = make(map[uint][]models.Review)
	}
	review.ID = uint(len(r.reviews[review.MovieID]) + 1)
	r.reviews[review.MovieID] = append(r.reviews[review.MovieID], *review)
	return nil
}

func (r *fakeReviewRepo) FindByMovieID(_ context.Context, movieID uint) ([]models.Review, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.reviews[movieID], nil
}

func newAdminApp(movieRepo *fakeMovieRepo, reviewRepo *fakeReviewRepo) *fiber.App {
	app := fiber.New()
	app.Get("/admin", NewAdminHandler(movieRepo, reviewRepo, testHandlerLogger()).RenderReport)
	return app
}

func fetchAdminPage(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestAdminHandler_RenderReport(t *testing.T) {
	t.Run("renders placeholders for a movie with no reviews and no poster", func(t *testing.T) {
		year := 2010
		movieRepo := &fakeMovieRepo{movies: []models.Movie{{ID: 1, Title: "Inception", Year: &year}}}
		app := newAdminApp(movieRepo, &fakeReviewRepo{})

		status, body := fetchAdminPage(t, app)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, body, "Inception (2010)")
		assert.Contains(t, body, "No reviews yet.")
		assert.Contains(t, body, "No Image")
	})

	t.Run("renders the poster and star-annotated reviews", func(t *testing.T) {
		imageURL := "http://img/inception.jpg"
		movieRepo := &fakeMovieRepo{movies: []models.Movie{{ID: 1, Title: "Inception", ImageURL: &imageURL}}}
		reviewRepo := &fakeReviewRepo{reviews: map[uint][]models.Review{
			1: {
				{ID: 1, MovieID: 1, ReviewText: "Great movie", Rating: 5},
				{ID: 2, MovieID: 1, ReviewText: "Seen better", Rating: 3},
			},
		}}
		app := newAdminApp(movieRepo, reviewRepo)

		status, body := fetchAdminPage(t, app)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, body, `src="http://img/inception.jpg"`)
		assert.Contains(t, body, "★★★★★ 5/5")
		assert.Contains(t, body, "★★★☆☆ 3/5")
		assert.Contains(t, body, "Great movie")
		assert.NotContains(t, body, "No reviews yet.")
	})

	t.Run("marks an absent year as N/A", func(t *testing.T) {
		movieRepo := &fakeMovieRepo{movies: []models.Movie{{ID: 1, Title: "Arrival"}}}
		app := newAdminApp(movieRepo, &fakeReviewRepo{})

		status, body := fetchAdminPage(t, app)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, body, "Arrival (N/A)")
	})

	t.Run("clamps star rendering for an out-of-range rating", func(t *testing.T) {
		movieRepo := &fakeMovieRepo{movies: []models.Movie{{ID: 1, Title: "Inception"}}}
		reviewRepo := &fakeReviewRepo{reviews: map[uint][]models.Review{
			1: {{ID: 1, MovieID: 1, ReviewText: "x", Rating: 9}},
		}}
		app := newAdminApp(movieRepo, reviewRepo)

		status, body := fetchAdminPage(t, app)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, body, "★★★★★ 9/5")
	})

	t.Run("renders a minimal error page when listing movies fails", func(t *testing.T) {
		movieRepo := &fakeMovieRepo{err: assert.AnError}
		app := newAdminApp(movieRepo, &fakeReviewRepo{})

		status, body := fetchAdminPage(t, app)

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "<h1>Error loading admin page</h1>", body)
	})

	t.Run("renders a minimal error page when a reviews query fails", func(t *testing.T) {
		movieRepo := &fakeMovieRepo{movies: []models.Movie{{ID: 1, Title: "Inception"}}}
		reviewRepo := &fakeReviewRepo{err: assert.AnError}
		app := newAdminApp(movieRepo, reviewRepo)

		status, body := fetchAdminPage(t, app)

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Contains(t, body, "Error loading admin page")
	})
}
