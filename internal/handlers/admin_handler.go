package handlers

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"
	"time"

	"movie-review-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AdminHandler renders the operational HTML report of all movies and their
// reviews. It reads the repositories directly and is independent of the
// JSON API handlers.
type AdminHandler struct {
	movieRepo  repository.MovieRepository
	reviewRepo repository.ReviewRepository
	logger     *logrus.Logger
}

func NewAdminHandler(movieRepo repository.MovieRepository, reviewRepo repository.ReviewRepository, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

type adminReviewView struct {
	Stars  string
	Rating int
	Text   string
}

type adminMovieView struct {
	Title    string
	Year     string
	ImageURL string
	Reviews  []adminReviewView
}

type adminPageData struct {
	Movies []adminMovieView
	Year   int
}

// RenderReport godoc
// @Summary Admin report of movies and reviews
// @Description Read-only HTML page listing every movie with its reviews
// @Tags admin
// @Produce html
// @Success 200 {string} string "HTML report"
// @Failure 500 {string} string "HTML error page"
// @Router /admin [get]
func (h *AdminHandler) RenderReport(c *fiber.Ctx) error {
	ctx := c.Context()

	movies, err := h.movieRepo.FindAll(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch movies for admin report")
		return h.renderErrorPage(c)
	}

	data := adminPageData{
		Movies: make([]adminMovieView, 0, len(movies)),
		Year:   time.Now().Year(),
	}

	// One reviews query per movie. The report is an operator page over a
	// small catalogue; correctness matters here, throughput does not.
	for _, movie := range movies {
		reviews, err := h.reviewRepo.FindByMovieID(ctx, movie.ID)
		if err != nil {
			h.logger.WithError(err).WithField("movie_id", movie.ID).Error("Failed to fetch reviews for admin report")
			return h.renderErrorPage(c)
		}

		view := adminMovieView{
			Title:   movie.Title,
			Year:    "N/A",
			Reviews: make([]adminReviewView, 0, len(reviews)),
		}
		if movie.Year != nil {
			view.Year = strconv.Itoa(*movie.Year)
		}
		if movie.ImageURL != nil {
			view.ImageURL = *movie.ImageURL
		}

		for _, review := range reviews {
			view.Reviews = append(view.Reviews, adminReviewView{
				Stars:  renderStars(review.Rating),
				Rating: review.Rating,
				Text:   review.ReviewText,
			})
		}

		data.Movies = append(data.Movies, view)
	}

	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, data); err != nil {
		h.logger.WithError(err).Error("Failed to render admin report")
		return h.renderErrorPage(c)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *AdminHandler) renderErrorPage(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusInternalServerError).SendString("<h1>Error loading admin page</h1>")
}

// renderStars draws rating filled stars out of five. Ratings are not
// range-checked at the API, so clamp before repeating.
func renderStars(rating int) string {
	filled := rating
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

var adminTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Backend Admin - Movies and Reviews</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; background-color: #1a1a1a; color: #e0e0e0; }
    header { background: #333333; color: #e0e0e0; padding: 20px 0; text-align: center; }
    h1 { margin: 0; font-size: 2.2em; }
    .movies-container {
      display: grid;
      grid-template-columns: repeat(3, 1fr);
      gap: 20px;
      padding: 20px;
      max-width: 1200px;
      margin: 0 auto;
    }
    .movie {
      background: #2a2a2a;
      padding: 15px;
      border-radius: 8px;
      display: flex;
      flex-direction: column;
      height: 100%;
    }
    .movie h2 { margin-top: 0; color: #cccccc; font-size: 1.2em; margin-bottom: 10px; }
    .movie img { max-width: 200px; height: auto; border-radius: 8px; margin-bottom: 10px; }
    .no-image {
      width: 100%;
      height: 200px;
      background: #444444;
      color: #aaaaaa;
      display: flex;
      align-items: center;
      justify-content: center;
      border-radius: 8px;
      margin-bottom: 10px;
    }
    .review {
      margin: 8px 0;
      padding: 8px;
      background: #333333;
      border-left: 3px solid #4a90e2;
      font-size: 0.9em;
    }
    .rating { font-weight: bold; color: #ffc107; }
    .no-reviews { font-style: italic; color: #aaaaaa; padding: 8px; font-size: 0.9em; }
    footer { text-align: center; color: #aaaaaa; margin: 40px 0 10px 0; font-size: 1em; }
    @media (max-width: 1024px) {
      .movies-container { grid-template-columns: repeat(2, 1fr); padding: 15px; }
    }
    @media (max-width: 768px) {
      .movies-container { grid-template-columns: 1fr; padding: 10px; }
    }
  </style>
</head>
<body>
  <header>
    <h1>🎬 Backend Admin - Movies and Reviews</h1>
  </header>
  <div class="movies-container">
{{- range .Movies}}
    <div class="movie">
      <h2>{{.Title}} ({{.Year}})</h2>
{{- if .ImageURL}}
      <img src="{{.ImageURL}}" alt="{{.Title}}">
{{- else}}
      <div class="no-image">No Image</div>
{{- end}}
{{- if .Reviews}}
{{- range .Reviews}}
      <div class="review">
        <div class="rating">{{.Stars}} {{.Rating}}/5</div>
        <p>{{.Text}}</p>
      </div>
{{- end}}
{{- else}}
      <p class="no-reviews">No reviews yet.</p>
{{- end}}
    </div>
{{- end}}
  </div>
  <footer>&copy; {{.Year}} Movie Review App Admin</footer>
</body>
</html>
`))
