package services

import (
	"context"

	"movie-review-backend/internal/models"
	"movie-review-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type MovieService interface {
	CreateMovie(ctx context.Context, title string, year *int) (*models.Movie, error)
	GetAllMovies(ctx context.Context) ([]models.Movie, error)
	CreateReview(ctx context.Context, movieID uint, reviewText string, rating int) (*models.Review, error)
	GetMovieReviews(ctx context.Context, movieID uint) ([]models.Review, error)
}

type movieService struct {
	movieRepo  repository.MovieRepository
	reviewRepo repository.ReviewRepository
	poster     PosterService
	logger     *logrus.Logger
}

func NewMovieService(movieRepo repository.MovieRepository, reviewRepo repository.ReviewRepository, poster PosterService, logger *logrus.Logger) MovieService {
	return &movieService{
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
		poster:     poster,
		logger:     logger,
	}
}

// CreateMovie resolves a poster for the title and persists the movie. The
// poster lookup runs to completion before the insert; if the insert fails
// the fetched URL is simply discarded, nothing was written.
func (s *movieService) CreateMovie(ctx context.Context, title string, year *int) (*models.Movie, error) {
	imageURL := s.poster.ResolvePoster(ctx, title, year)

	s.logger.WithFields(logrus.Fields{
		"title":     title,
		"image_url": imageURL,
	}).Info("Fetched image URL for movie")

	movie := &models.Movie{
		Title:    title,
		Year:     year,
		ImageURL: imageURL,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	return movie, nil
}

func (s *movieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	return s.movieRepo.FindAll(ctx)
}

func (s *movieService) CreateReview(ctx context.Context, movieID uint, reviewText string, rating int) (*models.Review, error) {
	review := &models.Review{
		MovieID:    movieID,
		ReviewText: reviewText,
		Rating:     rating,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *movieService) GetMovieReviews(ctx context.Context, movieID uint) ([]models.Review, error) {
	return s.reviewRepo.FindByMovieID(ctx, movieID)
}
