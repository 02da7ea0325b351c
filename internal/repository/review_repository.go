package repository

import (
	"context"
	"time"

	"movie-review-backend/internal/database"
	"movie-review-backend/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByMovieID(ctx context.Context, movieID uint) ([]models.Review, error)
}

type reviewRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *reviewRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts a review. The movie_id foreign key makes this fail for a
// movie that was never created; callers treat that as a storage error.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(review).Error
}

// FindByMovieID returns the movie's reviews in ascending id order. A movie
// with no reviews (or an id that was never created) yields an empty slice,
// not an error.
func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uint) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	reviews := make([]models.Review, 0)
	err := r.db.WithContext(ctx).Where("movie_id = ?", movieID).Order("id ASC").Find(&reviews).Error
	return reviews, err
}
