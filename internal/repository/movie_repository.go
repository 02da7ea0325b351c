package repository

import (
	"context"
	"time"

	"movie-review-backend/internal/database"
	"movie-review-backend/internal/models"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	FindAll(ctx context.Context) ([]models.Movie, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

// FindAll returns every movie in ascending id order, which is creation order.
func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movies := make([]models.Movie, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&movies).Error
	return movies, err
}
