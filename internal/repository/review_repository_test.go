package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-review-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_Create(t *testing.T) {
	t.Run("inserts review and fills generated id", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewReviewRepository(db)

		mock.ExpectQuery(`INSERT INTO "reviews"`).
			WithArgs(1, "Great movie", 5, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		review := &models.Review{MovieID: 1, ReviewText: "Great movie", Rating: 5}
		err := repo.Create(context.Background(), review)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), review.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails for a movie that does not exist", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewReviewRepository(db)

		fkErr := errors.New(`pq: insert or update on table "reviews" violates foreign key constraint "fk_reviews_movie"`)
		mock.ExpectQuery(`INSERT INTO "reviews"`).
			WithArgs(999, "x", 3, sqlmock.AnyArg()).
			WillReturnError(fkErr)

		review := &models.Review{MovieID: 999, ReviewText: "x", Rating: 3}
		err := repo.Create(context.Background(), review)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "foreign key")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewRepository_FindByMovieID(t *testing.T) {
	t.Run("returns reviews in ascending id order", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewReviewRepository(db)

		rows := sqlmock.NewRows([]string{"id", "movie_id", "review_text", "rating", "created_at"}).
			AddRow(1, 1, "Great movie", 5, time.Now()).
			AddRow(2, 1, "Seen better", 3, time.Now())

		mock.ExpectQuery(`SELECT \* FROM "reviews" WHERE movie_id = \$1 ORDER BY id ASC`).
			WithArgs(1).
			WillReturnRows(rows)

		reviews, err := repo.FindByMovieID(context.Background(), 1)

		assert.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, uint(1), reviews[0].ID)
		assert.Equal(t, 5, reviews[0].Rating)
		assert.Equal(t, uint(2), reviews[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice when the movie has no reviews", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewReviewRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "reviews" WHERE movie_id = \$1 ORDER BY id ASC`).
			WithArgs(999).
			WillReturnRows(sqlmock.NewRows([]string{"id", "movie_id", "review_text", "rating", "created_at"}))

		reviews, err := repo.FindByMovieID(context.Background(), 999)

		assert.NoError(t, err)
		assert.NotNil(t, reviews)
		assert.Len(t, reviews, 0)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
