package models

import (
	"time"
)

// Review is a rated text comment attached to exactly one movie. The
// movie_id foreign key is enforced by the database, so inserting a review
// for a movie that does not exist fails at the storage boundary.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	MovieID    uint      `gorm:"not null;index" json:"movie_id" example:"1"`
	Movie      *Movie    `gorm:"foreignKey:MovieID" json:"-"`
	ReviewText string    `gorm:"type:text;not null" json:"review_text" example:"Great movie"`
	Rating     int       `gorm:"not null" json:"rating" example:"5"`
	CreatedAt  time.Time `json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
