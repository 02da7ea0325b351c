package models

import (
	"time"
)

// Movie is a catalogued film. Year and ImageURL are pointers so that an
// absent year and a missing poster serialize as null, which is what the
// frontend expects.
type Movie struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title     string    `gorm:"not null;index" json:"title" example:"Inception"`
	Year      *int      `json:"year" example:"2010"`
	ImageURL  *string   `json:"image_url" example:"https://m.media-amazon.com/images/M/inception.jpg"`
	CreatedAt time.Time `gorm:"index" json:"-"`
}

func (Movie) TableName() string {
	return "movies"
}

// OMDBLookupResponse is the payload returned by the OMDB title lookup.
// Response is the string "True" or "False"; Poster is "N/A" when OMDB
// has no artwork for the title.
type OMDBLookupResponse struct {
	Response string `json:"Response"`
	Poster   string `json:"Poster"`
	Error    string `json:"Error"`
}
