package handlers

// CreateMovieRequest is the POST /api/movies body. Year is a pointer so a
// missing year stays null rather than becoming zero.
type CreateMovieRequest struct {
	Title string `json:"title" example:"Inception"`
	Year  *int   `json:"year" example:"2010"`
}

// CreateReviewRequest is the POST /api/movies/:id/review body. Rating is
// required but its range is deliberately not checked here; the client UI
// constrains it to 1-5.
type CreateReviewRequest struct {
	ReviewText string `json:"review_text" example:"Great movie"`
	Rating     int    `json:"rating" example:"5"`
}
