package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"movie-review-backend/internal/config"
	"movie-review-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// omdbNoImage is OMDB's sentinel for a title that has no poster artwork.
const omdbNoImage = "N/A"

// PosterService resolves a poster image URL for a movie title. Resolution
// is best-effort: every failure mode degrades to nil, never an error, so
// movie creation can proceed without a poster.
type PosterService interface {
	ResolvePoster(ctx context.Context, title string, year *int) *string
}

type omdbPosterService struct {
	config     *config.OMDBConfig
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewOMDBPosterService(cfg *config.OMDBConfig, logger *logrus.Logger) PosterService {
	return &omdbPosterService{
		config: cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

func (s *omdbPosterService) ResolvePoster(ctx context.Context, title string, year *int) *string {
	if s.config.APIKey == "" {
		s.logger.Warn("OMDB_API_KEY not set, skipping poster fetch")
		return nil
	}

	lookupURL, err := s.buildLookupURL(title, year)
	if err != nil {
		s.logger.WithError(err).Warn("Invalid OMDB base URL, skipping poster fetch")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to build OMDB request")
		return nil
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.WithError(err).WithField("title", title).Warn("Error fetching from OMDB API")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WithFields(logrus.Fields{
			"title":  title,
			"status": resp.StatusCode,
		}).Warn("OMDB API returned non-OK status")
		return nil
	}

	var result models.OMDBLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		s.logger.WithError(err).WithField("title", title).Warn("Failed to decode OMDB response")
		return nil
	}

	if result.Response != "True" || result.Poster == "" || result.Poster == omdbNoImage {
		s.logger.WithFields(logrus.Fields{
			"title":      title,
			"omdb_error": result.Error,
		}).Debug("No poster found for title")
		return nil
	}

	poster := result.Poster
	return &poster
}

func (s *omdbPosterService) buildLookupURL(title string, year *int) (string, error) {
	u, err := url.Parse(s.config.BaseURL)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("apikey", s.config.APIKey)
	q.Set("t", title)
	if year != nil {
		q.Set("y", strconv.Itoa(*year))
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
