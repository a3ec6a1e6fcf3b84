package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pavlenkodm/movie-stats/internal/logger"
	"github.com/pavlenkodm/movie-stats/internal/models"
)

// YearStatsProvider defines the interface for the by-year aggregation.
type YearStatsProvider interface {
	GetByYear(ctx context.Context) ([]models.YearCount, error)
}

// GenreStatsProvider defines the interface for the by-genre aggregation.
type GenreStatsProvider interface {
	GetByGenre(ctx context.Context) ([]models.GenreCount, error)
}

// CountryStatsProvider defines the interface for the by-country aggregation.
type CountryStatsProvider interface {
	GetByCountry(ctx context.Context) ([]models.CountryCount, error)
}

// NewMoviesByYearHandler returns an HTTP handler for the per-year counts.
// @Summary Movie counts by year
// @Description Returns movie counts grouped by release year, year ascending
// @Tags movies
// @Produce json
// @Success 200 {array} models.YearCount "Counts per year"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/movies/by-year [get]
// @Security BearerAuth
func NewMoviesByYearHandler(svc YearStatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		rows, err := svc.GetByYear(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get movies by year", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error: "internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(rows)
	}
}

// NewMoviesByGenreHandler returns an HTTP handler for the per-genre counts.
// @Summary Movie counts by genre
// @Description Returns movie counts grouped by genre, count descending
// @Tags movies
// @Produce json
// @Success 200 {array} models.GenreCount "Counts per genre"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/movies/by-genre [get]
// @Security BearerAuth
func NewMoviesByGenreHandler(svc GenreStatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		rows, err := svc.GetByGenre(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get movies by genre", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error: "internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(rows)
	}
}

// NewMoviesByCountryHandler returns an HTTP handler for the per-country counts.
// @Summary Movie counts by country
// @Description Returns movie counts grouped by production country, count descending
// @Tags movies
// @Produce json
// @Success 200 {array} models.CountryCount "Counts per country"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/movies/by-country [get]
// @Security BearerAuth
func NewMoviesByCountryHandler(svc CountryStatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		rows, err := svc.GetByCountry(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get movies by country", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error: "internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(rows)
	}
}
