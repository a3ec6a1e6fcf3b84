package services

import (
	"context"

	"github.com/pavlenkodm/movie-stats/internal/logger"
	"github.com/pavlenkodm/movie-stats/internal/models"
)

// MovieStatsReader defines the aggregation queries the service needs.
type MovieStatsReader interface {
	CountByYear(ctx context.Context) ([]models.YearCount, error)
	CountByGenre(ctx context.Context) ([]models.GenreCount, error)
	CountByCountry(ctx context.Context) ([]models.CountryCount, error)
}

// MovieStatsService serves the read-only movie aggregations. An empty
// dataset yields an empty slice, never nil, so responses serialize as
// [] rather than null.
type MovieStatsService struct {
	reader MovieStatsReader
}

// NewMovieStatsService creates a new MovieStatsService instance.
func NewMovieStatsService(reader MovieStatsReader) *MovieStatsService {
	return &MovieStatsService{reader: reader}
}

// GetByYear returns movie counts per release year, year ascending.
func (svc *MovieStatsService) GetByYear(ctx context.Context) ([]models.YearCount, error) {
	rows, err := svc.reader.CountByYear(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count movies by year", "err", err)
		return nil, err
	}
	if rows == nil {
		rows = []models.YearCount{}
	}
	return rows, nil
}

// GetByGenre returns movie counts per genre, count descending.
func (svc *MovieStatsService) GetByGenre(ctx context.Context) ([]models.GenreCount, error) {
	rows, err := svc.reader.CountByGenre(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count movies by genre", "err", err)
		return nil, err
	}
	if rows == nil {
		rows = []models.GenreCount{}
	}
	return rows, nil
}

// GetByCountry returns movie counts per country, count descending.
func (svc *MovieStatsService) GetByCountry(ctx context.Context) ([]models.CountryCount, error) {
	rows, err := svc.reader.CountByCountry(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count movies by country", "err", err)
		return nil, err
	}
	if rows == nil {
		rows = []models.CountryCount{}
	}
	return rows, nil
}
