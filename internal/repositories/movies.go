package repositories

import (
	"context"

	"github.com/pavlenkodm/movie-stats/internal/models"
	"github.com/pavlenkodm/movie-stats/internal/storage"
)

// MovieStatsRepository runs the fixed aggregation queries over the
// externally provisioned movie reference tables. All queries are
// read-only; this repository never mutates the dataset.
type MovieStatsRepository struct {
	store *storage.Storage
}

func NewMovieStatsRepository(store *storage.Storage) *MovieStatsRepository {
	return &MovieStatsRepository{store: store}
}

// CountByYear returns movie counts grouped by release year, ordered by
// year ascending. Rows with an unknown year are excluded.
func (r *MovieStatsRepository) CountByYear(ctx context.Context) ([]models.YearCount, error) {
	const query = `
		SELECT year AS year, COUNT(*) AS cnt
		FROM douban_movies
		WHERE year IS NOT NULL
		GROUP BY year
		ORDER BY year
	`

	var rows []models.YearCount
	if err := r.store.Select(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByGenre returns movie counts grouped by genre, ordered by count
// descending; ties break by genre name ascending.
func (r *MovieStatsRepository) CountByGenre(ctx context.Context) ([]models.GenreCount, error) {
	const query = `
		SELECT g.name AS name, COUNT(*) AS cnt
		FROM douban_movie_genre mg
		JOIN douban_genre g ON mg.genre_id = g.id
		GROUP BY g.id, g.name
		ORDER BY cnt DESC, g.name ASC
	`

	var rows []models.GenreCount
	if err := r.store.Select(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByCountry returns movie counts grouped by production country,
// ordered by count descending; ties break by country name ascending.
func (r *MovieStatsRepository) CountByCountry(ctx context.Context) ([]models.CountryCount, error) {
	const query = `
		SELECT c.name AS name, COUNT(*) AS cnt
		FROM douban_movie_country mc
		JOIN douban_country c ON mc.country_id = c.id
		GROUP BY c.id, c.name
		ORDER BY cnt DESC, c.name ASC
	`

	var rows []models.CountryCount
	if err := r.store.Select(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}
