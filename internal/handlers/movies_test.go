package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pavlenkodm/movie-stats/internal/models"
)

func TestMoviesByYearHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Success", func(t *testing.T) {
		mockSvc := NewMockYearStatsProvider(ctrl)
		mockSvc.EXPECT().GetByYear(gomock.Any()).Return([]models.YearCount{
			{Year: 1994, Cnt: 12},
			{Year: 1995, Cnt: 7},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/movies/by-year", nil)
		rr := httptest.NewRecorder()
		NewMoviesByYearHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.YearCount
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, []models.YearCount{{Year: 1994, Cnt: 12}, {Year: 1995, Cnt: 7}}, resp)
	})

	t.Run("EmptyDatasetSerializesAsArray", func(t *testing.T) {
		mockSvc := NewMockYearStatsProvider(ctrl)
		mockSvc.EXPECT().GetByYear(gomock.Any()).Return([]models.YearCount{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/movies/by-year", nil)
		rr := httptest.NewRecorder()
		NewMoviesByYearHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("Error", func(t *testing.T) {
		mockSvc := NewMockYearStatsProvider(ctrl)
		mockSvc.EXPECT().GetByYear(gomock.Any()).Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/api/movies/by-year", nil)
		rr := httptest.NewRecorder()
		NewMoviesByYearHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, map[string]string{"error": "internal server error"}, resp)
	})
}

func TestMoviesByGenreHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Success", func(t *testing.T) {
		mockSvc := NewMockGenreStatsProvider(ctrl)
		mockSvc.EXPECT().GetByGenre(gomock.Any()).Return([]models.GenreCount{
			{Name: "drama", Cnt: 20},
			{Name: "comedy", Cnt: 11},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/movies/by-genre", nil)
		rr := httptest.NewRecorder()
		NewMoviesByGenreHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.GenreCount
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, []models.GenreCount{{Name: "drama", Cnt: 20}, {Name: "comedy", Cnt: 11}}, resp)
	})

	t.Run("Error", func(t *testing.T) {
		mockSvc := NewMockGenreStatsProvider(ctrl)
		mockSvc.EXPECT().GetByGenre(gomock.Any()).Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/api/movies/by-genre", nil)
		rr := httptest.NewRecorder()
		NewMoviesByGenreHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestMoviesByCountryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Success", func(t *testing.T) {
		mockSvc := NewMockCountryStatsProvider(ctrl)
		mockSvc.EXPECT().GetByCountry(gomock.Any()).Return([]models.CountryCount{
			{Name: "USA", Cnt: 31},
			{Name: "France", Cnt: 9},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/movies/by-country", nil)
		rr := httptest.NewRecorder()
		NewMoviesByCountryHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.CountryCount
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, []models.CountryCount{{Name: "USA", Cnt: 31}, {Name: "France", Cnt: 9}}, resp)
	})

	t.Run("Error", func(t *testing.T) {
		mockSvc := NewMockCountryStatsProvider(ctrl)
		mockSvc.EXPECT().GetByCountry(gomock.Any()).Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/api/movies/by-country", nil)
		rr := httptest.NewRecorder()
		NewMoviesByCountryHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
