package models

// YearCount is one row of the movies-per-year aggregation.
type YearCount struct {
	Year int `json:"year" db:"year"`
	Cnt  int `json:"cnt" db:"cnt"`
}

// GenreCount is one row of the movies-per-genre aggregation.
type GenreCount struct {
	Name string `json:"name" db:"name"`
	Cnt  int    `json:"cnt" db:"cnt"`
}

// CountryCount is one row of the movies-per-country aggregation.
type CountryCount struct {
	Name string `json:"name" db:"name"`
	Cnt  int    `json:"cnt" db:"cnt"`
}
