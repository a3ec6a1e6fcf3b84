package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pavlenkodm/movie-stats/internal/storage"
)

// setupMySQLStorage starts a throwaway MySQL container, provisions the
// schema, and returns a ready storage helper plus a teardown func.
func setupMySQLStorage(t *testing.T) (*storage.Storage, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "mysql:8",
		Env:          map[string]string{"MYSQL_ROOT_PASSWORD": "password", "MYSQL_DATABASE": "testdb"},
		ExposedPorts: []string{"3306/tcp"},
		WaitingFor:   wait.ForListeningPort("3306/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "3306")

	dsn := fmt.Sprintf("root:password@tcp(%s:%d)/testdb?parseTime=true&charset=utf8mb4", host, port.Int())

	// MySQL keeps the port open while still initializing; retry until
	// the server actually accepts queries.
	var db *sqlx.DB
	for i := 0; i < 30; i++ {
		db, err = sqlx.Connect("mysql", dsn)
		if err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	assert.NoError(t, err)

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(255),
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS douban_movies (
			id INT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			year INT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS douban_genre (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS douban_movie_genre (
			movie_id INT NOT NULL,
			genre_id INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS douban_country (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS douban_movie_country (
			movie_id INT NOT NULL,
			country_id INT NOT NULL
		)`,
	} {
		_, err = db.Exec(stmt)
		assert.NoError(t, err)
	}

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return storage.New(db), teardown
}
