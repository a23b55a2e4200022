package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movieflix/constants"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, app interface {
	Test(*http.Request, ...int) (*http.Response, error)
}, path, token string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func movieColumns() []string {
	return []string{"id", "title", "genre", "rating", "slug"}
}

func TestGetMovies_FromDatabase(t *testing.T) {
	mock := newMockDB(t)
	app := setupApp()

	mock.ExpectQuery(`SELECT \* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows(movieColumns()).
			AddRow(1, "Inception", "Sci-Fi", 8.8, "inception").
			AddRow(2, "The Matrix", "Sci-Fi", 8.7, "the-matrix"))
	mock.ExpectQuery(`SELECT \* FROM "show_times"`).
		WillReturnRows(sqlmock.NewRows(showTimeColumns()).
			AddRow(10, 1, "6:00 PM", time.Now(), 200.0, 100, constants.SHOWTIME_OPEN))
	mock.ExpectQuery(`SELECT \* FROM "booked_seats"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "show_time_id", "row", "number", "customer_id"}).
			AddRow(5, 10, "A", 1, 3))

	resp := getJSON(t, app, "/api/movies", "")
	require.Equal(t, 200, resp.StatusCode)

	var movies []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&movies))
	require.Len(t, movies, 2)
	assert.Equal(t, "Inception", movies[0]["title"])

	showTimes := movies[0]["showTimes"].([]any)
	require.Len(t, showTimes, 1)
	bookedSeats := showTimes[0].(map[string]any)["bookedSeats"].([]any)
	assert.Len(t, bookedSeats, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMovieById_NotFound(t *testing.T) {
	mock := newMockDB(t)
	app := setupApp()

	mock.ExpectQuery(`SELECT \* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows(movieColumns()))

	resp := getJSON(t, app, "/api/movies/42", "")
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, constants.MOVIE_NOT_FOUND, decodeBody(t, resp)["message"])
}

func TestGetMovieById_BadId(t *testing.T) {
	newMockDB(t)
	app := setupApp()

	resp := getJSON(t, app, "/api/movies/not-a-number", "")
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGetMovieById_Success(t *testing.T) {
	mock := newMockDB(t)
	app := setupApp()

	mock.ExpectQuery(`SELECT \* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows(movieColumns()).
			AddRow(1, "Interstellar", "Sci-Fi", 8.6, "interstellar"))
	mock.ExpectQuery(`SELECT \* FROM "show_times"`).
		WillReturnRows(sqlmock.NewRows(showTimeColumns()))

	resp := getJSON(t, app, "/api/movies/1", "")
	require.Equal(t, 200, resp.StatusCode)

	var movie map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&movie))
	assert.Equal(t, "Interstellar", movie["title"])
	assert.Equal(t, "interstellar", movie["slug"])
}

func TestGetMovieBySlug_NotFound(t *testing.T) {
	mock := newMockDB(t)
	app := setupApp()

	mock.ExpectQuery(`SELECT \* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows(movieColumns()))

	resp := getJSON(t, app, "/api/movies/slug/no-such-movie", "")
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, constants.MOVIE_NOT_FOUND, decodeBody(t, resp)["message"])
}

func TestCreateMovie_Unauthorized(t *testing.T) {
	newMockDB(t)
	app := setupApp()

	resp := postJSON(t, app, "/api/movies", "", `{}`)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestCreateMovie_ValidationError(t *testing.T) {
	newMockDB(t)
	app := setupApp()

	// rating out of range
	resp := postJSON(t, app, "/api/movies", authToken(t, 1),
		`{"title":"Dune","description":"Spice","duration":"2h 35m","genre":"Sci-Fi","rating":11,"image":"https://img.example/dune.jpg"}`)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateMovie_Success(t *testing.T) {
	mock := newMockDB(t)
	app := setupApp()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "movies"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "movies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(`INSERT INTO "show_times"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))
	mock.ExpectCommit()

	resp := postJSON(t, app, "/api/movies", authToken(t, 1),
		`{"title":"Dune","description":"Spice","duration":"2h 35m","genre":"Sci-Fi","rating":8.1,`+
			`"image":"https://img.example/dune.jpg","cast":["Timothee Chalamet","Zendaya"],`+
			`"showTimes":[{"time":"9:00 PM","date":"2026-09-10","price":250}]}`)

	require.Equal(t, 201, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "dune", data["slug"])
	assert.Equal(t, "Timothee Chalamet, Zendaya", data["cast"])

	showTimes := data["showTimes"].([]any)
	require.Len(t, showTimes, 1)
	st := showTimes[0].(map[string]any)
	assert.Equal(t, float64(constants.SHOWTIME_CAPACITY), st["availableSeats"])
	assert.Equal(t, constants.SHOWTIME_OPEN, st["status"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
