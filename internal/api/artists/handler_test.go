package artists_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"booking-app/config"
	"booking-app/database"
	routes "booking-app/internal/app/http"
	"booking-app/internal/domain/booking"
	"booking-app/internal/forms"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.SESSION_SECRET = "test-secret"
	config.CORS_ORIGIN = "*"

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	database.DB = db

	forms.RegisterValidators()
	return routes.NewRouter("../../../templates/**/*.html")
}

func do(r *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListArtists(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodGet, "/artists", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Guns N Petals")
	assert.Contains(t, body, "Matt Quevedo")
	assert.Contains(t, body, "The Wild Sax Band")
}

func TestSearchArtists(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodPost, "/artists/search", url.Values{"search_term": {"a"}})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Guns N Petals")
	assert.Contains(t, body, "Matt Quevedo")
	assert.Contains(t, body, "The Wild Sax Band")
	assert.Contains(t, body, "3 result(s)")

	w = do(r, http.MethodPost, "/artists/search", url.Values{"search_term": {"band"}})
	body = w.Body.String()
	assert.Contains(t, body, "The Wild Sax Band")
	assert.NotContains(t, body, "Guns N Petals")
	assert.NotContains(t, body, "Matt Quevedo")
	assert.Contains(t, body, "1 result(s)")
}

func TestSearchArtistsAttachesUpcomingCounts(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodPost, "/artists/search", url.Values{"search_term": {"Sax"}})
	assert.Contains(t, w.Body.String(), "3 upcoming")
}

func TestGetArtistPartitionsShows(t *testing.T) {
	r := setupApp(t)

	// all three Wild Sax Band shows are in 2035
	w := do(r, http.MethodGet, "/artists/6", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "3 upcoming show(s)")
	assert.Contains(t, body, "0 past show(s)")
	assert.Contains(t, body, "Park Square Live Music &amp; Coffee")

	// Guns N Petals played once, in 2019
	w = do(r, http.MethodGet, "/artists/4", nil)
	body = w.Body.String()
	assert.Contains(t, body, "0 upcoming show(s)")
	assert.Contains(t, body, "1 past show(s)")
	assert.Contains(t, body, "The Musical Hop")
}

func TestGetArtistNotFound(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodGet, "/artists/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateArtistRoundTrip(t *testing.T) {
	r := setupApp(t)

	form := url.Values{
		"name":                {"Night Owls"},
		"city":                {"Portland"},
		"state":               {"OR"},
		"phone":               {"503-555-0123"},
		"genres":              {"Indie"},
	}
	// Indie is not in the vocabulary
	w := do(r, http.MethodPost, "/artists/create", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "genres contains an unknown genre.")

	form.Set("genres", "Folk")
	w = do(r, http.MethodPost, "/artists/create", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Artist Night Owls was successfully listed!")

	var artist booking.Artist
	require.NoError(t, database.DB.First(&artist, "name = ?", "Night Owls").Error)
	assert.Equal(t, "Portland", artist.City)
	assert.Equal(t, booking.Genres{"Folk"}, artist.Genres)
	assert.False(t, artist.SeekingVenue)
}

func TestUpdateArtistOverwritesEveryField(t *testing.T) {
	r := setupApp(t)

	form := url.Values{
		"name":   {"Guns N Petals Revived"},
		"city":   {"San Jose"},
		"state":  {"CA"},
		"phone":  {"408-555-0188"},
		"genres": {"Rock n Roll", "Blues"},
	}

	w := do(r, http.MethodPost, "/artists/4/edit", form)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/artists/4", w.Header().Get("Location"))

	var artist booking.Artist
	require.NoError(t, database.DB.First(&artist, 4).Error)
	assert.Equal(t, "Guns N Petals Revived", artist.Name)
	assert.Equal(t, "San Jose", artist.City)
	assert.Equal(t, booking.Genres{"Rock n Roll", "Blues"}, artist.Genres)
	// unchecked checkbox overwrites the stored true
	assert.False(t, artist.SeekingVenue)
	assert.Empty(t, artist.SeekingDescription)
}

func TestEditArtistFormNotFound(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodGet, "/artists/999/edit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
