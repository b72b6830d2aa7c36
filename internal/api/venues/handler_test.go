package venues_test

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

func TestListVenuesGroupsByArea(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodGet, "/venues", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	// two SF venues and one NY venue make exactly two groups
	assert.Equal(t, 1, strings.Count(body, "San Francisco, CA"))
	assert.Equal(t, 1, strings.Count(body, "New York, NY"))
	assert.Contains(t, body, "The Musical Hop")
	assert.Contains(t, body, "Park Square Live Music &amp; Coffee")
	assert.Contains(t, body, "The Dueling Pianos Bar")
}

func TestListVenuesUpcomingCounts(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodGet, "/venues", nil)
	body := w.Body.String()

	// venue 3 has three 2035 shows; venues 1 and 2 have none upcoming
	assert.Contains(t, body, "3 upcoming")
	assert.Equal(t, 2, strings.Count(body, "0 upcoming"))
}

func TestSearchVenues(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodPost, "/venues/search", url.Values{"search_term": {"Hop"}})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "The Musical Hop")
	assert.NotContains(t, body, "Dueling")
	assert.Contains(t, body, "1 result(s)")

	w = do(r, http.MethodPost, "/venues/search", url.Values{"search_term": {"music"}})
	body = w.Body.String()
	assert.Contains(t, body, "The Musical Hop")
	assert.Contains(t, body, "Park Square Live Music &amp; Coffee")
	assert.NotContains(t, body, "Dueling")
	assert.Contains(t, body, "2 result(s)")
}

func TestSearchVenuesEmptyTermMatchesAll(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodPost, "/venues/search", url.Values{"search_term": {""}})
	assert.Contains(t, w.Body.String(), "3 result(s)")
}

func TestGetVenuePartitionsShows(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodGet, "/venues/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "3 upcoming show(s)")
	assert.Contains(t, body, "1 past show(s)")
	assert.Contains(t, body, "The Wild Sax Band")
	assert.Contains(t, body, "Matt Quevedo")
	assert.Contains(t, body, "2035-04-01T20:00:00")
}

func TestGetVenueWithoutShows(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodGet, "/venues/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "0 upcoming show(s)")
	assert.Contains(t, body, "0 past show(s)")
}

func TestGetVenueNotFound(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodGet, "/venues/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/venues/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateVenueRoundTrip(t *testing.T) {
	r := setupApp(t)

	form := url.Values{
		"name":                {"The Velvet Room"},
		"city":                {"Austin"},
		"state":               {"TX"},
		"address":             {"12 Sixth Street"},
		"phone":               {"512-555-0199"},
		"genres":              {"Jazz", "Blues"},
		"website":             {"https://velvetroom.example.com"},
		"facebook_link":       {"https://www.facebook.com/velvetroom"},
		"image_link":          {"https://images.example.com/velvet.jpg"},
		"seeking_talent":      {"y"},
		"seeking_description": {"Late night acts wanted."},
	}

	w := do(r, http.MethodPost, "/venues/create", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Venue The Velvet Room was successfully listed!")

	var venue booking.Venue
	require.NoError(t, database.DB.First(&venue, "name = ?", "The Velvet Room").Error)
	assert.Equal(t, "Austin", venue.City)
	assert.Equal(t, "TX", venue.State)
	assert.Equal(t, "12 Sixth Street", venue.Address)
	assert.Equal(t, "512-555-0199", booking.StrDeref(venue.Phone))
	assert.Equal(t, booking.Genres{"Jazz", "Blues"}, venue.Genres)
	assert.True(t, venue.SeekingTalent)

	// detail assembler reproduces the record with zero shows
	w = do(r, http.MethodGet, "/venues/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "The Velvet Room")
	assert.Contains(t, body, "0 upcoming show(s)")
	assert.Contains(t, body, "0 past show(s)")
}

func TestCreateVenueValidationFailure(t *testing.T) {
	r := setupApp(t)

	form := url.Values{
		"city":   {"Austin"},
		"state":  {"TX"},
		"genres": {"Jazz"},
	}

	w := do(r, http.MethodPost, "/venues/create", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name is required.")

	var count int64
	database.DB.Model(&booking.Venue{}).Count(&count)
	assert.EqualValues(t, 3, count)
}

func TestCreateVenueRejectsUnknownState(t *testing.T) {
	r := setupApp(t)

	form := url.Values{
		"name":    {"Nowhere"},
		"city":    {"Nowhere"},
		"state":   {"ZZ"},
		"address": {"1 Nowhere Lane"},
		"genres":  {"Jazz"},
	}

	w := do(r, http.MethodPost, "/venues/create", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "state must be a US state code.")
}

func TestUpdateVenueOverwritesEveryField(t *testing.T) {
	r := setupApp(t)

	form := url.Values{
		"name":          {"The Musical Hop Annex"},
		"city":          {"Oakland"},
		"state":         {"CA"},
		"address":       {"99 Broadway"},
		"phone":         {"510-555-0101"},
		"genres":        {"Folk"},
		"website":       {"https://annex.example.com"},
		"facebook_link": {"https://www.facebook.com/annex"},
		"image_link":    {""},
		// checkbox unchecked: field absent from the submission
		"seeking_description": {""},
	}

	w := do(r, http.MethodPost, "/venues/1/edit", form)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/venues/1", w.Header().Get("Location"))

	var venue booking.Venue
	require.NoError(t, database.DB.First(&venue, 1).Error)
	assert.Equal(t, "The Musical Hop Annex", venue.Name)
	assert.Equal(t, "Oakland", venue.City)
	assert.Equal(t, booking.Genres{"Folk"}, venue.Genres)
	// full-record overwrite flips the previously-true flag back to false
	assert.False(t, venue.SeekingTalent)
}

func TestUpdateVenueNotFound(t *testing.T) {
	r := setupApp(t)

	form := url.Values{
		"name":    {"Ghost"},
		"city":    {"Nowhere"},
		"state":   {"CA"},
		"address": {"1 Ghost Road"},
		"genres":  {"Jazz"},
	}

	w := do(r, http.MethodPost, "/venues/999/edit", form)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVenueCascadesToShows(t *testing.T) {
	r := setupApp(t)

	var before int64
	database.DB.Model(&booking.Show{}).Where("venue_id = ?", 3).Count(&before)
	require.EqualValues(t, 4, before)

	w := do(r, http.MethodDelete, "/venues/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "has successfully been deleted!")

	var venues, orphaned, remaining int64
	database.DB.Model(&booking.Venue{}).Count(&venues)
	database.DB.Model(&booking.Show{}).Where("venue_id = ?", 3).Count(&orphaned)
	database.DB.Model(&booking.Show{}).Count(&remaining)
	assert.EqualValues(t, 2, venues)
	assert.EqualValues(t, 0, orphaned)
	assert.EqualValues(t, 1, remaining)
}

func TestDeleteVenueNotFound(t *testing.T) {
	r := setupApp(t)

	w := do(r, http.MethodDelete, "/venues/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
