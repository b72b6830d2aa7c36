package artists

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"booking-app/database"
	"booking-app/internal/app/http/render"
	"booking-app/internal/domain/booking"
	"booking-app/internal/forms"
	"booking-app/pkg/logger"
	"booking-app/prometheus"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ------------------------------
// GET /artists
// ------------------------------
func ListArtists(c *gin.Context) {
	var list []booking.Artist
	if err := database.DB.
		Select("id, name").
		Order("id ASC").
		Find(&list).Error; err != nil {
		render.ServerError(c)
		return
	}

	render.HTML(c, http.StatusOK, "pages/artists.html", gin.H{
		"artists": list,
	})
}

// ------------------------------
// POST /artists/search
// ------------------------------
func SearchArtists(c *gin.Context) {
	prometheus.SearchRequestsTotal.WithLabelValues("artist").Inc()

	var req forms.SearchForm
	_ = c.ShouldBind(&req)

	now := time.Now().UTC()
	counts, err := upcomingCounts(database.DB, now)
	if err != nil {
		render.ServerError(c)
		return
	}

	matches, err := searchByName(database.DB, req.SearchTerm)
	if err != nil {
		render.ServerError(c)
		return
	}

	render.HTML(c, http.StatusOK, "pages/search_artists.html", gin.H{
		"results":     buildSearchResults(matches, counts),
		"search_term": req.SearchTerm,
	})
}

// ------------------------------
// GET /artists/:id
// ------------------------------
func GetArtist(c *gin.Context) {
	id, ok := artistID(c)
	if !ok {
		return
	}

	var artist booking.Artist
	if err := database.DB.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.NotFound(c)
			return
		}
		render.ServerError(c)
		return
	}

	shows, err := artistShows(database.DB, artist.ID)
	if err != nil {
		render.ServerError(c)
		return
	}

	render.HTML(c, http.StatusOK, "pages/show_artist.html", gin.H{
		"artist": buildArtistPage(artist, shows, time.Now().UTC()),
	})
}

// ------------------------------
// GET /artists/create
// ------------------------------
func NewArtistForm(c *gin.Context) {
	render.HTML(c, http.StatusOK, "forms/new_artist.html", gin.H{
		"states": forms.StateChoices,
		"genres": forms.GenreChoices,
	})
}

// ------------------------------
// POST /artists/create
// ------------------------------
func CreateArtist(c *gin.Context) {
	var req forms.ArtistForm
	if err := c.ShouldBind(&req); err != nil {
		artist := booking.Artist{}
		applyForm(&artist, req)
		render.HTML(c, http.StatusBadRequest, "forms/new_artist.html", gin.H{
			"artist": buildArtistPage(artist, nil, time.Now().UTC()),
			"states": forms.StateChoices,
			"genres": forms.GenreChoices,
			"errors": forms.Messages(err),
		})
		return
	}

	artist := booking.Artist{}
	applyForm(&artist, req)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&artist).Error
	})
	if err != nil {
		logger.GetLogger().Error("artist create failed", zap.Error(err))
		prometheus.BookingOperationsTotal.WithLabelValues("artist", "create", "error").Inc()
		render.Flash(c, "An error occurred. Artist "+req.Name+" could not be listed.")
		render.HTML(c, http.StatusInternalServerError, "pages/home.html", nil)
		return
	}

	prometheus.BookingOperationsTotal.WithLabelValues("artist", "create", "success").Inc()
	render.Flash(c, "Artist "+req.Name+" was successfully listed!")
	render.HTML(c, http.StatusOK, "pages/home.html", nil)
}

// ------------------------------
// GET /artists/:id/edit
// ------------------------------
func EditArtistForm(c *gin.Context) {
	id, ok := artistID(c)
	if !ok {
		return
	}

	var artist booking.Artist
	if err := database.DB.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.NotFound(c)
			return
		}
		render.ServerError(c)
		return
	}

	render.HTML(c, http.StatusOK, "forms/edit_artist.html", gin.H{
		"artist": buildArtistPage(artist, nil, time.Now().UTC()),
		"states": forms.StateChoices,
		"genres": forms.GenreChoices,
	})
}

// ------------------------------
// POST /artists/:id/edit
// ------------------------------
func UpdateArtist(c *gin.Context) {
	id, ok := artistID(c)
	if !ok {
		return
	}

	var req forms.ArtistForm
	if err := c.ShouldBind(&req); err != nil {
		artist := booking.Artist{ID: id}
		applyForm(&artist, req)
		render.HTML(c, http.StatusBadRequest, "forms/edit_artist.html", gin.H{
			"artist": buildArtistPage(artist, nil, time.Now().UTC()),
			"states": forms.StateChoices,
			"genres": forms.GenreChoices,
			"errors": forms.Messages(err),
		})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var artist booking.Artist
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		applyForm(&artist, req)
		return tx.Save(&artist).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.NotFound(c)
			return
		}
		logger.GetLogger().Error("artist update failed", zap.Error(err))
		prometheus.BookingOperationsTotal.WithLabelValues("artist", "update", "error").Inc()
		render.Flash(c, "An error occurred. Artist "+req.Name+" could not be updated.")
		render.HTML(c, http.StatusInternalServerError, "pages/home.html", nil)
		return
	}

	prometheus.BookingOperationsTotal.WithLabelValues("artist", "update", "success").Inc()
	render.Flash(c, "Artist "+req.Name+" was successfully updated!")
	c.Redirect(http.StatusFound, "/artists/"+strconv.FormatUint(uint64(id), 10))
}

// applyForm overwrites every artist field from the submitted form,
// field by field.
func applyForm(a *booking.Artist, f forms.ArtistForm) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = booking.StrPtrIfNotEmpty(f.Phone)
	a.ImageLink = f.ImageLink
	a.Genres = booking.Genres(f.Genres)
	a.FacebookLink = booking.StrPtrIfNotEmpty(f.FacebookLink)
	a.Website = f.Website
	a.SeekingVenue = forms.Checkbox(f.SeekingVenue)
	a.SeekingDescription = f.SeekingDescription
}

func artistID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		render.NotFound(c)
		return 0, false
	}
	return uint(id), true
}
