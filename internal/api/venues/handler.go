package venues

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
// GET /venues
// ------------------------------
func ListVenues(c *gin.Context) {
	now := time.Now().UTC()

	counts, err := upcomingCounts(database.DB, now)
	if err != nil {
		render.ServerError(c)
		return
	}

	var list []booking.Venue
	if err := database.DB.
		Select("id, name, city, state").
		Order("id ASC").
		Find(&list).Error; err != nil {
		render.ServerError(c)
		return
	}

	render.HTML(c, http.StatusOK, "pages/venues.html", gin.H{
		"areas": groupByArea(list, counts),
	})
}

// ------------------------------
// POST /venues/search
// ------------------------------
func SearchVenues(c *gin.Context) {
	prometheus.SearchRequestsTotal.WithLabelValues("venue").Inc()

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

	render.HTML(c, http.StatusOK, "pages/search_venues.html", gin.H{
		"results":     buildSearchResults(matches, counts),
		"search_term": req.SearchTerm,
	})
}

// ------------------------------
// GET /venues/:id
// ------------------------------
func GetVenue(c *gin.Context) {
	id, ok := venueID(c)
	if !ok {
		return
	}

	var venue booking.Venue
	if err := database.DB.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.NotFound(c)
			return
		}
		render.ServerError(c)
		return
	}

	shows, err := venueShows(database.DB, venue.ID)
	if err != nil {
		render.ServerError(c)
		return
	}

	render.HTML(c, http.StatusOK, "pages/show_venue.html", gin.H{
		"venue": buildVenuePage(venue, shows, time.Now().UTC()),
	})
}

// ------------------------------
// GET /venues/create
// ------------------------------
func NewVenueForm(c *gin.Context) {
	render.HTML(c, http.StatusOK, "forms/new_venue.html", gin.H{
		"states": forms.StateChoices,
		"genres": forms.GenreChoices,
	})
}

// ------------------------------
// POST /venues/create
// ------------------------------
func CreateVenue(c *gin.Context) {
	var req forms.VenueForm
	if err := c.ShouldBind(&req); err != nil {
		venue := booking.Venue{}
		applyForm(&venue, req)
		render.HTML(c, http.StatusBadRequest, "forms/new_venue.html", gin.H{
			"venue":  buildVenuePage(venue, nil, time.Now().UTC()),
			"states": forms.StateChoices,
			"genres": forms.GenreChoices,
			"errors": forms.Messages(err),
		})
		return
	}

	venue := booking.Venue{}
	applyForm(&venue, req)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&venue).Error
	})
	if err != nil {
		logger.GetLogger().Error("venue create failed", zap.Error(err))
		prometheus.BookingOperationsTotal.WithLabelValues("venue", "create", "error").Inc()
		render.Flash(c, "An error occurred. Venue "+req.Name+" could not be listed.")
		render.HTML(c, http.StatusInternalServerError, "pages/home.html", nil)
		return
	}

	prometheus.BookingOperationsTotal.WithLabelValues("venue", "create", "success").Inc()
	render.Flash(c, "Venue "+req.Name+" was successfully listed!")
	render.HTML(c, http.StatusOK, "pages/home.html", nil)
}

// ------------------------------
// GET /venues/:id/edit
// ------------------------------
func EditVenueForm(c *gin.Context) {
	id, ok := venueID(c)
	if !ok {
		return
	}

	var venue booking.Venue
	if err := database.DB.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.NotFound(c)
			return
		}
		render.ServerError(c)
		return
	}

	render.HTML(c, http.StatusOK, "forms/edit_venue.html", gin.H{
		"venue":  buildVenuePage(venue, nil, time.Now().UTC()),
		"states": forms.StateChoices,
		"genres": forms.GenreChoices,
	})
}

// ------------------------------
// POST /venues/:id/edit
// ------------------------------
func UpdateVenue(c *gin.Context) {
	id, ok := venueID(c)
	if !ok {
		return
	}

	var req forms.VenueForm
	if err := c.ShouldBind(&req); err != nil {
		venue := booking.Venue{ID: id}
		applyForm(&venue, req)
		render.HTML(c, http.StatusBadRequest, "forms/edit_venue.html", gin.H{
			"venue":  buildVenuePage(venue, nil, time.Now().UTC()),
			"states": forms.StateChoices,
			"genres": forms.GenreChoices,
			"errors": forms.Messages(err),
		})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var venue booking.Venue
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		applyForm(&venue, req)
		return tx.Save(&venue).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.NotFound(c)
			return
		}
		logger.GetLogger().Error("venue update failed", zap.Error(err))
		prometheus.BookingOperationsTotal.WithLabelValues("venue", "update", "error").Inc()
		render.Flash(c, "An error occurred. Venue "+req.Name+" could not be updated.")
		render.HTML(c, http.StatusInternalServerError, "pages/home.html", nil)
		return
	}

	prometheus.BookingOperationsTotal.WithLabelValues("venue", "update", "success").Inc()
	render.Flash(c, "Venue "+req.Name+" was successfully updated!")
	c.Redirect(http.StatusFound, "/venues/"+strconv.FormatUint(uint64(id), 10))
}

// ------------------------------
// DELETE /venues/:id
// ------------------------------
func DeleteVenue(c *gin.Context) {
	id, ok := venueID(c)
	if !ok {
		return
	}

	var name string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var venue booking.Venue
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		name = venue.Name
		// dependent shows go with the venue (FK cascade)
		return tx.Delete(&venue).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.NotFound(c)
			return
		}
		logger.GetLogger().Error("venue delete failed", zap.Error(err))
		prometheus.BookingOperationsTotal.WithLabelValues("venue", "delete", "error").Inc()
		render.Flash(c, "An error occurred. Venue could not be deleted.")
		render.HTML(c, http.StatusInternalServerError, "pages/home.html", nil)
		return
	}

	prometheus.BookingOperationsTotal.WithLabelValues("venue", "delete", "success").Inc()
	render.Flash(c, "Venue "+name+" has successfully been deleted!")
	render.HTML(c, http.StatusOK, "pages/home.html", nil)
}

// applyForm overwrites every venue field from the submitted form.
// Field-by-field on purpose: submitted keys never reach the model
// directly.
func applyForm(v *booking.Venue, f forms.VenueForm) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = booking.StrPtrIfNotEmpty(f.Phone)
	v.ImageLink = f.ImageLink
	v.Genres = booking.Genres(f.Genres)
	v.FacebookLink = booking.StrPtrIfNotEmpty(f.FacebookLink)
	v.Website = f.Website
	v.SeekingTalent = forms.Checkbox(f.SeekingTalent)
	v.SeekingDescription = f.SeekingDescription
}

func venueID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		render.NotFound(c)
		return 0, false
	}
	return uint(id), true
}
