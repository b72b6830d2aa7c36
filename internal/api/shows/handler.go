package shows

import (
	"net/http"

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
// GET /shows
// ------------------------------
func ListShows(c *gin.Context) {
	var list []booking.Show
	if err := database.DB.
		Preload("Venue").
		Preload("Artist").
		Order("id ASC").
		Find(&list).Error; err != nil {
		render.ServerError(c)
		return
	}

	rows := make([]ShowRowDTO, 0, len(list))
	for _, s := range list {
		rows = append(rows, ShowRowDTO{
			VenueID:         s.Venue.ID,
			VenueName:       s.Venue.Name,
			ArtistID:        s.Artist.ID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       s.StartTime.Format(booking.ISOTime),
		})
	}

	render.HTML(c, http.StatusOK, "pages/shows.html", gin.H{
		"shows": rows,
	})
}

// ------------------------------
// GET /shows/create
// ------------------------------
func NewShowForm(c *gin.Context) {
	render.HTML(c, http.StatusOK, "forms/new_show.html", nil)
}

// ------------------------------
// POST /shows/create
// ------------------------------
func CreateShow(c *gin.Context) {
	var req forms.ShowForm
	if err := c.ShouldBind(&req); err != nil {
		render.HTML(c, http.StatusBadRequest, "forms/new_show.html", gin.H{
			"errors": forms.Messages(err),
		})
		return
	}

	startTime, err := req.Time()
	if err != nil {
		render.HTML(c, http.StatusBadRequest, "forms/new_show.html", gin.H{
			"errors": []string{"start_time must be a valid timestamp."},
		})
		return
	}

	show := booking.Show{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: startTime,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&show).Error
	})
	if err != nil {
		logger.GetLogger().Error("show create failed", zap.Error(err))
		prometheus.BookingOperationsTotal.WithLabelValues("show", "create", "error").Inc()
		render.Flash(c, "An error occurred. Show could not be listed.")
		render.HTML(c, http.StatusInternalServerError, "pages/home.html", nil)
		return
	}

	prometheus.BookingOperationsTotal.WithLabelValues("show", "create", "success").Inc()
	render.Flash(c, "Show was successfully listed!")
	render.HTML(c, http.StatusOK, "pages/home.html", nil)
}
