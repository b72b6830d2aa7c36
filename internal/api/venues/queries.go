package venues

import (
	"time"

	"booking-app/internal/domain/booking"

	"gorm.io/gorm"
)

// upcomingCounts returns venue id -> number of shows starting strictly
// after now. Venues without upcoming shows are absent; the map type
// reports 0 for them.
func upcomingCounts(db *gorm.DB, now time.Time) (booking.UpcomingCounts, error) {
	var rows []struct {
		VenueID uint
		N       int
	}
	err := db.Model(&booking.Show{}).
		Select("venue_id, COUNT(*) AS n").
		Where("start_time > ?", now).
		Group("venue_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(booking.UpcomingCounts, len(rows))
	for _, r := range rows {
		counts[r.VenueID] = r.N
	}
	return counts, nil
}

// searchByName matches venue names by case-insensitive substring
// containment. An empty term matches every venue.
func searchByName(db *gorm.DB, term string) ([]booking.Venue, error) {
	var matches []booking.Venue
	err := db.Model(&booking.Venue{}).
		Select("id, name").
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Find(&matches).Error
	return matches, err
}

func venueShows(db *gorm.DB, venueID uint) ([]booking.Show, error) {
	var shows []booking.Show
	err := db.Preload("Artist").
		Where("venue_id = ?", venueID).
		Find(&shows).Error
	return shows, err
}
