package artists

import (
	"time"

	"booking-app/internal/domain/booking"

	"gorm.io/gorm"
)

func upcomingCounts(db *gorm.DB, now time.Time) (booking.UpcomingCounts, error) {
	var rows []struct {
		ArtistID uint
		N        int
	}
	err := db.Model(&booking.Show{}).
		Select("artist_id, COUNT(*) AS n").
		Where("start_time > ?", now).
		Group("artist_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(booking.UpcomingCounts, len(rows))
	for _, r := range rows {
		counts[r.ArtistID] = r.N
	}
	return counts, nil
}

func searchByName(db *gorm.DB, term string) ([]booking.Artist, error) {
	var matches []booking.Artist
	err := db.Model(&booking.Artist{}).
		Select("id, name").
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Find(&matches).Error
	return matches, err
}

func artistShows(db *gorm.DB, artistID uint) ([]booking.Show, error) {
	var shows []booking.Show
	err := db.Preload("Venue").
		Where("artist_id = ?", artistID).
		Find(&shows).Error
	return shows, err
}
