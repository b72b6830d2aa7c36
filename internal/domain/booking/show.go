package booking

import "time"

// Show links one artist to one venue at a start time. Start times are
// timezone-naive; classification into past/upcoming is derived at read
// time, never stored.
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`

	VenueID uint  `gorm:"not null;index" json:"venue_id"`
	Venue   Venue `json:"-"`

	ArtistID uint   `gorm:"not null;index" json:"artist_id"`
	Artist   Artist `json:"-"`
}

// ISOTime is the wire format for show start times.
const ISOTime = "2006-01-02T15:04:05"

// Upcoming reports whether the show starts strictly after now.
func (s Show) Upcoming(now time.Time) bool {
	return s.StartTime.After(now)
}
