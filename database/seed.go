package database

import (
	"time"

	"booking-app/internal/domain/booking"

	"gorm.io/gorm"
)

// Seed loads the demo fixture set: three venues, three artists and
// five shows. Idempotent only on an empty database.
func Seed(db *gorm.DB) error {
	venues := []booking.Venue{
		{
			ID:           1,
			Name:         "The Musical Hop",
			Address:      "1015 Folsom Street",
			City:         "San Francisco",
			State:        "CA",
			Genres:       booking.Genres{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			Phone:        booking.StrPtrIfNotEmpty("123-123-1234"),
			Website:      "https://www.themusicalhop.com",
			FacebookLink: booking.StrPtrIfNotEmpty("https://www.facebook.com/TheMusicalHop"),
			SeekingTalent: true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink: "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=400&q=60",
		},
		{
			ID:           2,
			Name:         "The Dueling Pianos Bar",
			Address:      "335 Delancey Street",
			City:         "New York",
			State:        "NY",
			Genres:       booking.Genres{"Classical", "R&B", "Hip-Hop"},
			Phone:        booking.StrPtrIfNotEmpty("914-003-1132"),
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: booking.StrPtrIfNotEmpty("https://www.facebook.com/theduelingpianos"),
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=750&q=80",
		},
		{
			ID:           3,
			Name:         "Park Square Live Music & Coffee",
			Address:      "34 Whiskey Moore Ave",
			City:         "San Francisco",
			State:        "CA",
			Genres:       booking.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Phone:        booking.StrPtrIfNotEmpty("415-000-1234"),
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: booking.StrPtrIfNotEmpty("https://www.facebook.com/ParkSquareLiveMusicAndCoffee"),
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=747&q=80",
		},
	}

	artists := []booking.Artist{
		{
			ID:           4,
			Name:         "Guns N Petals",
			Genres:       booking.Genres{"Rock n Roll"},
			City:         "San Francisco",
			State:        "CA",
			Phone:        booking.StrPtrIfNotEmpty("326-123-5000"),
			Website:      "https://www.gunsnpetalsband.com",
			FacebookLink: booking.StrPtrIfNotEmpty("https://www.facebook.com/GunsNPetals"),
			SeekingVenue: true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink: "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=300&q=80",
		},
		{
			ID:           5,
			Name:         "Matt Quevedo",
			Genres:       booking.Genres{"Jazz"},
			City:         "New York",
			State:        "NY",
			Phone:        booking.StrPtrIfNotEmpty("300-400-5000"),
			FacebookLink: booking.StrPtrIfNotEmpty("https://www.facebook.com/mattquevedo923251523"),
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=334&q=80",
		},
		{
			ID:        6,
			Name:      "The Wild Sax Band",
			Genres:    booking.Genres{"Jazz", "Classical"},
			City:      "San Francisco",
			State:     "CA",
			Phone:        booking.StrPtrIfNotEmpty("432-325-5432"),
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=794&q=80",
		},
	}

	shows := []booking.Show{
		{VenueID: 1, ArtistID: 4, StartTime: mustTime("2019-05-21T21:30:00")},
		{VenueID: 3, ArtistID: 5, StartTime: mustTime("2019-06-15T23:00:00")},
		{VenueID: 3, ArtistID: 6, StartTime: mustTime("2035-04-01T20:00:00")},
		{VenueID: 3, ArtistID: 6, StartTime: mustTime("2035-04-08T20:00:00")},
		{VenueID: 3, ArtistID: 6, StartTime: mustTime("2035-04-15T20:00:00")},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range venues {
			if err := tx.Create(&venues[i]).Error; err != nil {
				return err
			}
		}
		for i := range artists {
			if err := tx.Create(&artists[i]).Error; err != nil {
				return err
			}
		}
		for i := range shows {
			if err := tx.Create(&shows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func mustTime(s string) time.Time {
	t, err := time.Parse(booking.ISOTime, s)
	if err != nil {
		panic(err)
	}
	return t
}
