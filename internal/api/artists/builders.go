package artists

import (
	"time"

	"booking-app/internal/domain/booking"
)

func partitionShows(shows []booking.Show, now time.Time) (past, upcoming []ArtistShowDTO) {
	for _, s := range shows {
		dto := ArtistShowDTO{
			VenueID:        s.Venue.ID,
			VenueName:      s.Venue.Name,
			VenueImageLink: s.Venue.ImageLink,
			StartTime:      s.StartTime.Format(booking.ISOTime),
		}
		if s.Upcoming(now) {
			upcoming = append(upcoming, dto)
		} else {
			past = append(past, dto)
		}
	}
	return past, upcoming
}

func buildArtistPage(a booking.Artist, shows []booking.Show, now time.Time) ArtistPageDTO {
	past, upcoming := partitionShows(shows, now)
	return ArtistPageDTO{
		ID:                 a.ID,
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              booking.StrDeref(a.Phone),
		ImageLink:          a.ImageLink,
		FacebookLink:       booking.StrDeref(a.FacebookLink),
		Website:            a.Website,
		Genres:             a.Genres,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func buildSearchResults(matches []booking.Artist, counts booking.UpcomingCounts) SearchResultsDTO {
	out := SearchResultsDTO{Count: len(matches), Data: make([]ArtistRefDTO, 0, len(matches))}
	for _, a := range matches {
		out.Data = append(out.Data, ArtistRefDTO{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: counts.Of(a.ID),
		})
	}
	return out
}
