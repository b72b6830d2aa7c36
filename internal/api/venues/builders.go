package venues

import (
	"time"

	"booking-app/internal/domain/booking"
)

// groupByArea groups venues by exact (city, state) pairs. Groups and
// the venues inside them keep the order the rows arrived in, so a
// caller fetching ordered by id gets reproducible output.
func groupByArea(list []booking.Venue, counts booking.UpcomingCounts) []AreaDTO {
	type key struct{ city, state string }

	index := make(map[key]int)
	areas := make([]AreaDTO, 0)
	for _, v := range list {
		k := key{v.City, v.State}
		i, seen := index[k]
		if !seen {
			i = len(areas)
			index[k] = i
			areas = append(areas, AreaDTO{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, VenueRefDTO{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts.Of(v.ID),
		})
	}
	return areas
}

// partitionShows splits a venue's shows into past and upcoming against
// the reference instant. Every show lands in exactly one bucket.
func partitionShows(shows []booking.Show, now time.Time) (past, upcoming []VenueShowDTO) {
	for _, s := range shows {
		dto := VenueShowDTO{
			ArtistID:        s.Artist.ID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       s.StartTime.Format(booking.ISOTime),
		}
		if s.Upcoming(now) {
			upcoming = append(upcoming, dto)
		} else {
			past = append(past, dto)
		}
	}
	return past, upcoming
}

func buildVenuePage(v booking.Venue, shows []booking.Show, now time.Time) VenuePageDTO {
	past, upcoming := partitionShows(shows, now)
	return VenuePageDTO{
		ID:                 v.ID,
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              booking.StrDeref(v.Phone),
		ImageLink:          v.ImageLink,
		FacebookLink:       booking.StrDeref(v.FacebookLink),
		Website:            v.Website,
		Genres:             v.Genres,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func buildSearchResults(matches []booking.Venue, counts booking.UpcomingCounts) SearchResultsDTO {
	out := SearchResultsDTO{Count: len(matches), Data: make([]VenueRefDTO, 0, len(matches))}
	for _, v := range matches {
		out.Data = append(out.Data, VenueRefDTO{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts.Of(v.ID),
		})
	}
	return out
}
