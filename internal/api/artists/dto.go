package artists

type ArtistRefDTO struct {
	ID               uint
	Name             string
	NumUpcomingShows int
}

type SearchResultsDTO struct {
	Count int
	Data  []ArtistRefDTO
}

// ArtistShowDTO is one show entry on the artist detail page, carrying
// the venue side of the show.
type ArtistShowDTO struct {
	VenueID        uint
	VenueName      string
	VenueImageLink string
	StartTime      string
}

type ArtistPageDTO struct {
	ID                 uint
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             []string
	SeekingVenue       bool
	SeekingDescription string

	PastShows          []ArtistShowDTO
	UpcomingShows      []ArtistShowDTO
	PastShowsCount     int
	UpcomingShowsCount int
}
