package venues

// ---------- view models

type VenueRefDTO struct {
	ID               uint
	Name             string
	NumUpcomingShows int
}

// AreaDTO is one (city, state) group on the venues listing page.
type AreaDTO struct {
	City   string
	State  string
	Venues []VenueRefDTO
}

type SearchResultsDTO struct {
	Count int
	Data  []VenueRefDTO
}

// VenueShowDTO is one show entry on the venue detail page, carrying
// the artist side of the show.
type VenueShowDTO struct {
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

type VenuePageDTO struct {
	ID                 uint
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             []string
	SeekingTalent      bool
	SeekingDescription string

	PastShows          []VenueShowDTO
	UpcomingShows      []VenueShowDTO
	PastShowsCount     int
	UpcomingShowsCount int
}
