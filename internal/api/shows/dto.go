package shows

// ShowRowDTO is one denormalized row on the shows listing page.
type ShowRowDTO struct {
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}
