package booking

type Artist struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	City  string `gorm:"size:120;not null" json:"city"`
	State string `gorm:"size:120;not null" json:"state"`

	// nullable so the unique indexes ignore artists without a value
	Phone        *string `gorm:"size:120;uniqueIndex:idx_artists_phone" json:"phone"`
	FacebookLink *string `gorm:"size:120;uniqueIndex:idx_artists_facebook_link" json:"facebook_link"`

	Genres Genres `gorm:"type:text" json:"genres"`

	ImageLink string `gorm:"size:500" json:"image_link"`
	Website   string `gorm:"size:120" json:"website"`

	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `gorm:"size:120" json:"seeking_description"`

	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE;" json:"-"`
}
