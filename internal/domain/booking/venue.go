package booking

type Venue struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	City    string `gorm:"size:120;not null" json:"city"`
	State   string `gorm:"size:120;not null" json:"state"`
	Address string `gorm:"size:120;not null" json:"address"`

	// nullable so the unique indexes ignore venues without a value
	Phone        *string `gorm:"size:120;uniqueIndex:idx_venues_phone" json:"phone"`
	FacebookLink *string `gorm:"size:120;uniqueIndex:idx_venues_facebook_link" json:"facebook_link"`

	ImageLink string `gorm:"size:500" json:"image_link"`
	Website   string `gorm:"size:120" json:"website"`

	Genres Genres `gorm:"type:text" json:"genres"`

	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `gorm:"size:120" json:"seeking_description"`

	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE;" json:"-"`
}
