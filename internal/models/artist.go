package models

type Artist struct {
	ID                 uint    `gorm:"primaryKey" json:"id" example:"4"`
	Name               string  `gorm:"not null;index" json:"name" example:"Guns N Petals"`
	City               string  `gorm:"not null;size:120" json:"city" example:"San Francisco"`
	State              string  `gorm:"not null;size:120" json:"state" example:"CA"`
	Phone              string  `gorm:"size:120" json:"phone"`
	ImageLink          string  `gorm:"size:500" json:"image_link"`
	FacebookLink       string  `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string  `gorm:"size:500" json:"website_link"`
	SeekingVenue       bool    `gorm:"default:false" json:"seeking_venue"`
	SeekingDescription string  `gorm:"size:250" json:"seeking_description"`
	Genres             []Genre `gorm:"many2many:artist_genres;" json:"genres,omitempty"`
	Shows              []Show  `gorm:"foreignKey:ArtistID" json:"shows,omitempty"`
}

func (Artist) TableName() string {
	return "artists"
}

type ArtistSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ShowAtArtist is one row of an artist page's past/upcoming show lists.
type ShowAtArtist struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type ArtistDetail struct {
	ID                 uint           `json:"id"`
	Name               string         `json:"name"`
	Genres             []string       `json:"genres"`
	City               string         `json:"city"`
	State              string         `json:"state"`
	Phone              string         `json:"phone"`
	Website            string         `json:"website"`
	FacebookLink       string         `json:"facebook_link"`
	SeekingVenue       bool           `json:"seeking_venue"`
	SeekingDescription string         `json:"seeking_description"`
	ImageLink          string         `json:"image_link"`
	PastShows          []ShowAtArtist `json:"past_shows"`
	UpcomingShows      []ShowAtArtist `json:"upcoming_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}
