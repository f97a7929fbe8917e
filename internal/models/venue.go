package models

type Venue struct {
	ID                 uint    `gorm:"primaryKey" json:"id" example:"1"`
	Name               string  `gorm:"not null;index" json:"name" example:"The Musical Hop"`
	City               string  `gorm:"not null;size:120" json:"city" example:"San Francisco"`
	State              string  `gorm:"not null;size:120" json:"state" example:"CA"`
	Address            string  `gorm:"not null;size:120" json:"address" example:"1015 Folsom Street"`
	Phone              string  `gorm:"size:120" json:"phone" example:"123-123-1234"`
	ImageLink          string  `gorm:"size:500" json:"image_link"`
	FacebookLink       string  `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string  `gorm:"size:500" json:"website_link"`
	SeekingTalent      bool    `gorm:"default:false" json:"seeking_talent"`
	SeekingDescription string  `gorm:"size:250" json:"seeking_description"`
	Genres             []Genre `gorm:"many2many:venue_genres;" json:"genres,omitempty"`
	Shows              []Show  `gorm:"foreignKey:VenueID" json:"shows,omitempty"`
}

func (Venue) TableName() string {
	return "venues"
}

// VenueArea groups the venues of one (city, state) pair for the listing page.
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ShowAtVenue is one row of a venue page's past/upcoming show lists.
type ShowAtVenue struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type VenueDetail struct {
	ID                 uint          `json:"id"`
	Name               string        `json:"name"`
	Genres             []string      `json:"genres"`
	Address            string        `json:"address"`
	City               string        `json:"city"`
	State              string        `json:"state"`
	Phone              string        `json:"phone"`
	Website            string        `json:"website"`
	FacebookLink       string        `json:"facebook_link"`
	SeekingTalent      bool          `json:"seeking_talent"`
	SeekingDescription string        `json:"seeking_description"`
	ImageLink          string        `json:"image_link"`
	PastShows          []ShowAtVenue `json:"past_shows"`
	UpcomingShows      []ShowAtVenue `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}
