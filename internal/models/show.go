package models

import "time"

// Show is a pure association between an artist and a venue with a start
// time. Shows are never updated; they are deleted only as a side effect of
// deleting their venue or artist.
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	Artist    *Artist   `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Venue     *Venue    `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
}

func (Show) TableName() string {
	return "shows"
}

// ShowListItem is one row of the /shows listing.
type ShowListItem struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// SearchResults is the payload of the venue and artist name searches.
type SearchResults struct {
	Count int            `json:"count"`
	Data  []SearchResult `json:"data"`
}

type SearchResult struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
