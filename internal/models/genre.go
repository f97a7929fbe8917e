package models

// Genre names are a natural key for find-or-create lookups but carry no
// unique constraint; two uncoordinated creators of the same name can both
// insert a row.
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;index" json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}

type VenueGenre struct {
	VenueID uint `gorm:"primaryKey" json:"venue_id"`
	GenreID uint `gorm:"primaryKey" json:"genre_id"`
}

func (VenueGenre) TableName() string {
	return "venue_genres"
}

type ArtistGenre struct {
	ArtistID uint `gorm:"primaryKey" json:"artist_id"`
	GenreID  uint `gorm:"primaryKey" json:"genre_id"`
}

func (ArtistGenre) TableName() string {
	return "artist_genres"
}
