package services

import (
	"testing"
	"time"

	"fyyur-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func showAt(t time.Time, artistID, venueID uint) models.Show {
	return models.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: t,
		Artist:    &models.Artist{ID: artistID, Name: "artist", ImageLink: "http://img/a.png"},
		Venue:     &models.Venue{ID: venueID, Name: "venue", ImageLink: "http://img/v.png"},
	}
}

func TestUpcomingShowCountIsStrictlyAfterNow(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	shows := []models.Show{
		showAt(now.Add(-time.Hour), 1, 1),
		showAt(now, 1, 1),
		showAt(now.Add(time.Hour), 1, 1),
	}

	// the boundary show at exactly now does not count as upcoming
	assert.Equal(t, 1, upcomingShowCount(shows, now))
}

func TestShowAtExactlyNowIsPastInBothDetailViews(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	boundary := []models.Show{showAt(now, 1, 1)}

	venuePast, venueUpcoming := splitVenueShows(boundary, now)
	assert.Len(t, venuePast, 1)
	assert.Empty(t, venueUpcoming)

	artistPast, artistUpcoming := splitArtistShows(boundary, now)
	assert.Len(t, artistPast, 1)
	assert.Empty(t, artistUpcoming)

	// the "start_time > now" upcoming counter and the "start_time <= now"
	// past rule are complements: both place the boundary show in past
	assert.Equal(t, 0, upcomingShowCount(boundary, now))
}

func TestSplitVenueShowsPartitionsAroundNow(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	shows := []models.Show{
		showAt(now.Add(-2*time.Hour), 7, 3),
		showAt(now.Add(30*time.Minute), 8, 3),
	}

	past, upcoming := splitVenueShows(shows, now)

	assert.Len(t, past, 1)
	assert.Len(t, upcoming, 1)
	assert.Equal(t, uint(7), past[0].ArtistID)
	assert.Equal(t, "artist", past[0].ArtistName)
	assert.Equal(t, "http://img/a.png", past[0].ArtistImageLink)
	assert.Equal(t, uint(8), upcoming[0].ArtistID)
	assert.NotEmpty(t, past[0].StartTime)
}

func TestSplitArtistShowsCarriesVenueAttributes(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	shows := []models.Show{showAt(now.Add(time.Hour), 2, 9)}

	past, upcoming := splitArtistShows(shows, now)

	assert.Empty(t, past)
	assert.Len(t, upcoming, 1)
	assert.Equal(t, uint(9), upcoming[0].VenueID)
	assert.Equal(t, "venue", upcoming[0].VenueName)
	assert.Equal(t, "http://img/v.png", upcoming[0].VenueImageLink)
}

func TestGroupVenuesByAreaSortsByStateThenCity(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	venues := []models.Venue{
		{ID: 1, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 2, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA",
			Shows: []models.Show{showAt(now.Add(time.Hour), 1, 3), showAt(now, 1, 3)}},
	}

	areas := groupVenuesByArea(venues, now)

	assert.Len(t, areas, 2)
	assert.Equal(t, "CA", areas[0].State)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "NY", areas[1].State)

	assert.Len(t, areas[0].Venues, 2)
	assert.Len(t, areas[1].Venues, 1)

	// only the show strictly after now counts as upcoming
	assert.Equal(t, uint(3), areas[0].Venues[1].ID)
	assert.Equal(t, 1, areas[0].Venues[1].NumUpcomingShows)
	assert.Equal(t, 0, areas[0].Venues[0].NumUpcomingShows)
}

func TestGroupVenuesByAreaDeduplicatesLocations(t *testing.T) {
	now := time.Now()
	venues := []models.Venue{
		{ID: 1, Name: "A", City: "Austin", State: "TX"},
		{ID: 2, Name: "B", City: "Austin", State: "TX"},
		{ID: 3, Name: "C", City: "Austin", State: "TX"},
	}

	areas := groupVenuesByArea(venues, now)

	assert.Len(t, areas, 1)
	assert.Len(t, areas[0].Venues, 3)
}
