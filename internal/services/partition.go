package services

import (
	"sort"
	"time"

	"fyyur-backend/internal/models"
	"fyyur-backend/internal/utils"
)

// upcomingShowCount counts shows strictly after now. A show starting at
// exactly now is not upcoming.
func upcomingShowCount(shows []models.Show, now time.Time) int {
	count := 0
	for _, show := range shows {
		if show.StartTime.After(now) {
			count++
		}
	}
	return count
}

// groupVenuesByArea builds the venue listing: one group per unique
// (city, state) pair, sorted by state then city, each venue annotated with
// its upcoming show count.
func groupVenuesByArea(venues []models.Venue, now time.Time) []models.VenueArea {
	type location struct {
		city  string
		state string
	}

	seen := make(map[location]bool)
	var locations []location
	for _, venue := range venues {
		loc := location{city: venue.City, state: venue.State}
		if !seen[loc] {
			seen[loc] = true
			locations = append(locations, loc)
		}
	}

	sort.Slice(locations, func(i, j int) bool {
		if locations[i].state != locations[j].state {
			return locations[i].state < locations[j].state
		}
		return locations[i].city < locations[j].city
	})

	areas := make([]models.VenueArea, len(locations))
	index := make(map[location]int, len(locations))
	for i, loc := range locations {
		areas[i] = models.VenueArea{City: loc.city, State: loc.state, Venues: []models.VenueSummary{}}
		index[loc] = i
	}

	for _, venue := range venues {
		i := index[location{city: venue.City, state: venue.State}]
		areas[i].Venues = append(areas[i].Venues, models.VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcomingShowCount(venue.Shows, now),
		})
	}

	return areas
}

// splitVenueShows partitions a venue's shows for its detail page. A show
// starting at or before now is past, everything later is upcoming; the
// boundary show (start time exactly now) lands in past, the complement of
// the strict ">" rule the listing counter applies.
func splitVenueShows(shows []models.Show, now time.Time) (past, upcoming []models.ShowAtVenue) {
	past = []models.ShowAtVenue{}
	upcoming = []models.ShowAtVenue{}
	for _, show := range shows {
		entry := models.ShowAtVenue{
			ArtistID:  show.ArtistID,
			StartTime: utils.FormatShowTime(show.StartTime),
		}
		if show.Artist != nil {
			entry.ArtistName = show.Artist.Name
			entry.ArtistImageLink = show.Artist.ImageLink
		}
		if !show.StartTime.After(now) {
			past = append(past, entry)
		} else {
			upcoming = append(upcoming, entry)
		}
	}
	return past, upcoming
}

// splitArtistShows applies the same boundary rule for an artist's detail
// page, with venue attributes on each entry.
func splitArtistShows(shows []models.Show, now time.Time) (past, upcoming []models.ShowAtArtist) {
	past = []models.ShowAtArtist{}
	upcoming = []models.ShowAtArtist{}
	for _, show := range shows {
		entry := models.ShowAtArtist{
			VenueID:   show.VenueID,
			StartTime: utils.FormatShowTime(show.StartTime),
		}
		if show.Venue != nil {
			entry.VenueName = show.Venue.Name
			entry.VenueImageLink = show.Venue.ImageLink
		}
		if !show.StartTime.After(now) {
			past = append(past, entry)
		} else {
			upcoming = append(upcoming, entry)
		}
	}
	return past, upcoming
}

func genreNames(genres []models.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	return names
}
