package services

import (
	"context"
	"testing"
	"time"

	"fyyur-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShowRepo struct {
	shows  []*models.Show
	nextID uint
}

func (f *fakeShowRepo) Create(_ context.Context, show *models.Show) error {
	f.nextID++
	show.ID = f.nextID
	f.shows = append(f.shows, show)
	return nil
}

func (f *fakeShowRepo) FindAllByStartTimeDesc(_ context.Context) ([]models.Show, error) {
	out := make([]models.Show, 0, len(f.shows))
	for _, show := range f.shows {
		out = append(out, *show)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].StartTime.After(out[i].StartTime) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func TestCreateShowDefaultsStartTimeToNow(t *testing.T) {
	showRepo := &fakeShowRepo{}
	svc := NewShowService(showRepo, testLogger())

	before := time.Now().UTC()
	show := &models.Show{ArtistID: 1, VenueID: 2}
	require.NoError(t, svc.CreateShow(context.Background(), show))
	after := time.Now().UTC()

	assert.NotZero(t, show.ID)
	assert.False(t, show.StartTime.Before(before))
	assert.False(t, show.StartTime.After(after))
}

func TestCreateShowKeepsGivenStartTime(t *testing.T) {
	showRepo := &fakeShowRepo{}
	svc := NewShowService(showRepo, testLogger())

	start := time.Date(2026, 9, 15, 20, 0, 0, 0, time.UTC)
	show := &models.Show{ArtistID: 1, VenueID: 2, StartTime: start}
	require.NoError(t, svc.CreateShow(context.Background(), show))

	assert.True(t, show.StartTime.Equal(start))
}

func TestListShowsMapsItemsNewestFirst(t *testing.T) {
	showRepo := &fakeShowRepo{}
	svc := NewShowService(showRepo, testLogger())

	older := showAt(time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC), 1, 2)
	newer := showAt(time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC), 3, 4)
	require.NoError(t, showRepo.Create(context.Background(), &older))
	require.NoError(t, showRepo.Create(context.Background(), &newer))

	items, err := svc.ListShows(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, uint(3), items[0].ArtistID)
	assert.Equal(t, uint(4), items[0].VenueID)
	assert.Equal(t, "artist", items[0].ArtistName)
	assert.Equal(t, "venue", items[0].VenueName)
	assert.Equal(t, "http://img/a.png", items[0].ArtistImageLink)
	assert.NotEmpty(t, items[0].StartTime)
	assert.Equal(t, uint(1), items[1].ArtistID)
}

func TestListShowsTolerateMissingPreloads(t *testing.T) {
	showRepo := &fakeShowRepo{}
	svc := NewShowService(showRepo, testLogger())

	require.NoError(t, showRepo.Create(context.Background(), &models.Show{
		ArtistID: 1, VenueID: 2, StartTime: time.Now(),
	}))

	items, err := svc.ListShows(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].ArtistName)
	assert.Empty(t, items[0].VenueName)
}
