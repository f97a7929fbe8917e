package services

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"fyyur-backend/internal/models"
	"fyyur-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArtistRepo struct {
	artists          []*models.Artist
	nextID           uint
	lastUpdateGenres []models.Genre
}

func (f *fakeArtistRepo) Create(_ context.Context, artist *models.Artist) error {
	f.nextID++
	artist.ID = f.nextID
	f.artists = append(f.artists, artist)
	return nil
}

func (f *fakeArtistRepo) Update(_ context.Context, artist *models.Artist, genres []models.Genre) error {
	f.lastUpdateGenres = genres
	for i, existing := range f.artists {
		if existing.ID == artist.ID {
			updated := *artist
			updated.Genres = genres
			f.artists[i] = &updated
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeArtistRepo) Delete(_ context.Context, artist *models.Artist) error {
	for i, existing := range f.artists {
		if existing.ID == artist.ID {
			f.artists = append(f.artists[:i], f.artists[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeArtistRepo) FindByID(_ context.Context, id uint) (*models.Artist, error) {
	for _, artist := range f.artists {
		if artist.ID == id {
			a := *artist
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeArtistRepo) FindAllOrderedByName(_ context.Context) ([]models.Artist, error) {
	out := make([]models.Artist, 0, len(f.artists))
	for _, artist := range f.artists {
		out = append(out, *artist)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeArtistRepo) SearchByName(_ context.Context, term string) ([]models.Artist, error) {
	var out []models.Artist
	for _, artist := range f.artists {
		if strings.Contains(strings.ToLower(artist.Name), strings.ToLower(term)) {
			out = append(out, *artist)
		}
	}
	return out, nil
}

func TestListArtistsOrderedByName(t *testing.T) {
	artistRepo := &fakeArtistRepo{}
	svc := NewArtistService(artistRepo, newFakeGenreRepo(), testLogger())

	for _, name := range []string{"The Wild Sax Band", "Guns N Petals", "Matt Quevedo"} {
		require.NoError(t, artistRepo.Create(context.Background(), &models.Artist{Name: name, City: "SF", State: "CA"}))
	}

	summaries, err := svc.ListArtists(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "Guns N Petals", summaries[0].Name)
	assert.Equal(t, "Matt Quevedo", summaries[1].Name)
	assert.Equal(t, "The Wild Sax Band", summaries[2].Name)
}

func TestUpdateArtistRebuildsGenreSet(t *testing.T) {
	artistRepo := &fakeArtistRepo{}
	genreRepo := newFakeGenreRepo()
	svc := NewArtistService(artistRepo, genreRepo, testLogger())

	seed := &models.Artist{Name: "Guns N Petals", City: "SF", State: "CA"}
	require.NoError(t, svc.CreateArtist(context.Background(), seed, []string{"Rock n Roll"}))
	require.Len(t, artistRepo.artists[0].Genres, 1)

	err := svc.UpdateArtist(context.Background(), seed.ID,
		&models.Artist{Name: "Guns N Petals", City: "SF", State: "CA"}, []string{"Jazz"})
	require.NoError(t, err)
	require.Len(t, artistRepo.lastUpdateGenres, 1)
	assert.Equal(t, "Jazz", artistRepo.lastUpdateGenres[0].Name)

	// a second edit with no genres leaves none behind
	err = svc.UpdateArtist(context.Background(), seed.ID,
		&models.Artist{Name: "Guns N Petals", City: "SF", State: "CA"}, nil)
	require.NoError(t, err)
	assert.Empty(t, artistRepo.lastUpdateGenres)
	assert.Empty(t, artistRepo.artists[0].Genres)
}

func TestGetArtistDetailSplitsShows(t *testing.T) {
	artistRepo := &fakeArtistRepo{}
	svc := NewArtistService(artistRepo, newFakeGenreRepo(), testLogger())

	seed := &models.Artist{
		Name: "Matt Quevedo", City: "New York", State: "NY",
		Genres: []models.Genre{{ID: 1, Name: "Jazz"}},
		Shows: []models.Show{
			showAt(time.Now().Add(-24*time.Hour), 2, 3),
			showAt(time.Now().Add(24*time.Hour), 2, 3),
		},
	}
	require.NoError(t, artistRepo.Create(context.Background(), seed))

	detail, err := svc.GetArtist(context.Background(), seed.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jazz"}, detail.Genres)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)

	_, err = svc.GetArtist(context.Background(), 77)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteArtistNotFound(t *testing.T) {
	svc := NewArtistService(&fakeArtistRepo{}, newFakeGenreRepo(), testLogger())

	_, err := svc.DeleteArtist(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
