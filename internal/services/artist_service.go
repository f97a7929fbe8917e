package services

import (
	"context"
	"time"

	"fyyur-backend/internal/models"
	"fyyur-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type ArtistService interface {
	ListArtists(ctx context.Context) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string) (*models.SearchResults, error)
	GetArtist(ctx context.Context, id uint) (*models.ArtistDetail, error)
	GetArtistRecord(ctx context.Context, id uint) (*models.Artist, error)
	CreateArtist(ctx context.Context, artist *models.Artist, genreNames []string) error
	UpdateArtist(ctx context.Context, id uint, artist *models.Artist, genreNames []string) error
	DeleteArtist(ctx context.Context, id uint) (*models.Artist, error)
}

type artistService struct {
	repo      repository.ArtistRepository
	genreRepo repository.GenreRepository
	logger    *logrus.Logger
}

func NewArtistService(repo repository.ArtistRepository, genreRepo repository.GenreRepository, logger *logrus.Logger) ArtistService {
	return &artistService{
		repo:      repo,
		genreRepo: genreRepo,
		logger:    logger,
	}
}

func (s *artistService) ListArtists(ctx context.Context) ([]models.ArtistSummary, error) {
	artists, err := s.repo.FindAllOrderedByName(ctx)
	if err != nil {
		return nil, err
	}

	summaries := []models.ArtistSummary{}
	for _, artist := range artists {
		summaries = append(summaries, models.ArtistSummary{ID: artist.ID, Name: artist.Name})
	}
	return summaries, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*models.SearchResults, error) {
	artists, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	results := &models.SearchResults{
		Count: len(artists),
		Data:  []models.SearchResult{},
	}
	for _, artist := range artists {
		results.Data = append(results.Data, models.SearchResult{ID: artist.ID, Name: artist.Name})
	}
	return results, nil
}

func (s *artistService) GetArtist(ctx context.Context, id uint) (*models.ArtistDetail, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := splitArtistShows(artist.Shows, time.Now())

	return &models.ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             genreNames(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.WebsiteLink,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *artistService) GetArtistRecord(ctx context.Context, id uint) (*models.Artist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *artistService) CreateArtist(ctx context.Context, artist *models.Artist, names []string) error {
	genres, err := resolveGenres(ctx, s.genreRepo, names)
	if err != nil {
		return err
	}
	artist.Genres = genres

	if err := s.repo.Create(ctx, artist); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{"id": artist.ID, "name": artist.Name}).Info("Artist listed")
	return nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id uint, artist *models.Artist, names []string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	genres, err := resolveGenres(ctx, s.genreRepo, names)
	if err != nil {
		return err
	}

	existing.Name = artist.Name
	existing.City = artist.City
	existing.State = artist.State
	existing.Phone = artist.Phone
	existing.ImageLink = artist.ImageLink
	existing.FacebookLink = artist.FacebookLink
	existing.WebsiteLink = artist.WebsiteLink
	existing.SeekingVenue = artist.SeekingVenue
	existing.SeekingDescription = artist.SeekingDescription
	existing.Genres = nil
	existing.Shows = nil

	if err := s.repo.Update(ctx, existing, genres); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{"id": id, "name": existing.Name}).Info("Artist updated")
	return nil
}

func (s *artistService) DeleteArtist(ctx context.Context, id uint) (*models.Artist, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, artist); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"id": id, "name": artist.Name, "shows": len(artist.Shows)}).Info("Artist deleted")
	return artist, nil
}
