package services

import (
	"context"
	"time"

	"fyyur-backend/internal/models"
	"fyyur-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type VenueService interface {
	ListVenues(ctx context.Context) ([]models.VenueArea, error)
	SearchVenues(ctx context.Context, term string) (*models.SearchResults, error)
	GetVenue(ctx context.Context, id uint) (*models.VenueDetail, error)
	GetVenueRecord(ctx context.Context, id uint) (*models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue, genreNames []string) error
	UpdateVenue(ctx context.Context, id uint, venue *models.Venue, genreNames []string) error
	DeleteVenue(ctx context.Context, id uint) (*models.Venue, error)
}

type venueService struct {
	repo      repository.VenueRepository
	genreRepo repository.GenreRepository
	logger    *logrus.Logger
}

func NewVenueService(repo repository.VenueRepository, genreRepo repository.GenreRepository, logger *logrus.Logger) VenueService {
	return &venueService{
		repo:      repo,
		genreRepo: genreRepo,
		logger:    logger,
	}
}

func (s *venueService) ListVenues(ctx context.Context) ([]models.VenueArea, error) {
	venues, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return groupVenuesByArea(venues, time.Now()), nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (*models.SearchResults, error) {
	venues, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	results := &models.SearchResults{
		Count: len(venues),
		Data:  []models.SearchResult{},
	}
	for _, venue := range venues {
		results.Data = append(results.Data, models.SearchResult{ID: venue.ID, Name: venue.Name})
	}
	return results, nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*models.VenueDetail, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := splitVenueShows(venue.Shows, time.Now())

	return &models.VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             genreNames(venue.Genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.WebsiteLink,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *venueService) GetVenueRecord(ctx context.Context, id uint) (*models.Venue, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue, names []string) error {
	genres, err := resolveGenres(ctx, s.genreRepo, names)
	if err != nil {
		return err
	}
	venue.Genres = genres

	if err := s.repo.Create(ctx, venue); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{"id": venue.ID, "name": venue.Name}).Info("Venue listed")
	return nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id uint, venue *models.Venue, names []string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	genres, err := resolveGenres(ctx, s.genreRepo, names)
	if err != nil {
		return err
	}

	existing.Name = venue.Name
	existing.City = venue.City
	existing.State = venue.State
	existing.Address = venue.Address
	existing.Phone = venue.Phone
	existing.ImageLink = venue.ImageLink
	existing.FacebookLink = venue.FacebookLink
	existing.WebsiteLink = venue.WebsiteLink
	existing.SeekingTalent = venue.SeekingTalent
	existing.SeekingDescription = venue.SeekingDescription
	existing.Genres = nil
	existing.Shows = nil

	if err := s.repo.Update(ctx, existing, genres); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{"id": id, "name": existing.Name}).Info("Venue updated")
	return nil
}

func (s *venueService) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, venue); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"id": id, "name": venue.Name, "shows": len(venue.Shows)}).Info("Venue deleted")
	return venue, nil
}
