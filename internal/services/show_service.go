package services

import (
	"context"
	"time"

	"fyyur-backend/internal/models"
	"fyyur-backend/internal/repository"
	"fyyur-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

type ShowService interface {
	ListShows(ctx context.Context) ([]models.ShowListItem, error)
	CreateShow(ctx context.Context, show *models.Show) error
}

type showService struct {
	repo   repository.ShowRepository
	logger *logrus.Logger
}

func NewShowService(repo repository.ShowRepository, logger *logrus.Logger) ShowService {
	return &showService{
		repo:   repo,
		logger: logger,
	}
}

func (s *showService) ListShows(ctx context.Context) ([]models.ShowListItem, error) {
	shows, err := s.repo.FindAllByStartTimeDesc(ctx)
	if err != nil {
		return nil, err
	}

	items := []models.ShowListItem{}
	for _, show := range shows {
		item := models.ShowListItem{
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: utils.FormatShowTime(show.StartTime),
		}
		if show.Venue != nil {
			item.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			item.ArtistName = show.Artist.Name
			item.ArtistImageLink = show.Artist.ImageLink
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *showService) CreateShow(ctx context.Context, show *models.Show) error {
	if show.StartTime.IsZero() {
		show.StartTime = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, show); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"id":        show.ID,
		"artist_id": show.ArtistID,
		"venue_id":  show.VenueID,
	}).Info("Show listed")
	return nil
}
