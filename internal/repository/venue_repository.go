package repository

import (
	"context"
	"errors"
	"time"

	"fyyur-backend/internal/database"
	"fyyur-backend/internal/models"

	"gorm.io/gorm"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, venue *models.Venue, genres []models.Genre) error
	Delete(ctx context.Context, venue *models.Venue) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindAll(ctx context.Context) ([]models.Venue, error)
	SearchByName(ctx context.Context, term string) ([]models.Venue, error)
}

type venueRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewVenueRepository(db *database.Database) VenueRepository {
	return &venueRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *venueRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create persists the venue together with its genre associations in one
// unit of work.
func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
}

// Update overwrites every mutable field and rebuilds the genre association
// set from scratch. Last writer wins; there is no concurrency check.
func (r *venueRepository) Update(ctx context.Context, venue *models.Venue, genres []models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit("Genres", "Shows").Save(venue).Error; err != nil {
			return err
		}
		return tx.Model(venue).Association("Genres").Replace(&genres)
	})
}

// Delete removes every show referencing the venue, its genre associations,
// and finally the venue row itself, all in one unit of work.
func (r *venueRepository) Delete(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", venue.ID).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		if err := tx.Model(venue).Association("Genres").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Venue{}, venue.ID).Error
	})
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Shows").
		Preload("Shows.Artist").
		First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).Preload("Shows").Find(&venues).Error
	return venues, err
}

func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).Where("name ILIKE ?", "%"+term+"%").Find(&venues).Error
	return venues, err
}
