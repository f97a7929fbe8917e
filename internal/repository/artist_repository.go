package repository

import (
	"context"
	"errors"
	"time"

	"fyyur-backend/internal/database"
	"fyyur-backend/internal/models"

	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, artist *models.Artist, genres []models.Genre) error
	Delete(ctx context.Context, artist *models.Artist) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindAllOrderedByName(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]models.Artist, error)
}

type artistRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *artistRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
}

func (r *artistRepository) Update(ctx context.Context, artist *models.Artist, genres []models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit("Genres", "Shows").Save(artist).Error; err != nil {
			return err
		}
		return tx.Model(artist).Association("Genres").Replace(&genres)
	})
}

func (r *artistRepository) Delete(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", artist.ID).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		if err := tx.Model(artist).Association("Genres").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Artist{}, artist.ID).Error
	})
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Shows").
		Preload("Shows.Venue").
		First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAllOrderedByName(ctx context.Context) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).Order("name ASC").Find(&artists).Error
	return artists, err
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).Where("name ILIKE ?", "%"+term+"%").Find(&artists).Error
	return artists, err
}
