package repository

import (
	"context"
	"time"

	"fyyur-backend/internal/database"
	"fyyur-backend/internal/models"

	"gorm.io/gorm"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	FindAllByStartTimeDesc(ctx context.Context) ([]models.Show, error)
}

type showRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewShowRepository(db *database.Database) ShowRepository {
	return &showRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *showRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts the show without checking that the referenced artist and
// venue ids exist; rejecting orphans is left to the database constraints.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Omit("Artist", "Venue").Create(show).Error
	})
}

func (r *showRepository) FindAllByStartTimeDesc(ctx context.Context) ([]models.Show, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Venue").
		Order("start_time DESC").
		Find(&shows).Error
	return shows, err
}
