package services

import (
	"context"

	"fyyur-backend/internal/models"
	"fyyur-backend/internal/repository"
)

type GenreService interface {
	ListGenres(ctx context.Context) ([]models.Genre, error)
}

type genreService struct {
	repo repository.GenreRepository
}

func NewGenreService(repo repository.GenreRepository) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.repo.FindAll(ctx)
}

// resolveGenres maps submitted genre names to Genre rows, reusing a row
// when one with the exact name exists and inserting one otherwise.
func resolveGenres(ctx context.Context, repo repository.GenreRepository, names []string) ([]models.Genre, error) {
	genres := make([]models.Genre, 0, len(names))
	for _, name := range names {
		genre, err := repo.FindOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *genre)
	}
	return genres, nil
}
