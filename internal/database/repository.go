package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/giannis84/starwars-favorites/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("favorite already exists")

	// The errors below wrap ErrNotFound, so errors.Is(err, ErrNotFound) matches all of them.
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrCharacterNotFound    = fmt.Errorf("character %w", ErrNotFound)
	ErrPlanetNotFound       = fmt.Errorf("planet %w", ErrNotFound)
	ErrFavoriteNotFound     = fmt.Errorf("favorite %w", ErrNotFound)
	ErrTargetNotInFavorites = fmt.Errorf("favorite target %w", ErrNotFound)
	ErrReferenceNotFound    = fmt.Errorf("referenced user or catalog entry %w", ErrNotFound)
)

// FavoritesRepository defines the interface for managing user favorites storage.
type FavoritesRepository interface {
	GetUserFavoritesFromDB(ctx context.Context, userID int) ([]*models.Favorite, error)
	GetFirstFavoriteFromDB(ctx context.Context, userID int) (*models.Favorite, error)
	AddFavoriteInDB(ctx context.Context, favorite *models.Favorite) error
	DeleteFavoriteTargetFromDB(ctx context.Context, userID int, kind models.TargetKind, targetID int) error
}

// CatalogStore gives read-only access to characters and planets.
type CatalogStore interface {
	ListCharactersFromDB(ctx context.Context) ([]*models.Character, error)
	GetCharacterFromDB(ctx context.Context, id int) (*models.Character, error)
	ListPlanetsFromDB(ctx context.Context) ([]*models.Planet, error)
	GetPlanetFromDB(ctx context.Context, id int) (*models.Planet, error)
}

// UserStore gives read-only access to users.
type UserStore interface {
	ListUsersFromDB(ctx context.Context) ([]*models.User, error)
	GetUserFromDB(ctx context.Context, id int) (*models.User, error)
}

// Repository is everything the API needs from storage.
type Repository interface {
	FavoritesRepository
	CatalogStore
	UserStore
}

var (
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*MockRepository)(nil)
)
