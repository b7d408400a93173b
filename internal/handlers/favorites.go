package handlers

import (
	"context"
	"errors"

	"github.com/giannis84/starwars-favorites/internal/database"
	"github.com/giannis84/starwars-favorites/internal/logging"
	"github.com/giannis84/starwars-favorites/internal/models"
)

// GetFirstFavorite returns the earliest favorite stored for the user.
func GetFirstFavorite(ctx context.Context, repo database.FavoritesRepository, userID int) (*models.Favorite, error) {
	return repo.GetFirstFavoriteFromDB(ctx, userID)
}

func GetUserFavorites(ctx context.Context, repo database.FavoritesRepository, userID int) ([]*models.Favorite, error) {
	return repo.GetUserFavoritesFromDB(ctx, userID)
}

// AddFavorite checks that the user and the target exist, then stores a new
// favorite. Name uniqueness is left to the store.
func AddFavorite(ctx context.Context, repo database.Repository, userID int, kind models.TargetKind, targetID int, name string) (*models.Favorite, error) {
	if err := validateNewFavorite(userID, kind, targetID, name); err != nil {
		return nil, err
	}

	if _, err := repo.GetUserFromDB(ctx, userID); err != nil {
		return nil, classifyRead("user", err)
	}
	if err := requireTarget(ctx, repo, kind, targetID); err != nil {
		return nil, err
	}

	favorite := models.NewFavorite(userID, kind, targetID, name)
	if err := repo.AddFavoriteInDB(ctx, favorite); err != nil {
		return nil, err
	}

	logging.Log(ctx).Layer("handlers").Op("AddFavorite").User(userID).
		Target(string(kind), targetID).Favorite(favorite.ID).Debug("favorite stored")
	return favorite, nil
}

// RemoveFavorite deletes the user's favorite pointing at targetID of the given kind.
// It returns ErrFavoriteNotFound when the user has no favorites at all and
// ErrTargetNotInFavorites when none of them points at the target.
func RemoveFavorite(ctx context.Context, repo database.FavoritesRepository, userID int, kind models.TargetKind, targetID int) error {
	if !kind.Valid() {
		return &ValidationError{Errors: []string{checkInList("type", string(kind), validTargetKinds)}}
	}

	// Only picks the error message. A concurrent delete between the two calls
	// surfaces as ErrTargetNotInFavorites, which is still a not-found.
	if _, err := repo.GetFirstFavoriteFromDB(ctx, userID); err != nil {
		return err
	}

	return repo.DeleteFavoriteTargetFromDB(ctx, userID, kind, targetID)
}

func requireTarget(ctx context.Context, store database.CatalogStore, kind models.TargetKind, targetID int) error {
	var err error
	switch kind {
	case models.TargetKindPlanet:
		_, err = store.GetPlanetFromDB(ctx, targetID)
	case models.TargetKindCharacter:
		_, err = store.GetCharacterFromDB(ctx, targetID)
	default:
		return errors.New("unknown target kind: " + string(kind))
	}
	if err != nil {
		return classifyRead(string(kind), err)
	}
	return nil
}
