package handlers

import (
	"context"
	"errors"

	"github.com/giannis84/starwars-favorites/internal/database"
	"github.com/giannis84/starwars-favorites/internal/models"
)

func ListCharacters(ctx context.Context, store database.CatalogStore) ([]*models.Character, error) {
	characters, err := store.ListCharactersFromDB(ctx)
	if err != nil {
		return nil, &RetrievalError{Resource: "people", Err: err}
	}
	return characters, nil
}

func GetCharacter(ctx context.Context, store database.CatalogStore, id int) (*models.Character, error) {
	character, err := store.GetCharacterFromDB(ctx, id)
	if err != nil {
		return nil, classifyRead("character", err)
	}
	return character, nil
}

func ListPlanets(ctx context.Context, store database.CatalogStore) ([]*models.Planet, error) {
	planets, err := store.ListPlanetsFromDB(ctx)
	if err != nil {
		return nil, &RetrievalError{Resource: "planets", Err: err}
	}
	return planets, nil
}

func GetPlanet(ctx context.Context, store database.CatalogStore, id int) (*models.Planet, error) {
	planet, err := store.GetPlanetFromDB(ctx, id)
	if err != nil {
		return nil, classifyRead("planet", err)
	}
	return planet, nil
}

func ListUsers(ctx context.Context, store database.UserStore) ([]*models.User, error) {
	users, err := store.ListUsersFromDB(ctx)
	if err != nil {
		return nil, &RetrievalError{Resource: "users", Err: err}
	}
	return users, nil
}

func GetUser(ctx context.Context, store database.UserStore, id int) (*models.User, error) {
	user, err := store.GetUserFromDB(ctx, id)
	if err != nil {
		return nil, classifyRead("user", err)
	}
	return user, nil
}

// classifyRead passes not-found errors through and turns anything else into a RetrievalError.
func classifyRead(resource string, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return err
	}
	return &RetrievalError{Resource: resource, Err: err}
}
