package handlers

import (
	"errors"
	"testing"

	"github.com/giannis84/starwars-favorites/internal/database"
)

func TestCatalogLookups(t *testing.T) {
	repo := seededRepo()
	ctx := testContext()

	characters, err := ListCharacters(ctx, repo)
	if err != nil || len(characters) != 1 {
		t.Fatalf("expected 1 character, got %v (err %v)", characters, err)
	}
	planets, err := ListPlanets(ctx, repo)
	if err != nil || len(planets) != 1 {
		t.Fatalf("expected 1 planet, got %v (err %v)", planets, err)
	}
	users, err := ListUsers(ctx, repo)
	if err != nil || len(users) != 2 {
		t.Fatalf("expected 2 users, got %v (err %v)", users, err)
	}

	if p, err := GetPlanet(ctx, repo, 5); err != nil || p.Name != "Tatooine" {
		t.Errorf("expected Tatooine, got %v (err %v)", p, err)
	}
	if c, err := GetCharacter(ctx, repo, 1); err != nil || c.Name != "Luke Skywalker" {
		t.Errorf("expected Luke Skywalker, got %v (err %v)", c, err)
	}
	if u, err := GetUser(ctx, repo, 2); err != nil || u.Email != "leia@rebels.org" {
		t.Errorf("expected leia, got %v (err %v)", u, err)
	}
}

func TestCatalogLookups_NotFound(t *testing.T) {
	repo := seededRepo()
	ctx := testContext()

	if _, err := GetPlanet(ctx, repo, 999); !errors.Is(err, database.ErrPlanetNotFound) {
		t.Errorf("expected ErrPlanetNotFound, got %v", err)
	}
	if _, err := GetCharacter(ctx, repo, 999); !errors.Is(err, database.ErrCharacterNotFound) {
		t.Errorf("expected ErrCharacterNotFound, got %v", err)
	}
	if _, err := GetUser(ctx, repo, 999); !errors.Is(err, database.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCatalogLookups_RetrievalFailure(t *testing.T) {
	repo := seededRepo()
	repo.Err = errors.New("connection reset")
	ctx := testContext()

	calls := map[string]func() error{
		"ListCharacters": func() error { _, err := ListCharacters(ctx, repo); return err },
		"GetCharacter":   func() error { _, err := GetCharacter(ctx, repo, 1); return err },
		"ListPlanets":    func() error { _, err := ListPlanets(ctx, repo); return err },
		"GetPlanet":      func() error { _, err := GetPlanet(ctx, repo, 5); return err },
		"ListUsers":      func() error { _, err := ListUsers(ctx, repo); return err },
		"GetUser":        func() error { _, err := GetUser(ctx, repo, 1); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			var retErr *RetrievalError
			if !errors.As(err, &retErr) {
				t.Fatalf("expected *RetrievalError, got %T: %v", err, err)
			}
			if !errors.Is(err, repo.Err) {
				t.Errorf("expected RetrievalError to unwrap to the store error")
			}
		})
	}
}
