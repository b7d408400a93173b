package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/giannis84/starwars-favorites/internal/models"
)

// MockRepository is a simple in-memory Repository intended for unit tests only.
// It enforces the same constraints as the PostgreSQL schema: globally unique
// favorite names and existing user/target references.
type MockRepository struct {
	mu         sync.RWMutex
	users      map[int]*models.User
	characters map[int]*models.Character
	planets    map[int]*models.Planet
	favorites  map[int]*models.Favorite
	nextID     int

	// Err, when set, is returned by every read and write.
	Err error
}

// NewMockRepository returns a MockRepository for testing.
func NewMockRepository() *MockRepository {
	return &MockRepository{
		users:      make(map[int]*models.User),
		characters: make(map[int]*models.Character),
		planets:    make(map[int]*models.Planet),
		favorites:  make(map[int]*models.Favorite),
		nextID:     1,
	}
}

func (r *MockRepository) AddUser(u *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *MockRepository) AddCharacter(c *models.Character) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.characters[c.ID] = c
}

func (r *MockRepository) AddPlanet(p *models.Planet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.planets[p.ID] = p
}

func (r *MockRepository) GetUserFavoritesFromDB(_ context.Context, userID int) ([]*models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	return r.userFavorites(userID), nil
}

func (r *MockRepository) GetFirstFavoriteFromDB(_ context.Context, userID int) (*models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	favorites := r.userFavorites(userID)
	if len(favorites) == 0 {
		return nil, ErrFavoriteNotFound
	}
	return favorites[0], nil
}

func (r *MockRepository) AddFavoriteInDB(_ context.Context, favorite *models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	for _, existing := range r.favorites {
		if existing.Name == favorite.Name {
			return ErrAlreadyExists
		}
	}
	if _, exists := r.users[favorite.UserID]; !exists {
		return ErrReferenceNotFound
	}
	if favorite.PlanetID != nil {
		if _, exists := r.planets[*favorite.PlanetID]; !exists {
			return ErrReferenceNotFound
		}
	}
	if favorite.CharacterID != nil {
		if _, exists := r.characters[*favorite.CharacterID]; !exists {
			return ErrReferenceNotFound
		}
	}

	favorite.ID = r.nextID
	favorite.CreatedAt = time.Now()
	r.nextID++

	stored := *favorite
	r.favorites[stored.ID] = &stored
	return nil
}

func (r *MockRepository) DeleteFavoriteTargetFromDB(_ context.Context, userID int, kind models.TargetKind, targetID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	for id, fav := range r.favorites {
		if fav.UserID == userID && fav.Targets(kind, targetID) {
			delete(r.favorites, id)
			return nil
		}
	}
	return ErrTargetNotInFavorites
}

func (r *MockRepository) ListCharactersFromDB(_ context.Context) ([]*models.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]*models.Character, 0, len(r.characters))
	for _, c := range r.characters {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MockRepository) GetCharacterFromDB(_ context.Context, id int) (*models.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	c, exists := r.characters[id]
	if !exists {
		return nil, ErrCharacterNotFound
	}
	return c, nil
}

func (r *MockRepository) ListPlanetsFromDB(_ context.Context) ([]*models.Planet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]*models.Planet, 0, len(r.planets))
	for _, p := range r.planets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MockRepository) GetPlanetFromDB(_ context.Context, id int) (*models.Planet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	p, exists := r.planets[id]
	if !exists {
		return nil, ErrPlanetNotFound
	}
	return p, nil
}

func (r *MockRepository) ListUsersFromDB(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MockRepository) GetUserFromDB(_ context.Context, id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	u, exists := r.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// userFavorites returns the user's favorites ordered by id. Callers hold r.mu.
func (r *MockRepository) userFavorites(userID int) []*models.Favorite {
	result := []*models.Favorite{}
	for _, fav := range r.favorites {
		if fav.UserID == userID {
			result = append(result, fav)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
