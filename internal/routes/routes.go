package routes

import (
	"net/http"

	"github.com/giannis84/starwars-favorites/internal/config"
	"github.com/giannis84/starwars-favorites/internal/database"
	"github.com/giannis84/starwars-favorites/internal/models"
	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes sets up the catalog and favorites routes.
// HTTP concerns are handled here, while business logic is delegated to the handlers package.
func RegisterAPIRoutes(repo database.Repository, rl config.RateLimitConfig) func(r chi.Router) {
	return func(r chi.Router) {
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondWithError(w, http.StatusNotFound, KindNotFound, "resource not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			respondWithError(w, http.StatusMethodNotAllowed, KindInvalidInput, "method "+r.Method+" not allowed")
		})

		r.Group(func(r chi.Router) {
			r.Use(requireJSONAccept)
			if limiter := rateLimiter(rl); limiter != nil {
				r.Use(limiter)
			}

			r.Get("/people", listCharactersRoute(repo))
			r.Get("/people/{id:[0-9]+}", getCharacterRoute(repo))
			r.Get("/planets", listPlanetsRoute(repo))
			r.Get("/planets/{id:[0-9]+}", getPlanetRoute(repo))
			r.Get("/users", listUsersRoute(repo))
			r.Get("/users/{id:[0-9]+}", getUserRoute(repo))

			r.Get("/{userId:[0-9]+}/favorites", getFirstFavoriteRoute(repo))
			r.Get("/{userId:[0-9]+}/favorites/all", getUserFavoritesRoute(repo))

			r.With(requireJSONBody).Post("/{userId:[0-9]+}/favorites/planet/{targetId:[0-9]+}", addFavoriteRoute(repo, models.TargetKindPlanet))
			r.With(requireJSONBody).Post("/{userId:[0-9]+}/favorites/people/{targetId:[0-9]+}", addFavoriteRoute(repo, models.TargetKindCharacter))
			r.Delete("/{userId:[0-9]+}/favorites/planet/{targetId:[0-9]+}", removeFavoriteRoute(repo, models.TargetKindPlanet))
			r.Delete("/{userId:[0-9]+}/favorites/people/{targetId:[0-9]+}", removeFavoriteRoute(repo, models.TargetKindCharacter))
		})
	}
}

// MessageResponse is the body of a successful remove.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// AddFavoriteResponse is the body of a successful add.
type AddFavoriteResponse struct {
	Msg      string           `json:"msg"`
	Favorite *models.Favorite `json:"favorite"`
}

// AddFavoriteRequest is the body accepted by the add routes.
type AddFavoriteRequest struct {
	Name string `json:"name"`
}

func kindLabel(kind models.TargetKind) string {
	if kind == models.TargetKindCharacter {
		return "character"
	}
	return "planet"
}

// pathID reads a numeric path parameter already constrained by the route pattern.
func pathID(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}
