package routes

import (
	"net/http"

	"github.com/giannis84/starwars-favorites/internal/database"
	"github.com/giannis84/starwars-favorites/internal/handlers"
	"github.com/giannis84/starwars-favorites/internal/logging"
)

func listCharactersRoute(store database.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characters, err := handlers.ListCharacters(r.Context(), store)
		if err != nil {
			writeError(w, r, err)
			return
		}
		logging.Log(r.Context()).Layer("routes").Op("listCharacters").
			Int("count", len(characters)).Debug("characters listed")
		respondWithJSON(w, http.StatusOK, characters)
	}
}

func getCharacterRoute(store database.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := handlers.ParseID("id", pathID(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		character, err := handlers.GetCharacter(r.Context(), store, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, character)
	}
}

func listPlanetsRoute(store database.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planets, err := handlers.ListPlanets(r.Context(), store)
		if err != nil {
			writeError(w, r, err)
			return
		}
		logging.Log(r.Context()).Layer("routes").Op("listPlanets").
			Int("count", len(planets)).Debug("planets listed")
		respondWithJSON(w, http.StatusOK, planets)
	}
}

func getPlanetRoute(store database.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := handlers.ParseID("id", pathID(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		planet, err := handlers.GetPlanet(r.Context(), store, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, planet)
	}
}

func listUsersRoute(store database.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := handlers.ListUsers(r.Context(), store)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, users)
	}
}

func getUserRoute(store database.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := handlers.ParseID("id", pathID(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		user, err := handlers.GetUser(r.Context(), store, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, user)
	}
}
