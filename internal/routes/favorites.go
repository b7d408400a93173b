package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/giannis84/starwars-favorites/internal/database"
	"github.com/giannis84/starwars-favorites/internal/handlers"
	"github.com/giannis84/starwars-favorites/internal/logging"
	"github.com/giannis84/starwars-favorites/internal/models"
)

// maxBodyBytes caps the size of a request body.
const maxBodyBytes = 1 << 20

func getFirstFavoriteRoute(repo database.FavoritesRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, err := handlers.ParseID("userId", pathID(r, "userId"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		logging.Log(ctx).Layer("routes").Op("getFirstFavorite").User(userID).
			Info("received get favorite request")

		favorite, err := handlers.GetFirstFavorite(ctx, repo, userID)
		if err != nil {
			if errors.Is(err, database.ErrFavoriteNotFound) {
				err = notFound(err, "no favorites for user %d", userID)
			}
			writeError(w, r, err)
			return
		}

		logging.Log(ctx).Layer("routes").Op("getFirstFavorite").User(userID).Favorite(favorite.ID).
			Int("status_code", http.StatusOK).Info("favorite retrieved successfully")
		respondWithJSON(w, http.StatusOK, favorite)
	}
}

func getUserFavoritesRoute(repo database.FavoritesRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, err := handlers.ParseID("userId", pathID(r, "userId"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		favorites, err := handlers.GetUserFavorites(ctx, repo, userID)
		if err != nil {
			writeError(w, r, &handlers.RetrievalError{Resource: "favorites", Err: err})
			return
		}

		logging.Log(ctx).Layer("routes").Op("getUserFavorites").User(userID).
			Int("count", len(favorites)).Int("status_code", http.StatusOK).
			Info("favorites retrieved successfully")
		respondWithJSON(w, http.StatusOK, favorites)
	}
}

func addFavoriteRoute(repo database.Repository, kind models.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, err := handlers.ParseID("userId", pathID(r, "userId"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		targetID, err := handlers.ParseID(kindLabel(kind)+"Id", pathID(r, "targetId"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req AddFavoriteRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			logging.Log(ctx).Layer("routes").Op("addFavorite").User(userID).Err(err).
				Warn("failed to decode request body")
			respondWithError(w, http.StatusBadRequest, KindInvalidInput, "Invalid request body")
			return
		}

		logging.Log(ctx).Layer("routes").Op("addFavorite").User(userID).
			Target(string(kind), targetID).Str("name", req.Name).
			Info("received add favorite request")

		favorite, err := handlers.AddFavorite(ctx, repo, userID, kind, targetID, req.Name)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logging.Log(ctx).Layer("routes").Op("addFavorite").User(userID).
			Target(string(kind), targetID).Favorite(favorite.ID).Int("status_code", http.StatusOK).
			Info("favorite added successfully")
		respondWithJSON(w, http.StatusOK, AddFavoriteResponse{
			Msg:      fmt.Sprintf("Favorite %s added successfully!", kindLabel(kind)),
			Favorite: favorite,
		})
	}
}

func removeFavoriteRoute(repo database.FavoritesRepository, kind models.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, err := handlers.ParseID("userId", pathID(r, "userId"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		targetID, err := handlers.ParseID(kindLabel(kind)+"Id", pathID(r, "targetId"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		logging.Log(ctx).Layer("routes").Op("removeFavorite").User(userID).
			Target(string(kind), targetID).Info("received remove favorite request")

		err = handlers.RemoveFavorite(ctx, repo, userID, kind, targetID)
		switch {
		case errors.Is(err, database.ErrFavoriteNotFound):
			writeError(w, r, notFound(err, "no favorites for user %d", userID))
			return
		case errors.Is(err, database.ErrTargetNotInFavorites):
			writeError(w, r, notFound(err, "no %s in favorites", kindLabel(kind)))
			return
		case err != nil:
			writeError(w, r, err)
			return
		}

		logging.Log(ctx).Layer("routes").Op("removeFavorite").User(userID).
			Target(string(kind), targetID).Int("status_code", http.StatusOK).
			Info("favorite removed successfully")
		respondWithJSON(w, http.StatusOK, MessageResponse{
			Msg: fmt.Sprintf("Deleted %s from favorites successfully", kindLabel(kind)),
		})
	}
}
