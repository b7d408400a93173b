package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/giannis84/starwars-favorites/internal/models"
	"github.com/lib/pq"
)

// PostgreSQL error codes mapped to repository errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgresRepository backed by the given *sql.DB.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) GetUserFavoritesFromDB(ctx context.Context, userID int) ([]*models.Favorite, error) {
	const query = `
		SELECT id, name, type, planet_id, character_id, user_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying user favorites: %w", err)
	}
	defer rows.Close()

	var favorites []*models.Favorite
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user favorites: %w", err)
	}

	if favorites == nil {
		favorites = []*models.Favorite{}
	}
	return favorites, nil
}

func (r *PostgresRepository) GetFirstFavoriteFromDB(ctx context.Context, userID int) (*models.Favorite, error) {
	const query = `
		SELECT id, name, type, planet_id, character_id, user_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY id
		LIMIT 1`

	fav, err := scanFavorite(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFavoriteNotFound
	}
	if err != nil {
		return nil, err
	}
	return fav, nil
}

// AddFavoriteInDB inserts the favorite and fills in its generated id and creation time.
func (r *PostgresRepository) AddFavoriteInDB(ctx context.Context, favorite *models.Favorite) error {
	const query = `
		INSERT INTO favorites (name, type, planet_id, character_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		favorite.Name, string(favorite.Type),
		nullableID(favorite.PlanetID), nullableID(favorite.CharacterID),
		favorite.UserID,
	).Scan(&favorite.ID, &favorite.CreatedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return ErrAlreadyExists
		case pgForeignKeyViolation:
			return ErrReferenceNotFound
		}
		return fmt.Errorf("inserting favorite: %w", err)
	}
	return nil
}

// DeleteFavoriteTargetFromDB removes the user's favorite pointing at targetID of the given kind.
func (r *PostgresRepository) DeleteFavoriteTargetFromDB(ctx context.Context, userID int, kind models.TargetKind, targetID int) error {
	column, err := targetColumn(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM favorites WHERE user_id = $1 AND type = $2 AND %s = $3`, column)

	result, err := r.db.ExecContext(ctx, query, userID, string(kind), targetID)
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrTargetNotInFavorites
	}
	return nil
}

// scanFavorite scans a single row from the favorites table into a Favorite.
func scanFavorite(row rowScanner) (*models.Favorite, error) {
	var fav models.Favorite
	var planetID, characterID sql.NullInt64

	err := row.Scan(
		&fav.ID, &fav.Name, &fav.Type,
		&planetID, &characterID,
		&fav.UserID, &fav.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning favorite row: %w", err)
	}

	fav.PlanetID = intPtr(planetID)
	fav.CharacterID = intPtr(characterID)
	return &fav, nil
}

// targetColumn maps a target kind onto the favorites column holding its id.
func targetColumn(kind models.TargetKind) (string, error) {
	switch kind {
	case models.TargetKindPlanet:
		return "planet_id", nil
	case models.TargetKindCharacter:
		return "character_id", nil
	default:
		return "", fmt.Errorf("unknown target kind: %s", kind)
	}
}

func nullableID(id *int) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	id := int(v.Int64)
	return &id
}

// pgErrorCode returns the PostgreSQL error code carried by err, or "" if there is none.
func pgErrorCode(err error) string {
	var pge *pq.Error
	if errors.As(err, &pge) {
		return string(pge.Code)
	}
	return ""
}
