package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/giannis84/starwars-favorites/internal/models"
)

func (r *PostgresRepository) ListCharactersFromDB(ctx context.Context) ([]*models.Character, error) {
	const query = `
		SELECT id, name, birth_year, gender, height, skin_color, eye_color
		FROM characters
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying characters: %w", err)
	}
	defer rows.Close()

	characters := []*models.Character{}
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning character row: %w", err)
		}
		characters = append(characters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating characters: %w", err)
	}
	return characters, nil
}

func (r *PostgresRepository) GetCharacterFromDB(ctx context.Context, id int) (*models.Character, error) {
	const query = `
		SELECT id, name, birth_year, gender, height, skin_color, eye_color
		FROM characters
		WHERE id = $1`

	c, err := scanCharacter(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCharacterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning character: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListPlanetsFromDB(ctx context.Context) ([]*models.Planet, error) {
	const query = `
		SELECT id, name, climate, population, orbital_period, rotation_period, diameter
		FROM planets
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying planets: %w", err)
	}
	defer rows.Close()

	planets := []*models.Planet{}
	for rows.Next() {
		p, err := scanPlanet(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning planet row: %w", err)
		}
		planets = append(planets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating planets: %w", err)
	}
	return planets, nil
}

func (r *PostgresRepository) GetPlanetFromDB(ctx context.Context, id int) (*models.Planet, error) {
	const query = `
		SELECT id, name, climate, population, orbital_period, rotation_period, diameter
		FROM planets
		WHERE id = $1`

	p, err := scanPlanet(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning planet: %w", err)
	}
	return p, nil
}

func scanCharacter(row rowScanner) (*models.Character, error) {
	var c models.Character
	if err := row.Scan(&c.ID, &c.Name, &c.BirthYear, &c.Gender, &c.Height, &c.SkinColor, &c.EyeColor); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanPlanet(row rowScanner) (*models.Planet, error) {
	var p models.Planet
	if err := row.Scan(&p.ID, &p.Name, &p.Climate, &p.Population, &p.OrbitalPeriod, &p.RotationPeriod, &p.Diameter); err != nil {
		return nil, err
	}
	return &p, nil
}
