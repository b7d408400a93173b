package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/giannis84/starwars-favorites/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Fixture is the reference data loaded by the seed tool.
type Fixture struct {
	Users      []FixtureUser      `yaml:"users"`
	Characters []models.Character `yaml:"characters"`
	Planets    []models.Planet    `yaml:"planets"`
}

// FixtureUser carries a plaintext password that is hashed before it is stored.
type FixtureUser struct {
	ID       int    `yaml:"id"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	IsActive bool   `yaml:"is_active"`
}

// LoadFixture reads a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	return &f, nil
}

// Seed inserts the fixture in a single transaction. Rows whose id already
// exists are left untouched, as are users whose email is taken, so seeding
// twice is harmless.
func Seed(ctx context.Context, db *sql.DB, f *Fixture, hashCost int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, u := range f.Users {
		if u.Password == "" {
			return fmt.Errorf("user %s has no password", u.Email)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), hashCost)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", u.Email, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO users (id, email, password, is_active)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT DO NOTHING`,
			u.ID, u.Email, string(hash), u.IsActive,
		)
		if err != nil {
			return fmt.Errorf("inserting user %d: %w", u.ID, err)
		}
	}

	for _, c := range f.Characters {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO characters (id, name, birth_year, gender, height, skin_color, eye_color)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.BirthYear, c.Gender, c.Height, c.SkinColor, c.EyeColor,
		)
		if err != nil {
			return fmt.Errorf("inserting character %d: %w", c.ID, err)
		}
	}

	for _, p := range f.Planets {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO planets (id, name, climate, population, orbital_period, rotation_period, diameter)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.Climate, p.Population, p.OrbitalPeriod, p.RotationPeriod, p.Diameter,
		)
		if err != nil {
			return fmt.Errorf("inserting planet %d: %w", p.ID, err)
		}
	}

	// Explicit ids bypass the SERIAL sequences; move them past the seeded rows.
	for _, table := range []string{"users", "characters", "planets"} {
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %[1]s`,
			table,
		)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("resetting %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
