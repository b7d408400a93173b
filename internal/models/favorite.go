// Favorite model definitions and methods

package models

import "time"

type TargetKind string

const (
	TargetKindPlanet    TargetKind = "planet"
	TargetKindCharacter TargetKind = "character"
)

// Valid reports whether k is one of the known target kinds.
func (k TargetKind) Valid() bool {
	return k == TargetKindPlanet || k == TargetKindCharacter
}

// Favorite is a user's saved reference to exactly one planet or character.
// Only the target column matching Type is set; the other stays nil.
type Favorite struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Type        TargetKind `json:"type"`
	PlanetID    *int       `json:"planet_id"`
	CharacterID *int       `json:"character_id"`
	UserID      int        `json:"user"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewFavorite builds an unsaved favorite pointing at targetID of the given kind.
func NewFavorite(userID int, kind TargetKind, targetID int, name string) *Favorite {
	fav := &Favorite{
		Name:   name,
		Type:   kind,
		UserID: userID,
	}
	id := targetID
	switch kind {
	case TargetKindPlanet:
		fav.PlanetID = &id
	case TargetKindCharacter:
		fav.CharacterID = &id
	}
	return fav
}

// TargetID returns the id of the referenced catalog entry and false when
// the favorite does not hold exactly one target consistent with its type.
func (f *Favorite) TargetID() (int, bool) {
	switch f.Type {
	case TargetKindPlanet:
		if f.PlanetID != nil && f.CharacterID == nil {
			return *f.PlanetID, true
		}
	case TargetKindCharacter:
		if f.CharacterID != nil && f.PlanetID == nil {
			return *f.CharacterID, true
		}
	}
	return 0, false
}

// Targets reports whether f points at targetID of the given kind.
func (f *Favorite) Targets(kind TargetKind, targetID int) bool {
	id, ok := f.TargetID()
	return ok && f.Type == kind && id == targetID
}
