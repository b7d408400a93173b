package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewFavorite(t *testing.T) {
	tests := []struct {
		name      string
		kind      TargetKind
		targetID  int
		wantPlan  bool
		wantChar  bool
		wantValid bool
	}{
		{name: "planet", kind: TargetKindPlanet, targetID: 5, wantPlan: true, wantValid: true},
		{name: "character", kind: TargetKindCharacter, targetID: 3, wantChar: true, wantValid: true},
		{name: "unknown kind sets no target", kind: TargetKind("ship"), targetID: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fav := NewFavorite(1, tt.kind, tt.targetID, "fav")

			if (fav.PlanetID != nil) != tt.wantPlan {
				t.Errorf("expected planet id set=%v, got %v", tt.wantPlan, fav.PlanetID)
			}
			if (fav.CharacterID != nil) != tt.wantChar {
				t.Errorf("expected character id set=%v, got %v", tt.wantChar, fav.CharacterID)
			}

			id, ok := fav.TargetID()
			if ok != tt.wantValid {
				t.Fatalf("expected TargetID ok=%v, got %v", tt.wantValid, ok)
			}
			if ok && id != tt.targetID {
				t.Errorf("expected target id %d, got %d", tt.targetID, id)
			}
		})
	}
}

func TestFavoriteTargetID_RejectsInconsistentTargets(t *testing.T) {
	one, two := 1, 2
	tests := []struct {
		name string
		fav  Favorite
	}{
		{name: "planet kind with character id", fav: Favorite{Type: TargetKindPlanet, CharacterID: &one}},
		{name: "character kind with both ids", fav: Favorite{Type: TargetKindCharacter, PlanetID: &one, CharacterID: &two}},
		{name: "planet kind with no ids", fav: Favorite{Type: TargetKindPlanet}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.fav.TargetID(); ok {
				t.Error("expected inconsistent favorite to be rejected")
			}
		})
	}
}

func TestFavoriteTargets(t *testing.T) {
	fav := NewFavorite(1, TargetKindPlanet, 5, "Tatooine")

	if !fav.Targets(TargetKindPlanet, 5) {
		t.Error("expected favorite to target planet 5")
	}
	if fav.Targets(TargetKindCharacter, 5) {
		t.Error("expected favorite not to target character 5")
	}
	if fav.Targets(TargetKindPlanet, 6) {
		t.Error("expected favorite not to target planet 6")
	}
}

func TestUserJSON_OmitsPassword(t *testing.T) {
	data, err := json.Marshal(User{ID: 1, Email: "luke@rebels.org", Password: "secret-hash", IsActive: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "secret-hash") || strings.Contains(string(data), "password") {
		t.Errorf("expected password to be omitted, got %s", data)
	}
	if !strings.Contains(string(data), `"isActive":true`) {
		t.Errorf("expected isActive field, got %s", data)
	}
}

func TestFavoriteJSON_UnsetTargetIsNull(t *testing.T) {
	data, _ := json.Marshal(NewFavorite(1, TargetKindCharacter, 3, "Luke"))
	if !strings.Contains(string(data), `"planet_id":null`) {
		t.Errorf("expected planet_id null, got %s", data)
	}
	if !strings.Contains(string(data), `"character_id":3`) {
		t.Errorf("expected character_id 3, got %s", data)
	}
	if !strings.Contains(string(data), `"user":1`) {
		t.Errorf("expected user 1, got %s", data)
	}
}
