package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/giannis84/starwars-favorites/internal/models"
)

// maxNameLength matches the width of the favorites.name column.
const maxNameLength = 250

var validTargetKinds = []string{string(models.TargetKindPlanet), string(models.TargetKindCharacter)}

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// validate collects errors and returns a *ValidationError if any exist.
func validate(checks ...func() string) error {
	var errs []string
	for _, check := range checks {
		if msg := check(); msg != "" {
			errs = append(errs, msg)
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func requireNonEmpty(field, value string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s is required", field)
	}
	return ""
}

// checkMaxLength counts characters, matching VARCHAR semantics.
func checkMaxLength(field, value string, max int) string {
	if utf8.RuneCountInString(value) > max {
		return fmt.Sprintf("%s exceeds maximum length of %d", field, max)
	}
	return ""
}

func checkInList(field, value string, allowed []string) string {
	for _, v := range allowed {
		if value == v {
			return ""
		}
	}
	return fmt.Sprintf("%s has invalid value %q (allowed: %s)", field, value, strings.Join(allowed, ", "))
}

func checkPositive(field string, value int) string {
	if value <= 0 {
		return fmt.Sprintf("%s must be positive", field)
	}
	return ""
}

// validateNewFavorite validates the caller-supplied parts of a favorite before any lookup.
func validateNewFavorite(userID int, kind models.TargetKind, targetID int, name string) error {
	return validate(
		func() string { return checkPositive("user_id", userID) },
		func() string { return checkInList("type", string(kind), validTargetKinds) },
		func() string { return checkPositive("target_id", targetID) },
		func() string { return requireNonEmpty("name", name) },
		func() string { return checkMaxLength("name", name, maxNameLength) },
	)
}

// ParseID converts a numeric path segment into an id. The router only lets
// digits through, so the remaining failure is a value that overflows int.
func ParseID(field, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Errors: []string{fmt.Sprintf("%s %q is not a valid id", field, raw)}}
	}
	if msg := checkPositive(field, id); msg != "" {
		return 0, &ValidationError{Errors: []string{msg}}
	}
	return id, nil
}
