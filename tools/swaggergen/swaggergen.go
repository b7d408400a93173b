// Command swaggergen generates OpenAPI 3.0 specification files (JSON and YAML)
// for the Star Wars catalog and favorites API and writes them to the api/ directory.
//
// Usage:
//
//	go run ./tools/swaggergen
//
// When routes or response bodies change in internal/routes, update buildPaths()
// and buildSchemas() and regenerate. Check api/swagger.yaml before committing.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Lightweight OpenAPI 3.0 types
// ---------------------------------------------------------------------------

type OpenAPI struct {
	OpenAPI    string               `json:"openapi"              yaml:"openapi"`
	Info       Info                 `json:"info"                 yaml:"info"`
	Paths      map[string]*PathItem `json:"paths"                yaml:"paths"`
	Components Components           `json:"components"           yaml:"components"`
}

type Info struct {
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version"     yaml:"version"`
}

type PathItem struct {
	Get    *Operation `json:"get,omitempty"    yaml:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"   yaml:"post,omitempty"`
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
}

type Operation struct {
	Tags        []string            `json:"tags"                  yaml:"tags"`
	Summary     string              `json:"summary"               yaml:"summary"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string              `json:"operationId"           yaml:"operationId"`
	Parameters  []Parameter         `json:"parameters,omitempty"  yaml:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"             yaml:"responses"`
}

type Parameter struct {
	Name        string `json:"name"        yaml:"name"`
	In          string `json:"in"          yaml:"in"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required"    yaml:"required"`
	Schema      Schema `json:"schema"      yaml:"schema"`
}

type RequestBody struct {
	Required    bool                 `json:"required"              yaml:"required"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Content     map[string]MediaType `json:"content"               yaml:"content"`
}

type MediaType struct {
	Schema Schema `json:"schema" yaml:"schema"`
}

type Response struct {
	Description string               `json:"description"       yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

type Schema struct {
	Type                 string            `json:"type,omitempty"                 yaml:"type,omitempty"`
	Format               string            `json:"format,omitempty"               yaml:"format,omitempty"`
	Description          string            `json:"description,omitempty"          yaml:"description,omitempty"`
	Properties           map[string]Schema `json:"properties,omitempty"           yaml:"properties,omitempty"`
	Items                *Schema           `json:"items,omitempty"                yaml:"items,omitempty"`
	Required             []string          `json:"required,omitempty"             yaml:"required,omitempty"`
	Enum                 []string          `json:"enum,omitempty"                 yaml:"enum,omitempty"`
	Ref                  string            `json:"$ref,omitempty"                 yaml:"$ref,omitempty"`
	Nullable             bool              `json:"nullable,omitempty"             yaml:"nullable,omitempty"`
	MaxLength            int               `json:"maxLength,omitempty"            yaml:"maxLength,omitempty"`
	Example              any               `json:"example,omitempty"              yaml:"example,omitempty"`
}

type Components struct {
	Schemas map[string]Schema `json:"schemas" yaml:"schemas"`
}

// ---------------------------------------------------------------------------
// Spec builder
// ---------------------------------------------------------------------------

func buildSpec() OpenAPI {
	return OpenAPI{
		OpenAPI: "3.0.3",
		Info: Info{
			Title:       "Star Wars Favorites API",
			Description: "Read-only catalog of characters, planets and users, plus per-user favorites.",
			Version:     "1.0.0",
		},
		Paths:      buildPaths(),
		Components: Components{Schemas: buildSchemas()},
	}
}

func buildPaths() map[string]*PathItem {
	return map[string]*PathItem{
		"/people":       {Get: listOp("Catalog", "listCharacters", "List characters", "Character")},
		"/people/{id}":  {Get: getOp("Catalog", "getCharacter", "Get a character", "Character")},
		"/planets":      {Get: listOp("Catalog", "listPlanets", "List planets", "Planet")},
		"/planets/{id}": {Get: getOp("Catalog", "getPlanet", "Get a planet", "Planet")},
		"/users":        {Get: listOp("Users", "listUsers", "List users", "User")},
		"/users/{id}":   {Get: getOp("Users", "getUser", "Get a user", "User")},
		"/{userId}/favorites": {
			Get: &Operation{
				Tags:        []string{"Favorites"},
				Summary:     "Get the first favorite",
				Description: "Returns the earliest favorite stored for the user.",
				OperationID: "getFirstFavorite",
				Parameters:  []Parameter{idParam("userId", "User id")},
				Responses: map[string]Response{
					"200": jsonResponse("The user's first favorite", ref("Favorite")),
					"400": errResponse(http.StatusBadRequest),
					"404": errResponse(http.StatusNotFound),
				},
			},
		},
		"/{userId}/favorites/all": {
			Get: &Operation{
				Tags:        []string{"Favorites"},
				Summary:     "List all favorites",
				Description: "Returns every favorite of the user ordered by id.",
				OperationID: "getUserFavorites",
				Parameters:  []Parameter{idParam("userId", "User id")},
				Responses: map[string]Response{
					"200": jsonResponse("The user's favorites", Schema{Type: "array", Items: refPtr("Favorite")}),
					"400": errResponse(http.StatusBadRequest),
					"500": errResponse(http.StatusInternalServerError),
				},
			},
		},
		"/{userId}/favorites/planet/{planetId}":    favoriteTargetItem("planet", "planetId"),
		"/{userId}/favorites/people/{characterId}": favoriteTargetItem("character", "characterId"),
	}
}

// favoriteTargetItem describes the add and remove operations for one target kind.
func favoriteTargetItem(kind, param string) *PathItem {
	params := []Parameter{idParam("userId", "User id"), idParam(param, "Catalog id of the "+kind)}
	return &PathItem{
		Post: &Operation{
			Tags:        []string{"Favorites"},
			Summary:     "Add a " + kind + " to favorites",
			Description: "Stores a named favorite pointing at the " + kind + ". Names are unique across all users.",
			OperationID: "addFavorite_" + kind,
			Parameters:  params,
			RequestBody: &RequestBody{
				Required: true,
				Content:  map[string]MediaType{"application/json": {Schema: ref("AddFavoriteRequest")}},
			},
			Responses: map[string]Response{
				"200": jsonResponse("Favorite added", ref("AddFavoriteResponse")),
				"400": errResponse(http.StatusBadRequest),
				"404": errResponse(http.StatusNotFound),
				"409": errResponse(http.StatusConflict),
				"415": errResponse(http.StatusUnsupportedMediaType),
				"500": errResponse(http.StatusInternalServerError),
			},
		},
		Delete: &Operation{
			Tags:        []string{"Favorites"},
			Summary:     "Remove a " + kind + " from favorites",
			OperationID: "removeFavorite_" + kind,
			Parameters:  params,
			Responses: map[string]Response{
				"200": jsonResponse("Favorite removed", ref("MessageResponse")),
				"400": errResponse(http.StatusBadRequest),
				"404": errResponse(http.StatusNotFound),
				"500": errResponse(http.StatusInternalServerError),
			},
		},
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func listOp(tag, opID, summary, schema string) *Operation {
	return &Operation{
		Tags:        []string{tag},
		Summary:     summary,
		OperationID: opID,
		Responses: map[string]Response{
			"200": jsonResponse("OK", Schema{Type: "array", Items: refPtr(schema)}),
			"500": errResponse(http.StatusInternalServerError),
		},
	}
}

func getOp(tag, opID, summary, schema string) *Operation {
	return &Operation{
		Tags:        []string{tag},
		Summary:     summary,
		OperationID: opID,
		Parameters:  []Parameter{idParam("id", "Numeric id")},
		Responses: map[string]Response{
			"200": jsonResponse("OK", ref(schema)),
			"400": errResponse(http.StatusBadRequest),
			"404": errResponse(http.StatusNotFound),
			"500": errResponse(http.StatusInternalServerError),
		},
	}
}

func idParam(name, description string) Parameter {
	return Parameter{
		Name:        name,
		In:          "path",
		Description: description,
		Required:    true,
		Schema:      Schema{Type: "integer", Format: "int64"},
	}
}

func ref(name string) Schema {
	return Schema{Ref: "#/components/schemas/" + name}
}

func refPtr(name string) *Schema {
	s := ref(name)
	return &s
}

func jsonResponse(description string, schema Schema) Response {
	return Response{
		Description: description,
		Content:     map[string]MediaType{"application/json": {Schema: schema}},
	}
}

func errResponse(code int) Response {
	return jsonResponse(strconv.Itoa(code)+" "+http.StatusText(code), ref("ErrorResponse"))
}

func buildSchemas() map[string]Schema {
	integer := Schema{Type: "integer"}
	str := Schema{Type: "string"}

	return map[string]Schema{
		"ErrorResponse": {
			Type: "object",
			Properties: map[string]Schema{
				"kind": {
					Type: "string",
					Enum: []string{"invalid_input", "not_found", "already_exists", "retrieval_failure", "internal", "rate_limited"},
				},
				"error": {Type: "string", Description: "Human-readable error message"},
			},
			Required: []string{"kind", "error"},
		},
		"MessageResponse": {
			Type:       "object",
			Properties: map[string]Schema{"msg": str},
			Required:   []string{"msg"},
		},
		"AddFavoriteRequest": {
			Type: "object",
			Properties: map[string]Schema{
				"name": {Type: "string", MaxLength: 250, Description: "Display name, unique across all users"},
			},
			Required: []string{"name"},
		},
		"AddFavoriteResponse": {
			Type: "object",
			Properties: map[string]Schema{
				"msg":      {Type: "string", Example: "Favorite planet added successfully!"},
				"favorite": ref("Favorite"),
			},
			Required: []string{"msg", "favorite"},
		},
		"Favorite": {
			Type:        "object",
			Description: "A saved reference to exactly one planet or character.",
			Properties: map[string]Schema{
				"id":           integer,
				"name":         str,
				"type":         {Type: "string", Enum: []string{"planet", "character"}},
				"planet_id":    {Type: "integer", Nullable: true},
				"character_id": {Type: "integer", Nullable: true},
				"user":         integer,
				"created_at":   {Type: "string", Format: "date-time"},
			},
			Required: []string{"id", "name", "type", "user", "created_at"},
		},
		"Character": {
			Type: "object",
			Properties: map[string]Schema{
				"id":         integer,
				"name":       str,
				"birth_year": str,
				"gender":     str,
				"height":     integer,
				"skin_color": str,
				"eye_color":  str,
			},
			Required: []string{"id", "name"},
		},
		"Planet": {
			Type: "object",
			Properties: map[string]Schema{
				"id":              integer,
				"name":            str,
				"climate":         str,
				"population":      {Type: "integer", Format: "int64"},
				"orbital_period":  integer,
				"rotation_period": integer,
				"diameter":        integer,
			},
			Required: []string{"id", "name"},
		},
		"User": {
			Type:        "object",
			Description: "A user account. The password hash is never returned.",
			Properties: map[string]Schema{
				"id":       integer,
				"email":    {Type: "string", Format: "email"},
				"isActive": {Type: "boolean"},
			},
			Required: []string{"id", "email", "isActive"},
		},
	}
}

// ---------------------------------------------------------------------------
// File writers
// ---------------------------------------------------------------------------

func writeJSON(spec OpenAPI, path string) error {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

func writeYAML(spec OpenAPI, path string) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func main() {
	_, src, _, _ := runtime.Caller(0)
	outDir := filepath.Join(filepath.Join(filepath.Dir(src), "..", ".."), "api")

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create api/ directory: %v\n", err)
		os.Exit(1)
	}

	spec := buildSpec()

	jsonPath := filepath.Join(outDir, "swagger.json")
	if err := writeJSON(spec, jsonPath); err != nil {
		fmt.Fprintf(os.Stderr, "error writing JSON: %v\n", err)
		os.Exit(1)
	}

	yamlPath := filepath.Join(outDir, "swagger.yaml")
	if err := writeYAML(spec, yamlPath); err != nil {
		fmt.Fprintf(os.Stderr, "error writing YAML: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Swagger specs generated:\n  %s\n  %s\n", jsonPath, yamlPath)
}
