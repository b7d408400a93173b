package models

// Character is a read-only catalog entry.
type Character struct {
	ID        int    `json:"id"         yaml:"id"`
	Name      string `json:"name"       yaml:"name"`
	BirthYear string `json:"birth_year" yaml:"birth_year"`
	Gender    string `json:"gender"     yaml:"gender"`
	Height    int    `json:"height"     yaml:"height"`
	SkinColor string `json:"skin_color" yaml:"skin_color"`
	EyeColor  string `json:"eye_color"  yaml:"eye_color"`
}

// Planet is a read-only catalog entry.
type Planet struct {
	ID             int    `json:"id"              yaml:"id"`
	Name           string `json:"name"            yaml:"name"`
	Climate        string `json:"climate"         yaml:"climate"`
	Population     int64  `json:"population"      yaml:"population"`
	OrbitalPeriod  int    `json:"orbital_period"  yaml:"orbital_period"`
	RotationPeriod int    `json:"rotation_period" yaml:"rotation_period"`
	Diameter       int    `json:"diameter"        yaml:"diameter"`
}
