package models

// Feature names a product feature and the literal "METHOD:/path" routes it
// must expose on both sides.
type Feature struct {
	Name   string   `yaml:"name" json:"name"`
	Routes []string `yaml:"routes" json:"routes"`
}
