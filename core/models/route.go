package models

// Route is one HTTP endpoint reference: verb plus the literal path as written
// in source. Both extractors produce these.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type RouteGroup struct {
	Name   string  `json:"name"`
	Routes []Route `json:"routes"`
}
