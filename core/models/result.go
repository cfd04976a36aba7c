package models

// Result aggregates one consistency run for the report renderers.
type Result struct {
	BackendGroups  []RouteGroup    `json:"backendGroups"`
	FrontendCalls  []Route         `json:"frontendCalls"`
	MissingBackend []Route         `json:"missingBackend"`
	Features       []FeatureResult `json:"features"`
	Passed         bool            `json:"passed"`
}

func (r *Result) BackendTotal() int {
	n := 0
	for _, g := range r.BackendGroups {
		n += len(g.Routes)
	}
	return n
}

type FeatureResult struct {
	Name   string              `json:"name"`
	Routes []ExpectationResult `json:"routes"`
}

// ExpectationResult is one expected feature route, checked independently on
// each side.
type ExpectationResult struct {
	Route    string `json:"route"`
	Method   string `json:"method"`
	Path     string `json:"path"`
	Frontend bool   `json:"frontend"`
	Backend  bool   `json:"backend"`
}

func (e ExpectationResult) Satisfied() bool { return e.Frontend && e.Backend }
