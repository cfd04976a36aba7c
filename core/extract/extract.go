package extract

import (
	"regexp"
	"strings"

	"github.com/takaraplatform/apiparity/core/models"
)

// Extractor recognizes HTTP call sites in raw source text. Implementations
// are pure text matchers, one per source dialect; they never execute or
// AST-parse the input.
type Extractor interface {
	Name() string
	Extract(content string) []models.Route
}

// Quote styles share one pattern so matches come back in file order. The
// method match is case-insensitive; the member names are not.
var (
	routerPattern = regexp.MustCompile(`router\.((?i:get|post|put|delete|patch))\((?:'([^']+)'|"([^"]+)")`)
	clientPattern = regexp.MustCompile(`this\.client\.((?i:get|post|put|delete|patch))(?:<[^>]+>)?\((?:'([^']+)'|"([^"]+)")`)
)

// RouterExtractor matches Express-style route registrations:
// router.get('/users', handler).
type RouterExtractor struct{}

func (RouterExtractor) Name() string { return "router" }

func (RouterExtractor) Extract(content string) []models.Route {
	routes := collect(routerPattern, content)
	for i := range routes {
		routes[i].Path = strings.TrimSpace(routes[i].Path)
	}
	return routes
}

// ClientExtractor matches the frontend API wrapper's call sites:
// this.client.get<User[]>('/api/users'), with or without the type argument.
type ClientExtractor struct{}

func (ClientExtractor) Name() string { return "client" }

func (ClientExtractor) Extract(content string) []models.Route {
	return collect(clientPattern, content)
}

func collect(re *regexp.Regexp, content string) []models.Route {
	matches := re.FindAllStringSubmatch(content, -1)
	routes := make([]models.Route, 0, len(matches))
	for _, m := range matches {
		path := m[2]
		if path == "" {
			path = m[3]
		}
		routes = append(routes, models.Route{
			Method: strings.ToUpper(m[1]),
			Path:   path,
		})
	}
	return routes
}
