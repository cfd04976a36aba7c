package normalize

import (
	"regexp"
	"strings"
)

var (
	interpRe = regexp.MustCompile(`\$\{[^}]+\}`)
	paramRe  = regexp.MustCompile(`:[^/]+`)
)

// Normalizer reduces route paths to a comparable form so literal and
// templated parameter syntax land on the same string.
type Normalizer struct {
	APIPrefix  string
	ParamToken string
}

func New(apiPrefix, paramToken string) Normalizer {
	return Normalizer{APIPrefix: apiPrefix, ParamToken: paramToken}
}

// Path canonicalizes a route path. The API prefix is removed wherever it
// occurs as a substring, not only at the start.
func (n Normalizer) Path(path string) string {
	if n.APIPrefix != "" {
		path = strings.ReplaceAll(path, n.APIPrefix, "/")
	}
	path = strings.TrimLeft(path, "/")
	path = interpRe.ReplaceAllString(path, n.ParamToken)
	path = paramRe.ReplaceAllString(path, n.ParamToken)
	return path
}

// Key builds the "METHOD:normalized-path" comparison token.
func (n Normalizer) Key(method, path string) string {
	return method + ":" + n.Path(path)
}
