package match

import "strings"

// Policy decides whether two normalized route keys refer to the same
// endpoint.
type Policy interface {
	Name() string
	// Route reports whether a frontend key is served by a backend key.
	Route(frontendKey, backendKey string) bool
	// Feature reports whether an observed normalized path satisfies an
	// expected one. Callers pre-filter by method.
	Feature(expected, observed string) bool
}

type Exact struct{}

func (Exact) Name() string { return "exact" }

func (Exact) Route(frontendKey, backendKey string) bool { return frontendKey == backendKey }

func (Exact) Feature(expected, observed string) bool { return expected == observed }

// Fuzzy tolerates partial-path differences: keys match when equal, or when
// one side with the parameter token stripped is a substring of the other.
// Unrelated routes sharing a substring can mis-match; that is the documented
// cost of this policy.
type Fuzzy struct {
	ParamToken string
}

func (Fuzzy) Name() string { return "fuzzy" }

func (f Fuzzy) Route(frontendKey, backendKey string) bool {
	if frontendKey == backendKey {
		return true
	}
	return strings.Contains(frontendKey, f.strip(backendKey)) ||
		strings.Contains(backendKey, f.strip(frontendKey))
}

func (f Fuzzy) Feature(expected, observed string) bool {
	return strings.Contains(expected, observed) || strings.Contains(observed, expected)
}

func (f Fuzzy) strip(key string) string {
	return strings.ReplaceAll(key, f.ParamToken, "")
}

// ForName maps a config policy name to an implementation. Unknown names get
// the fuzzy default.
func ForName(name, paramToken string) Policy {
	if name == "exact" {
		return Exact{}
	}
	return Fuzzy{ParamToken: paramToken}
}
