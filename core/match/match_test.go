package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExact(t *testing.T) {
	p := Exact{}
	require.True(t, p.Route("GET:users/:id", "GET:users/:id"))
	require.False(t, p.Route("GET:users", "GET:users/:id"))
	require.True(t, p.Feature("users/:id", "users/:id"))
	require.False(t, p.Feature("users/:id", "users"))
}

func TestFuzzyRoute(t *testing.T) {
	p := Fuzzy{ParamToken: ":id"}

	tests := []struct {
		name     string
		frontend string
		backend  string
		want     bool
	}{
		{name: "identical keys", frontend: "GET:users/:id", backend: "GET:users/:id", want: true},
		{name: "backend stripped is substring", frontend: "GET:investments/:id/performance", backend: "GET:investments/:id", want: true},
		{name: "frontend stripped is substring", frontend: "GET:users/:id", backend: "GET:users/:id/settings", want: true},
		{name: "shared prefix without params", frontend: "GET:investments/summary", backend: "GET:investments", want: true},
		{name: "different resource", frontend: "POST:orders/:id/cancel", backend: "POST:investments/:id", want: false},
		{name: "different method", frontend: "GET:users", backend: "POST:users", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, p.Route(tc.frontend, tc.backend))
		})
	}
}

func TestFuzzyFeature(t *testing.T) {
	p := Fuzzy{ParamToken: ":id"}

	// Containment runs both ways and params stay in place.
	require.True(t, p.Feature("investments/:id/boost/takara", "investments/:id/boost/takara"))
	require.True(t, p.Feature("investments/:id/boost/takara", "investments/:id/boost"))
	require.True(t, p.Feature("investments/:id/boost", "investments/:id/boost/takara"))
	require.False(t, p.Feature("investments/:id/boost/takara", "investments/:id/instant-sale"))
}

func TestForName(t *testing.T) {
	require.Equal(t, "exact", ForName("exact", ":id").Name())
	require.Equal(t, "fuzzy", ForName("fuzzy", ":id").Name())
	require.Equal(t, "fuzzy", ForName("", ":id").Name())
}
