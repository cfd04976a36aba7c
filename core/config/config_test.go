package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "backend/src/routes", cfg.Backend.RoutesDir)
	require.Equal(t, ".routes.ts", cfg.Backend.RouteSuffix)
	require.Equal(t, "frontend/src/services/api.ts", cfg.Frontend.ClientFile)
	require.Equal(t, "/api/", cfg.Normalize.APIPrefix)
	require.Equal(t, ":id", cfg.Normalize.ParamToken)
	require.Equal(t, "fuzzy", cfg.Match)
	require.Len(t, cfg.Features, 2)
	require.Equal(t, "TAKARA Boost", cfg.Features[0].Name)
	require.Len(t, cfg.Features[0].Routes, 2)
	require.Equal(t, "Instant Sale", cfg.Features[1].Name)
	require.Len(t, cfg.Features[1].Routes, 3)
	require.NoError(t, cfg.Validate())
}

// chdir stands in for t.Chdir, which needs a Go 1.24 toolchain: enter dir and
// restore the original working directory when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(old)) })
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	partial := `
backend:
  routes_dir: services/api/routes
match: exact
`
	require.NoError(t, os.WriteFile(FileName, []byte(partial), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "services/api/routes", cfg.Backend.RoutesDir)
	require.Equal(t, ".routes.ts", cfg.Backend.RouteSuffix)
	require.Equal(t, "frontend/src/services/api.ts", cfg.Frontend.ClientFile)
	require.Equal(t, "exact", cfg.Match)
	require.Len(t, cfg.Features, 2)
}

func TestLoad_ReplacesFeatureTable(t *testing.T) {
	chdir(t, t.TempDir())
	custom := `
features:
  - name: Checkout
    routes:
      - "POST:/orders/:id/checkout"
`
	require.NoError(t, os.WriteFile(FileName, []byte(custom), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Features, 1)
	require.Equal(t, "Checkout", cfg.Features[0].Name)
	require.Equal(t, []string{"POST:/orders/:id/checkout"}, cfg.Features[0].Routes)
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(FileName, []byte("match: sloppy\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid config")
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(FileName, []byte("backend: [\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse yaml")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default is valid", mutate: func(c *Config) {}},
		{name: "unknown policy", mutate: func(c *Config) { c.Match = "loose" }, wantErr: "unknown match policy"},
		{name: "unnamed feature", mutate: func(c *Config) { c.Features[0].Name = "" }, wantErr: "feature with empty name"},
		{name: "route without method", mutate: func(c *Config) { c.Features[1].Routes[0] = "/investments" }, wantErr: "is not METHOD:/path"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
