package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/takaraplatform/apiparity/core/logger"
	"github.com/takaraplatform/apiparity/core/models"
	"gopkg.in/yaml.v3"
)

// FileName is probed in the working directory; absent file means defaults.
const FileName = "apiparity.yaml"

type Config struct {
	Backend   Backend          `yaml:"backend"`
	Frontend  Frontend         `yaml:"frontend"`
	Normalize Normalize        `yaml:"normalize"`
	Match     string           `yaml:"match"`
	Features  []models.Feature `yaml:"features"`
}

type Backend struct {
	RoutesDir   string `yaml:"routes_dir"`
	RouteSuffix string `yaml:"route_suffix"`
}

type Frontend struct {
	ClientFile string `yaml:"client_file"`
}

type Normalize struct {
	APIPrefix  string `yaml:"api_prefix"`
	ParamToken string `yaml:"param_token"`
}

func Default() *Config {
	return &Config{
		Backend: Backend{
			RoutesDir:   "backend/src/routes",
			RouteSuffix: ".routes.ts",
		},
		Frontend: Frontend{
			ClientFile: "frontend/src/services/api.ts",
		},
		Normalize: Normalize{
			APIPrefix:  "/api/",
			ParamToken: ":id",
		},
		Match: "fuzzy",
		Features: []models.Feature{
			{
				Name: "TAKARA Boost",
				Routes: []string{
					"POST:/investments/:id/boost/takara",
					"GET:/investments/:id/boost/takara",
				},
			},
			{
				Name: "Instant Sale",
				Routes: []string{
					"PUT:/investments/:id/instant-sale",
					"POST:/investments/:id/instant-sale/execute",
					"GET:/investments/:id/instant-sale/price",
				},
			},
		},
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	path := filepath.Join(wd, FileName)
	if _, err := os.Stat(path); err != nil {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Unmarshal over the defaults so partial configs keep the stock values.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	logger.Debug("Config file found: %s", path)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Match {
	case "exact", "fuzzy":
	default:
		return fmt.Errorf("unknown match policy %q (want exact or fuzzy)", c.Match)
	}
	for _, f := range c.Features {
		if f.Name == "" {
			return fmt.Errorf("feature with empty name")
		}
		for _, r := range f.Routes {
			if !strings.Contains(r, ":") {
				return fmt.Errorf("feature %q: route %q is not METHOD:/path", f.Name, r)
			}
		}
	}
	return nil
}
