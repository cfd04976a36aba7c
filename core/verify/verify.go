package verify

import (
	"fmt"
	"strings"

	"github.com/takaraplatform/apiparity/core/config"
	"github.com/takaraplatform/apiparity/core/logger"
	"github.com/takaraplatform/apiparity/core/match"
	"github.com/takaraplatform/apiparity/core/models"
	"github.com/takaraplatform/apiparity/core/normalize"
	"github.com/takaraplatform/apiparity/core/scanner"
)

// Checker wires the pipeline: scan both sides, normalize, match, aggregate.
type Checker struct {
	Scanner *scanner.Scanner
	Norm    normalize.Normalizer
	Policy  match.Policy
	Config  *config.Config
}

func New(cfg *config.Config) *Checker {
	return &Checker{
		Scanner: scanner.New(),
		Norm:    normalize.New(cfg.Normalize.APIPrefix, cfg.Normalize.ParamToken),
		Policy:  match.ForName(cfg.Match, cfg.Normalize.ParamToken),
		Config:  cfg,
	}
}

// Run performs the one-shot consistency check. Detected inconsistencies land
// in the Result and never abort the scan; only I/O failures return an error.
func (c *Checker) Run() (*models.Result, error) {
	logger.Debug("Match policy: %s", c.Policy.Name())
	groups, err := c.Scanner.Routes(c.Config.Backend.RoutesDir, c.Config.Backend.RouteSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan backend routes: %w", err)
	}
	calls, err := c.Scanner.Calls(c.Config.Frontend.ClientFile)
	if err != nil {
		return nil, fmt.Errorf("failed to scan frontend calls: %w", err)
	}

	res := &models.Result{
		BackendGroups: groups,
		FrontendCalls: calls,
		Passed:        true,
	}
	logger.Debug("Backend: %d groups, %d routes; frontend: %d calls",
		len(groups), res.BackendTotal(), len(calls))

	backendKeys := c.backendKeys(groups)
	res.MissingBackend = c.missingBackend(calls, backendKeys)
	if len(res.MissingBackend) > 0 {
		res.Passed = false
	}

	res.Features = c.checkFeatures(groups, calls)
	for _, f := range res.Features {
		for _, r := range f.Routes {
			if !r.Satisfied() {
				res.Passed = false
			}
		}
	}

	return res, nil
}

func (c *Checker) backendKeys(groups []models.RouteGroup) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, g := range groups {
		for _, r := range g.Routes {
			keys[c.Norm.Key(r.Method, r.Path)] = struct{}{}
		}
	}
	return keys
}

func (c *Checker) missingBackend(calls []models.Route, backend map[string]struct{}) []models.Route {
	missing := []models.Route{}
	for _, call := range calls {
		key := c.Norm.Key(call.Method, call.Path)
		if c.served(key, backend) {
			continue
		}
		logger.Debug("No backend match for %s", key)
		missing = append(missing, call)
	}
	return missing
}

func (c *Checker) served(key string, backend map[string]struct{}) bool {
	if _, ok := backend[key]; ok {
		return true
	}
	for bk := range backend {
		if c.Policy.Route(key, bk) {
			return true
		}
	}
	return false
}

func (c *Checker) checkFeatures(groups []models.RouteGroup, calls []models.Route) []models.FeatureResult {
	results := make([]models.FeatureResult, 0, len(c.Config.Features))
	for _, feature := range c.Config.Features {
		fr := models.FeatureResult{Name: feature.Name}
		for _, route := range feature.Routes {
			method, path, ok := strings.Cut(route, ":")
			if !ok {
				continue // rejected by config validation
			}
			method = strings.ToUpper(method)
			expected := c.Norm.Path(path)

			er := models.ExpectationResult{
				Route:    route,
				Method:   method,
				Path:     path,
				Frontend: c.hasRoute(calls, method, expected),
			}
			for _, g := range groups {
				if c.hasRoute(g.Routes, method, expected) {
					er.Backend = true
					break
				}
			}
			fr.Routes = append(fr.Routes, er)
		}
		results = append(results, fr)
	}
	return results
}

func (c *Checker) hasRoute(routes []models.Route, method, expected string) bool {
	for _, r := range routes {
		if r.Method != method {
			continue
		}
		if c.Policy.Feature(expected, c.Norm.Path(r.Path)) {
			return true
		}
	}
	return false
}
