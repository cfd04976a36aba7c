package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/takaraplatform/apiparity/core/extract"
	"github.com/takaraplatform/apiparity/core/logger"
	"github.com/takaraplatform/apiparity/core/models"
)

// Scanner reads route declarations off disk and hands the text to the
// dialect extractors. Route files live flat in the routes dir; there is no
// recursion.
type Scanner struct {
	Backend  extract.Extractor
	Frontend extract.Extractor
}

func New() *Scanner {
	return &Scanner{
		Backend:  extract.RouterExtractor{},
		Frontend: extract.ClientExtractor{},
	}
}

// Routes scans dir for files ending in suffix and groups extracted routes by
// file, keyed by base name with the suffix stripped. Files with no matching
// call sites produce no group. Directory entries come back sorted, so group
// order is deterministic.
func (s *Scanner) Routes(dir, suffix string) ([]models.RouteGroup, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read routes dir %s: %w", dir, err)
	}

	var groups []models.RouteGroup
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read route file %s: %w", path, err)
		}
		routes := s.Backend.Extract(string(content))
		logger.Debug("Scanned %s: %d routes", entry.Name(), len(routes))
		if len(routes) == 0 {
			continue
		}
		groups = append(groups, models.RouteGroup{
			Name:   strings.TrimSuffix(entry.Name(), suffix),
			Routes: routes,
		})
	}
	return groups, nil
}

// Calls scans the single frontend client file, in file order.
func (s *Scanner) Calls(file string) ([]models.Route, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read client file %s: %w", file, err)
	}
	calls := s.Frontend.Extract(string(content))
	logger.Debug("Scanned %s: %d API calls", filepath.Base(file), len(calls))
	return calls, nil
}
