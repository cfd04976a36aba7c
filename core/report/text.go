package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/takaraplatform/apiparity/core/models"
)

const ruleWidth = 60

// Text renders the human-readable consistency report.
type Text struct {
	Style Style
}

func NewText(style Style) *Text {
	return &Text{Style: style}
}

func (t *Text) Render(w io.Writer, res *models.Result) error {
	var b strings.Builder
	s := t.Style
	good := s.Good.Sprint(s.Check)

	b.WriteString(s.Heading.Sprint("🔍 Verifying Frontend-Backend API Consistency") + "\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	fmt.Fprintf(&b, "\n%s Backend routes found: %d\n", good, res.BackendTotal())
	fmt.Fprintf(&b, "%s Frontend API calls found: %d\n", good, len(res.FrontendCalls))

	t.inventory(&b, res.BackendGroups)

	b.WriteString("\n" + s.Heading.Sprint("🔎 Checking for discrepancies...") + "\n\n")
	if len(res.MissingBackend) > 0 {
		b.WriteString(s.Bad.Sprint("❌ Frontend calls without backend implementation:") + "\n")
		for _, call := range res.MissingBackend {
			fmt.Fprintf(&b, "   %-6s %s\n", call.Method, call.Path)
		}
	} else {
		fmt.Fprintf(&b, "%s All frontend calls have backend implementation\n", good)
	}

	if len(res.Features) > 0 {
		b.WriteString("\n" + s.Heading.Sprint("🆕 Checking expected feature routes:") + "\n")
		for _, feature := range res.Features {
			fmt.Fprintf(&b, "\n  %s:\n", feature.Name)
			for _, route := range feature.Routes {
				mark := good
				if !route.Satisfied() {
					mark = s.Bad.Sprint(s.Cross)
				}
				fmt.Fprintf(&b, "    %s %s\n", mark, route.Route)
				if !route.Frontend {
					b.WriteString("       " + s.Note.Sprint("Missing in frontend") + "\n")
				}
				if !route.Backend {
					b.WriteString("       " + s.Note.Sprint("Missing in backend") + "\n")
				}
			}
		}
	}

	b.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n")
	if res.Passed {
		b.WriteString(s.Good.Sprint("✅ API Consistency Check: PASSED") + "\n")
	} else {
		b.WriteString(s.Bad.Sprint("❌ API Consistency Check: FAILED") + "\n")
		b.WriteString(s.Note.Sprint("Please review the issues above and update accordingly.") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderInventory writes only the grouped route listing, for the routes
// command.
func (t *Text) RenderInventory(w io.Writer, groups []models.RouteGroup) error {
	var b strings.Builder
	t.inventory(&b, groups)
	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Text) inventory(b *strings.Builder, groups []models.RouteGroup) {
	b.WriteString("\n" + t.Style.Heading.Sprint("📋 Route Details:") + "\n")

	sorted := append([]models.RouteGroup(nil), groups...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	for _, g := range sorted {
		fmt.Fprintf(b, "\n  %s:\n", g.Name)
		for _, r := range g.Routes {
			fmt.Fprintf(b, "    %-6s %s\n", r.Method, r.Path)
		}
	}
}
