package guide

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// Filter returns the categories whose title, or any function name or
// description, contains query case-insensitively. Order is preserved and an
// empty query matches everything.
func Filter(categories []Category, query string) []Category {
	q := strings.ToLower(query)
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c Category, q string) bool {
	if strings.Contains(strings.ToLower(c.Title), q) {
		return true
	}
	for _, f := range c.Functions {
		if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(strings.ToLower(f.Description), q) {
			return true
		}
	}
	return false
}

// Guide is the guide screen state: a search query and an optional selected
// category. Not safe for concurrent use.
type Guide struct {
	catalog  Catalog
	query    string
	selected string
	hasSel   bool
	log      *zap.Logger
}

func New(catalog Catalog, log *zap.Logger) *Guide {
	if log == nil {
		log = zap.NewNop()
	}
	return &Guide{catalog: catalog, log: log}
}

func (g *Guide) Catalog() Catalog { return g.catalog }

func (g *Guide) SetQuery(q string) { g.query = q }

func (g *Guide) Query() string { return g.query }

// Filter applies query to the whole catalog without touching the held query.
func (g *Guide) Filter(query string) []Category {
	return Filter(g.catalog.Categories, query)
}

// Visible is the category list for the current query.
func (g *Guide) Visible() []Category {
	return g.Filter(g.query)
}

// Select switches to the detail view of one category. Unknown ids are
// accepted and show an empty detail list.
func (g *Guide) Select(id string) {
	g.selected = id
	g.hasSel = true
}

// Clear returns to the category list view.
func (g *Guide) Clear() {
	g.selected = ""
	g.hasSel = false
}

func (g *Guide) Selected() (string, bool) {
	return g.selected, g.hasSel
}

// Detail lists the functions of the selected category, or nil.
func (g *Guide) Detail() []Function {
	if !g.hasSel {
		return nil
	}
	cat, ok := g.catalog.ByID(g.selected)
	if !ok {
		return nil
	}
	return append([]Function(nil), cat.Functions...)
}

// SelectedTitle is the title of the selected category, "" if none or unknown.
func (g *Guide) SelectedTitle() string {
	if !g.hasSel {
		return ""
	}
	cat, _ := g.catalog.ByID(g.selected)
	return cat.Title
}

// Suggest returns the category title or function name closest to query by
// edit distance, or "" when nothing is reasonably close.
func (g *Guide) Suggest(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}
	limit := max(1, utf8.RuneCountInString(q)/2)
	best, bestDist := "", limit+1
	for _, c := range g.catalog.Categories {
		candidates := make([]string, 0, len(c.Functions)+1)
		candidates = append(candidates, c.Title)
		for _, f := range c.Functions {
			candidates = append(candidates, f.Name)
		}
		for _, cand := range candidates {
			d := levenshtein.ComputeDistance(q, strings.ToLower(cand))
			if d < bestDist {
				best, bestDist = cand, d
			}
		}
	}
	return best
}

// OpenTutorial looks up a function of a category and records the request.
// Tutorials are not playable yet; the trace is the only effect.
func (g *Guide) OpenTutorial(categoryID, functionName string) (Function, bool) {
	cat, ok := g.catalog.ByID(categoryID)
	if !ok {
		return Function{}, false
	}
	for _, f := range cat.Functions {
		if f.Name == functionName {
			g.log.Info("opening tutorial",
				zap.String("category", cat.Title),
				zap.String("function", f.Name),
				zap.String("tutorial", f.Tutorial),
			)
			return f, true
		}
	}
	return Function{}, false
}
