package location

import (
	"log/slog"
	"strings"

	"github.com/ryan-rushton/omni/internal/catalog"
)

// Resolver converts between location tokens and States for one catalog.
type Resolver struct {
	catalog *catalog.Catalog
	slugs   map[string]catalog.Category
	logger  *slog.Logger
}

// NewResolver returns a resolver over c. A nil logger discards output.
func NewResolver(c *catalog.Catalog, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	slugs := make(map[string]catalog.Category)
	for _, cat := range catalog.Categories() {
		slugs[cat.Slug()] = cat
	}
	return &Resolver{catalog: c, slugs: slugs, logger: logger}
}

// Resolve maps a token to a State. Tool IDs match exactly; category slugs
// match after normalization. Tokens that match neither resolve to Home.
func (r *Resolver) Resolve(token string) State {
	token = strings.TrimPrefix(token, "#")
	if token == "" {
		return Home()
	}
	if t, ok := r.catalog.FindByID(token); ok {
		return Tool(t)
	}
	if c, ok := r.slugs[catalog.Slugify(token)]; ok {
		return Category(c)
	}
	r.logger.Debug("unknown location token, falling back to home", "token", token)
	return Home()
}

// Encode returns the canonical token for s.
func (r *Resolver) Encode(s State) string {
	switch s.Kind {
	case KindCategory:
		return s.Category.Slug()
	case KindTool:
		return s.ToolID
	default:
		return ""
	}
}
