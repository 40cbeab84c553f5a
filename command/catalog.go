package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidCatalog is wrapped by every error returned from NewCatalog.
var ErrInvalidCatalog = errors.New("invalid command catalog")

// ID identifies a catalog entry. It is what the embedding application
// switches on after a successful resolution.
type ID string

// Entry is one command the catalog accepts.
type Entry struct {
	ID ID `json:"id"`
	// Name is the canonical lower-case name compared against chat input.
	// Defaults to the lower-cased ID.
	Name string `json:"name"`
	// Display is the form used in user-facing text. Defaults to the ID.
	Display string `json:"display"`
}

// Catalog is an ordered, immutable set of command entries plus the
// suggestion policy attached to them. Scanning happens in entry order.
type Catalog struct {
	entries []Entry
	index   map[ID]int
	ignored map[ID]struct{}
	aliases map[ID]ID
}

// CatalogOption configures optional catalog policy.
type CatalogOption func(*catalogBuilder)

type catalogBuilder struct {
	ignored []ID
	aliases [][2]ID
}

// WithIgnoredSuggestions marks entries that are never surfaced as a
// suggestion. Short generic names produce spurious near misses otherwise.
func WithIgnoredSuggestions(ids ...ID) CatalogOption {
	return func(b *catalogBuilder) {
		b.ignored = append(b.ignored, ids...)
	}
}

// WithForcedAlias promotes a suggestion of alias to a match against target.
// alias and target may be the same entry.
func WithForcedAlias(alias, target ID) CatalogOption {
	return func(b *catalogBuilder) {
		b.aliases = append(b.aliases, [2]ID{alias, target})
	}
}

// NewCatalog validates entries and returns a Catalog. Names must be
// non-empty ASCII without whitespace, and both IDs and names must be unique.
func NewCatalog(entries []Entry, opts ...CatalogOption) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidCatalog)
	}
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[ID]int, len(entries)),
		ignored: make(map[ID]struct{}),
		aliases: make(map[ID]ID),
	}
	names := make(map[string]ID, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: empty id", ErrInvalidCatalog)
		}
		if e.Name == "" {
			e.Name = string(e.ID)
		}
		e.Name = strings.ToLower(e.Name)
		if e.Display == "" {
			e.Display = string(e.ID)
		}
		if !isASCII(e.Name) || strings.ContainsFunc(e.Name, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: name %q must be ascii without whitespace", ErrInvalidCatalog, e.Name)
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, e.ID)
		}
		if other, dup := names[e.Name]; dup {
			return nil, fmt.Errorf("%w: name %q used by %q and %q", ErrInvalidCatalog, e.Name, other, e.ID)
		}
		names[e.Name] = e.ID
		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	var b catalogBuilder
	for _, opt := range opts {
		opt(&b)
	}
	for _, id := range b.ignored {
		if _, ok := c.index[id]; !ok {
			return nil, fmt.Errorf("%w: ignored suggestion %q not in catalog", ErrInvalidCatalog, id)
		}
		c.ignored[id] = struct{}{}
	}
	for _, pair := range b.aliases {
		alias, target := pair[0], pair[1]
		if _, ok := c.index[alias]; !ok {
			return nil, fmt.Errorf("%w: alias %q not in catalog", ErrInvalidCatalog, alias)
		}
		if _, ok := c.index[target]; !ok {
			return nil, fmt.Errorf("%w: alias target %q not in catalog", ErrInvalidCatalog, target)
		}
		c.aliases[alias] = target
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. Intended for
// statically defined catalogs.
func MustCatalog(entries []Entry, opts ...CatalogOption) *Catalog {
	c, err := NewCatalog(entries, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Entries returns a copy of the entries in scan order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len reports the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id ID) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// IsIgnoredSuggestion reports whether id is never surfaced as a suggestion.
func (c *Catalog) IsIgnoredSuggestion(id ID) bool {
	_, ok := c.ignored[id]
	return ok
}

// AliasTarget returns the entry a suggestion of id is promoted to.
func (c *Catalog) AliasTarget(id ID) (ID, bool) {
	t, ok := c.aliases[id]
	return t, ok
}
