// Package catalog holds the fixed set of terminal themes shipped by the
// Rory Terminal theme pack.
package catalog

import (
	"errors"
	"fmt"
)

// DefaultThemeID is the theme assumed when nothing has been applied yet.
const DefaultThemeID = "hacker"

// ErrThemeNotFound is returned when a theme id is not in the catalog.
var ErrThemeNotFound = errors.New("theme not found")

// Colors is a theme's three-colour palette, as hex strings.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
}

// ThemeDescriptor is the display metadata for one theme.
type ThemeDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Colors      Colors `json:"colors"`
}

// Label returns the icon followed by the display name.
func (d ThemeDescriptor) Label() string {
	return d.Icon + " " + d.Name
}

// Catalog is an ordered, read-only set of themes.
type Catalog struct {
	themes []ThemeDescriptor
	index  map[string]int
}

// New builds a catalog preserving the order of themes.
// Duplicate ids keep their first position.
func New(themes ...ThemeDescriptor) *Catalog {
	c := &Catalog{
		themes: make([]ThemeDescriptor, 0, len(themes)),
		index:  make(map[string]int, len(themes)),
	}
	for _, t := range themes {
		if _, dup := c.index[t.ID]; dup {
			continue
		}
		c.index[t.ID] = len(c.themes)
		c.themes = append(c.themes, t)
	}
	return c
}

var builtin = New(
	ThemeDescriptor{
		ID:          "halloween",
		Name:        "Halloween",
		Icon:        "🎃",
		Description: "Spooky orange matrix rain with Halloween symbols",
		Colors:      Colors{Primary: "#ff6b00", Secondary: "#ff8800", Background: "#1a0f00"},
	},
	ThemeDescriptor{
		ID:          "christmas",
		Name:        "Christmas",
		Icon:        "🎄",
		Description: "Festive red and green with holiday cheer",
		Colors:      Colors{Primary: "#ff0000", Secondary: "#00ff00", Background: "#0f1a0f"},
	},
	ThemeDescriptor{
		ID:          "easter",
		Name:        "Easter",
		Icon:        "🐰",
		Description: "Pastel rainbow colors for spring",
		Colors:      Colors{Primary: "#ff69b4", Secondary: "#87ceeb", Background: "#1a0f1a"},
	},
	ThemeDescriptor{
		ID:          "hacker",
		Name:        "Hacker",
		Icon:        "💻",
		Description: "Bright green cyberpunk aesthetic",
		Colors:      Colors{Primary: "#00ff00", Secondary: "#33ff33", Background: "#0a1a0a"},
	},
	ThemeDescriptor{
		ID:          "matrix",
		Name:        "Matrix",
		Icon:        "🟢",
		Description: "Classic Matrix movie green",
		Colors:      Colors{Primary: "#0f0", Secondary: "#0f3", Background: "#001a00"},
	},
)

// Default returns the built-in catalog.
func Default() *Catalog {
	return builtin
}

// List returns the themes in catalog order. The slice is a copy.
func (c *Catalog) List() []ThemeDescriptor {
	out := make([]ThemeDescriptor, len(c.themes))
	copy(out, c.themes)
	return out
}

// IDs returns the theme ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.themes))
	for i, t := range c.themes {
		ids[i] = t.ID
	}
	return ids
}

// Get looks up a theme by id.
func (c *Catalog) Get(id string) (ThemeDescriptor, error) {
	i, ok := c.index[id]
	if !ok {
		return ThemeDescriptor{}, fmt.Errorf("%w: %q", ErrThemeNotFound, id)
	}
	return c.themes[i], nil
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// IndexOf returns the position of id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Len returns the number of themes.
func (c *Catalog) Len() int {
	return len(c.themes)
}

// DefaultTheme returns the descriptor for DefaultThemeID, or the first
// theme when the catalog does not contain it.
func (c *Catalog) DefaultTheme() ThemeDescriptor {
	if d, err := c.Get(DefaultThemeID); err == nil {
		return d
	}
	if len(c.themes) > 0 {
		return c.themes[0]
	}
	return ThemeDescriptor{}
}
