// Package catalog provides the static emoji catalog shown in the picker tabs.
package catalog

import (
	"slices"
	"sync"

	"github.com/rivo/uniseg"
)

// Collection tab names. These tabs are backed by the history store rather
// than by a catalog category.
const (
	TabRecent    = "Recent"
	TabFavorites = "Favorites"
)

// Subcategory is a named, ordered group of glyphs.
type Subcategory struct {
	Name   string   `json:"name"`
	Glyphs []string `json:"glyphs"`
}

// Category is a top-level catalog section.
type Category struct {
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Tab describes one entry of the picker's tab strip.
// Category is empty for the Recent and Favorites tabs.
type Tab struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category,omitempty"`
}

var tabs = []Tab{
	{Name: "Faces", Icon: "😀", Category: "Faces"},
	{Name: "People", Icon: "👤", Category: "People"},
	{Name: "Leisure", Icon: "🎯", Category: "Leisure"},
	{Name: "Nature", Icon: "🐾", Category: "Nature (Animals)"},
	{Name: "Food", Icon: "🍎", Category: "Food/Drinks"},
	{Name: "City", Icon: "🏙️", Category: "City"},
	{Name: "Office", Icon: "💼", Category: "Office"},
	{Name: "IT/UI", Icon: "💻", Category: "IT/UI"},
	{Name: "Misc", Icon: "🔷", Category: "MISC/Squares/Circles"},
	{Name: TabRecent, Icon: "🕐"},
	{Name: TabFavorites, Icon: "🧩"},
}

// Catalog is an immutable view over the authored categories.
// It is safe for concurrent use.
type Catalog struct {
	categories []Category
	byName     map[string]int
}

// Default returns the process-wide catalog, built on first use.
var Default = sync.OnceValue(func() *Catalog {
	return New(categories)
})

// New builds a Catalog over cats. The slice is not copied; callers must not
// modify it afterwards.
func New(cats []Category) *Catalog {
	byName := make(map[string]int, len(cats))
	for i, c := range cats {
		byName[c.Name] = i
	}
	return &Catalog{categories: cats, byName: byName}
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// Category looks up a category by its catalog name.
func (c *Catalog) Category(name string) (Category, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Tabs returns the tab strip in display order.
func (c *Catalog) Tabs() []Tab {
	return slices.Clone(tabs)
}

// IsGlyph reports whether s is exactly one user-perceived character.
func IsGlyph(s string) bool {
	return s != "" && uniseg.GraphemeClusterCount(s) == 1
}
