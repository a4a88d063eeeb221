package catalog

import "testing"

func TestTabsResolveToCategories(t *testing.T) {
	c := Default()

	for _, tab := range c.Tabs() {
		if tab.Category == "" {
			if tab.Name != TabRecent && tab.Name != TabFavorites {
				t.Errorf("tab %q has no category and is not a collection tab", tab.Name)
			}
			continue
		}
		cat, ok := c.Category(tab.Category)
		if !ok {
			t.Errorf("tab %q: category %q not found", tab.Name, tab.Category)
			continue
		}
		if len(cat.Subcategories) == 0 {
			t.Errorf("category %q has no subcategories", cat.Name)
		}
	}
}

func TestEveryGlyphIsSingleGrapheme(t *testing.T) {
	for _, cat := range Default().Categories() {
		for _, sub := range cat.Subcategories {
			if len(sub.Glyphs) == 0 {
				t.Errorf("%s/%s is empty", cat.Name, sub.Name)
			}
			for i, g := range sub.Glyphs {
				if !IsGlyph(g) {
					t.Errorf("%s/%s[%d] = %q (%s) is not a single glyph", cat.Name, sub.Name, i, g, CodePoints(g))
				}
			}
		}
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	c := Default()
	cats := c.Categories()
	cats[0] = Category{Name: "mutated"}

	if got := c.Categories()[0].Name; got != "Faces" {
		t.Errorf("first category = %q, want %q", got, "Faces")
	}
}

func TestIsGlyph(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"single", "😀", true},
		{"variation selector", "\u2639\ufe0f", true},
		{"zwj family", "\U0001F468\u200d\U0001F469\u200d\U0001F467", true},
		{"skin tone", "\U0001F44B\U0001F3FD", true},
		{"two glyphs", "\U0001F600\U0001F602", false},
		{"plain text", "ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsGlyph(tt.in); got != tt.want {
				t.Errorf("IsGlyph(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCodePoints(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"😀", "U+1F600"},
		{"\u2639\ufe0f", "U+2639 U+FE0F"},
		{"A", "U+0041"},
		{"\U0001F468\u200d\U0001F4BB", "U+1F468 U+200D U+1F4BB"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CodePoints(tt.in); got != tt.want {
			t.Errorf("CodePoints(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
	}{
		{"😀", "Grinning Face"},
		{"\U0001F468\u200d\U0001F4BB", "Man, Personal Computer"},
		{"\u2764\ufe0f", "Heavy Black Heart"},
	}

	for _, tt := range tests {
		info := Describe(tt.in)
		if info.Name != tt.wantName {
			t.Errorf("Describe(%q).Name = %q, want %q", tt.in, info.Name, tt.wantName)
		}
		if info.Glyph != tt.in {
			t.Errorf("Describe(%q).Glyph = %q", tt.in, info.Glyph)
		}
		if info.CodePoints != CodePoints(tt.in) {
			t.Errorf("Describe(%q).CodePoints = %q", tt.in, info.CodePoints)
		}
	}
}
