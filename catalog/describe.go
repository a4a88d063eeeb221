package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/runenames"
)

const (
	zeroWidthJoiner    = '\u200d'
	variationSelector  = '\ufe0f'
	textPresentationVS = '\ufe0e'
)

// GlyphInfo is the tooltip data for a glyph.
type GlyphInfo struct {
	Glyph      string `json:"glyph"`
	CodePoints string `json:"codePoints"`
	Name       string `json:"name"`
}

// CodePoints formats every rune of glyph as U+XXXX, separated by spaces.
func CodePoints(glyph string) string {
	parts := make([]string, 0, len(glyph))
	for _, r := range glyph {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}

// Describe returns code points and a readable name for glyph.
// Joiners and variation selectors are left out of the name.
func Describe(glyph string) GlyphInfo {
	title := cases.Title(language.English)

	var names []string
	for _, r := range glyph {
		switch r {
		case zeroWidthJoiner, variationSelector, textPresentationVS:
			continue
		}
		n := runenames.Name(r)
		if n == "" {
			continue
		}
		names = append(names, title.String(strings.ToLower(n)))
	}

	return GlyphInfo{
		Glyph:      glyph,
		CodePoints: CodePoints(glyph),
		Name:       strings.Join(names, ", "),
	}
}
