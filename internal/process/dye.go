package process

import (
	"strings"
	"unicode"
)

// DyeCategory says where in the line a dye bath sits.
type DyeCategory string

const (
	// DyeInLine dyes are applied within the main process sequence.
	DyeInLine DyeCategory = "in-line"
	// DyeOffLine dyes require an interim unload around the dye step.
	DyeOffLine DyeCategory = "off-line"
	// DyeNone means the part is not dyed.
	DyeNone DyeCategory = "none"
)

// UndyedDyeName is the canonical dye name for an undyed part.
const UndyedDyeName = "Default (un-dyed)"

// dyeCategories is the fixed dye taxonomy of the line.
var dyeCategories = map[string]DyeCategory{
	"Gold":          DyeInLine,
	"Black":         DyeInLine,
	"Premium Black": DyeOffLine,
	"Blue":          DyeOffLine,
	"Turquoise":     DyeOffLine,
	"Stainless":     DyeOffLine,
	"Green":         DyeOffLine,
	"Bronze":        DyeOffLine,
	"Red":           DyeOffLine,
	"Orange":        DyeOffLine,
	UndyedDyeName:   DyeNone,
	"No":            DyeNone,
}

// CategorizeDye classifies a dye name. Names outside the fixed taxonomy are
// treated as off-line dyes.
func CategorizeDye(name string) DyeCategory {
	if cat, ok := dyeCategories[name]; ok {
		return cat
	}
	return DyeOffLine
}

// CanonicalDyeName title-cases a dye name so lookups are insensitive to how
// the part record was entered ("premium black" -> "Premium Black").
func CanonicalDyeName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// isDyeBath reports whether an operation name is a dye bath from the fixed
// taxonomy. Dye baths share their bay and own no timeline slot.
func isDyeBath(name string) bool {
	cat, ok := dyeCategories[name]
	return ok && cat != DyeNone
}
