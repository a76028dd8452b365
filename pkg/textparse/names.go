package textparse

import "strings"

const shopNameLabel = "店名"

// ShopNames extracts the shop names a selection response announced via
// 店名: lines. Decorations the model tends to add (bullet markers,
// 《...》 quoting) are stripped.
func ShopNames(text string) []string {
	raw := GetAllLabeled(text, shopNameLabel)
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.Trim(name, "《》「」\"")
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// NormalizeName collapses all whitespace so that a model-emitted name and
// the catalog's stored name compare equal despite spacing differences.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), "")
}

// SameName reports whether two shop names match after whitespace
// normalization, falling back to substring containment for names the
// model abbreviated or extended.
func SameName(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
