// Package textparse contains small parsers for the loose text formats the
// language model is asked to emit. The model gives no structural
// guarantee, so every parser here tolerates missing labels, reordered
// lines and surrounding commentary, and reports per-field presence
// instead of failing.
package textparse

import "strings"

// LabeledLines parses responses of the shape
//
//	場所: 渋谷
//	ジャンル: 焼肉
//
// Scanning is line anchored per label: the first line starting with the
// label (after trimming) wins, everything else is ignored.
type LabeledLines struct {
	values  map[string]string
	present map[string]bool
}

// ParseLabeledLines scans text for the given labels. Labels are matched
// with or without a trailing full-width or ASCII colon.
func ParseLabeledLines(text string, labels []string) *LabeledLines {
	p := &LabeledLines{
		values:  make(map[string]string, len(labels)),
		present: make(map[string]bool, len(labels)),
	}
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		line = strings.TrimPrefix(line, "- ")
		for _, label := range labels {
			if p.present[label] {
				continue
			}
			rest, ok := cutLabel(line, label)
			if !ok {
				continue
			}
			p.present[label] = true
			p.values[label] = strings.TrimSpace(rest)
		}
	}
	return p
}

// cutLabel strips "label:" or "label：" from the front of line.
func cutLabel(line, label string) (string, bool) {
	if !strings.HasPrefix(line, label) {
		return "", false
	}
	rest := line[len(label):]
	if strings.HasPrefix(rest, ":") {
		return rest[1:], true
	}
	if strings.HasPrefix(rest, "：") {
		return rest[len("："):], true
	}
	return "", false
}

// Get returns the captured value for label, "" when the label never
// appeared. A missing label is never an error.
func (p *LabeledLines) Get(label string) string {
	return p.values[label]
}

// Has reports whether the label appeared in the response at all.
func (p *LabeledLines) Has(label string) bool {
	return p.present[label]
}

// GetAll returns every captured value for label across the whole text,
// in order of appearance. Used for 店名: lists where the model may emit
// several lines with the same label.
func GetAllLabeled(text, label string) []string {
	var out []string
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		line = strings.TrimPrefix(line, "- ")
		if rest, ok := cutLabel(line, label); ok {
			if v := strings.TrimSpace(rest); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
