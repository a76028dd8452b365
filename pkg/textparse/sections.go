package textparse

import "strings"

// Sections parses responses organized as 【見出し】 blocks:
//
//	【紹介文】
//	《店名》
//	落ち着いた個室で味わう炭火焼き🍖
//	【おすすめの一品】
//	《特選カルビ》
//
// A section runs from its header to the next 【 header or end of text.
type Sections struct {
	values  map[string]string
	present map[string]bool
}

// ParseSections scans text for 【name】 headers.
func ParseSections(text string) *Sections {
	s := &Sections{
		values:  make(map[string]string),
		present: make(map[string]bool),
	}

	rest := text
	for {
		open := strings.Index(rest, "【")
		if open < 0 {
			break
		}
		rest = rest[open+len("【"):]
		close := strings.Index(rest, "】")
		if close < 0 {
			break
		}
		name := strings.TrimSpace(rest[:close])
		rest = rest[close+len("】"):]

		body := rest
		if next := strings.Index(rest, "【"); next >= 0 {
			body = rest[:next]
		}
		if !s.present[name] {
			s.present[name] = true
			s.values[name] = strings.TrimSpace(body)
		}
	}
	return s
}

// Get returns the section body, or fallback when the section is missing
// or empty. Callers apply their field defaults through this instead of
// duplicating fallback logic at each call site.
func (s *Sections) Get(name, fallback string) string {
	if v := s.values[name]; v != "" {
		return v
	}
	return fallback
}

// Has reports whether the section header appeared.
func (s *Sections) Has(name string) bool {
	return s.present[name]
}
