// Package normalize rewrites typographic "smart" punctuation into plain ASCII.
//
// The glyph table is fixed: em dash, en dash, curly single and double quotes
// and the horizontal ellipsis. Text that contains none of them is returned
// as-is, without allocation, so callers can cheaply tell untouched clipboard
// content apart from content that needs a write-back.
package normalize

import "strings"

// Glyph is one entry of the replacement table.
type Glyph struct {
	From rune
	To   string
	Name string
}

var glyphs = []Glyph{
	{From: '—', To: "...", Name: "em dash"},
	{From: '–', To: "...", Name: "en dash"},
	{From: '’', To: "'", Name: "right single quotation mark"},
	{From: '‘', To: "'", Name: "left single quotation mark"},
	{From: '“', To: `"`, Name: "left double quotation mark"},
	{From: '”', To: `"`, Name: "right double quotation mark"},
	{From: '…', To: "...", Name: "horizontal ellipsis"},
}

var (
	targets  string
	replacer *strings.Replacer
)

func init() {
	var sb strings.Builder
	pairs := make([]string, 0, 2*len(glyphs))
	for _, g := range glyphs {
		sb.WriteRune(g.From)
		pairs = append(pairs, string(g.From), g.To)
	}
	targets = sb.String()
	replacer = strings.NewReplacer(pairs...)
}

// Glyphs returns a copy of the replacement table.
func Glyphs() []Glyph {
	out := make([]Glyph, len(glyphs))
	copy(out, glyphs)
	return out
}

// NeedsNormalization reports whether s contains any glyph from the table.
func NeedsNormalization(s string) bool {
	return strings.ContainsAny(s, targets)
}

// Normalize returns s with every table glyph replaced by its ASCII form.
// If s contains none of them, s itself is returned.
func Normalize(s string) string {
	if !NeedsNormalization(s) {
		return s
	}
	return replacer.Replace(s)
}
