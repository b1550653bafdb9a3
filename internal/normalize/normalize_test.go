package normalize

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"quotes dash and ellipsis", "He said “hi”—then left…", `He said "hi"...then left...`},
		{"apostrophes", "it’s ‘fine’", "it's 'fine'"},
		{"en dash", "pages 10–20", "pages 10...20"},
		{"repeated glyphs", "……", "......"},
		{"mixed with other unicode", "café — naïve →", "café ... naïve →"},
		{"plain ascii", "plain text", "plain text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeReturnsSameStringWhenClean(t *testing.T) {
	for _, in := range []string{
		"plain text",
		"unicode but untouched: café «» →",
		strings.Repeat("x", 4096),
	} {
		out := Normalize(in)
		require.Equal(t, in, out)
		assert.Equal(t, unsafe.StringData(in), unsafe.StringData(out), "clean input must be returned as-is")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"He said “hi”—then left…",
		"‘’“”–—…",
		"nothing to do",
		"...already ascii...",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
		assert.False(t, NeedsNormalization(once))
	}
}

func TestNormalizeLeavesOtherRunesAlone(t *testing.T) {
	in := "a—béc…d„e′"
	out := Normalize(in)
	assert.Equal(t, "a...béc...d„e′", out)
}

func TestNeedsNormalization(t *testing.T) {
	for _, g := range Glyphs() {
		assert.True(t, NeedsNormalization("x"+string(g.From)+"y"), g.Name)
	}
	assert.False(t, NeedsNormalization("plain"))
	assert.False(t, NeedsNormalization(""))
}

func TestGlyphsIsACopy(t *testing.T) {
	g := Glyphs()
	require.Len(t, g, 7)
	g[0].To = "changed"
	assert.Equal(t, "...", Glyphs()[0].To)
}
