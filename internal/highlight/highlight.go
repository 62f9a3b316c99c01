// Package highlight turns raw source text into pre-colorized display lines.
// It wraps chroma behind types the rest of the application owns, so no other
// package depends on lexer or style internals.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/kk-code-lab/codescroll/internal/textutil"
)

const DefaultStyle = "monokai"

// RGB is a resolved 24-bit foreground color. Valid is false for fragments
// that should use the terminal default.
type RGB struct {
	R, G, B uint8
	Valid   bool
}

// Span is a run of text drawn in a single color.
type Span struct {
	Text string
	FG   RGB
}

// Line is one display row derived from one logical source line.
type Line []Span

// Text returns the line's content without color information.
func (l Line) Text() string {
	var b strings.Builder
	for _, span := range l {
		b.WriteString(span.Text)
	}
	return b.String()
}

// Highlighter resolves token colors against a single style chosen at startup.
type Highlighter struct {
	style *chroma.Style
}

// New creates a highlighter for the named chroma style, falling back to the
// library default when the name is unknown.
func New(styleName string) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{style: style}
}

// Highlight renders raw into display lines, one per logical source line, and
// reports the detected syntax name. Detection tries the file path first, then
// content analysis, then plain text. The result always has at least one line.
func (h *Highlighter) Highlight(path, raw string) ([]Line, string) {
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Analyse(raw)
	}
	name := ""
	if lexer == nil {
		lexer = lexers.Fallback
		name = "Plain Text"
	}
	lexer = chroma.Coalesce(lexer)
	if name == "" {
		name = lexer.Config().Name
	}

	raw = expandTabsPerLine(raw)

	iterator, err := lexer.Tokenise(nil, raw)
	if err != nil {
		return plainLines(raw), name
	}

	var lines []Line
	var current Line
	for token := iterator(); token != chroma.EOF; token = iterator() {
		fg := h.tokenColor(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current)
				current = nil
			}
			if part != "" {
				current = append(current, Span{Text: part, FG: fg})
			}
		}
	}

	// A trailing newline already produced its line; only a final unterminated
	// line (or a fully empty input) still needs appending.
	if len(lines) == 0 || !strings.HasSuffix(raw, "\n") {
		lines = append(lines, current)
	}
	return lines, name
}

func (h *Highlighter) tokenColor(tokenType chroma.TokenType) RGB {
	entry := h.style.Get(tokenType)
	if !entry.Colour.IsSet() {
		return RGB{}
	}
	return RGB{
		R:     entry.Colour.Red(),
		G:     entry.Colour.Green(),
		B:     entry.Colour.Blue(),
		Valid: true,
	}
}

// plainLines is the uncolored fallback when tokenization fails outright.
func plainLines(raw string) []Line {
	split := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
	lines := make([]Line, 0, len(split))
	for _, text := range split {
		if text == "" {
			lines = append(lines, Line{})
			continue
		}
		lines = append(lines, Line{{Text: text}})
	}
	if len(lines) == 0 {
		lines = append(lines, Line{})
	}
	return lines
}

// expandTabsPerLine expands tabs before tokenization so span boundaries line
// up with terminal columns. Tab stops restart on every line.
func expandTabsPerLine(raw string) string {
	if !strings.ContainsRune(raw, '\t') {
		return raw
	}
	parts := strings.Split(raw, "\n")
	for i, part := range parts {
		parts[i] = textutil.ExpandTabs(part, textutil.DefaultTabWidth)
	}
	return strings.Join(parts, "\n")
}
