package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/codescroll/internal/highlight"
	"github.com/kk-code-lab/codescroll/internal/playback"
	"github.com/kk-code-lab/codescroll/internal/textutil"
)

const headerName = "codescroll"

// keyHints is shown in the status line whenever no transient notice is up.
const keyHints = "q quit • space pause • n/p next/prev • r reload • g/G start/end • ←/→ also work"

// Renderer paints the session state onto a tcell screen: a one-row header,
// the windowed document body, and a one-row status line.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state.
func (r *Renderer) Render(state *playback.State) {
	r.screen.Clear()

	w, h := r.screen.Size()

	r.drawHeader(state, w)

	viewHeight := h - 2
	if viewHeight < 0 {
		viewHeight = 0
	}
	rows := playback.Window(state.Lines, state.ClampedScroll(), viewHeight)
	for i, line := range rows {
		r.drawBodyLine(line, i+1, w)
	}

	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

func (r *Renderer) drawHeader(state *playback.State, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	accentStyle := headerStyle.Foreground(r.theme.AccentFg).Bold(true)

	endX := r.drawTextLine(0, 0, w, headerName, accentStyle)
	if endX < w {
		r.screen.SetContent(endX, 0, ' ', nil, headerStyle)
		endX++
	}

	title := formatHeaderTitle(state)
	title = truncateTextToWidth(textutil.SanitizeTerminalText(title), w-endX)
	endX = r.drawTextLine(endX, 0, w, title, headerStyle)

	if state.Paused && endX < w {
		marker := " PAUSED"
		if textutil.DisplayWidth(marker) <= w-endX {
			endX = r.drawTextLine(endX, 0, w, marker, headerStyle.Foreground(r.theme.PausedFg).Bold(true))
		}
	}

	for x := endX; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, headerStyle)
	}
}

// formatHeaderTitle builds the header summary: path, queue position,
// detected syntax, and playback mode.
func formatHeaderTitle(state *playback.State) string {
	mode := "PLAY"
	if state.Paused {
		mode = ""
	}
	title := fmt.Sprintf("%s  (%d/%d)  [%s]", state.CurrentPath, state.FileIndex+1, len(state.Files), state.SyntaxName)
	if mode != "" {
		title += "  " + mode
	}
	return title
}

func (r *Renderer) drawBodyLine(line highlight.Line, y, w int) {
	x := 0
	for _, span := range line {
		if x >= w {
			return
		}
		style := tcell.StyleDefault.Background(r.theme.Background)
		if span.FG.Valid {
			style = style.Foreground(tcell.NewRGBColor(int32(span.FG.R), int32(span.FG.G), int32(span.FG.B)))
		}
		x = r.drawTextLine(x, y, w, textutil.SanitizeTerminalText(span.Text), style)
	}
}

func (r *Renderer) drawStatusLine(state *playback.State, w, h int) {
	if h < 2 {
		return
	}
	y := h - 1
	statusStyle := tcell.StyleDefault.Background(r.theme.StatusBg)

	text := keyHints
	style := statusStyle.Foreground(r.theme.HintFg)
	if state.Status != "" {
		text = state.Status
		style = statusStyle.Foreground(r.theme.NoticeFg)
	}

	text = truncateTextToWidth(textutil.SanitizeTerminalText(text), w)
	endX := r.drawTextLine(0, y, w, text, style)
	for x := endX; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

// drawTextLine draws text starting at (x, y), never past maxX, and returns
// the column after the last cell written.
func (r *Renderer) drawTextLine(x, y, maxX int, text string, style tcell.Style) int {
	for _, ru := range text {
		width := runewidth.RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		if x+width > maxX {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += width
	}
	return x
}

// truncateTextToWidth trims text to the given display width, ending with an
// ellipsis when anything was cut.
func truncateTextToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if textutil.DisplayWidth(text) <= width {
		return text
	}

	const ellipsis = "…"
	available := width - 1
	out := make([]rune, 0, len(text))
	used := 0
	for _, ru := range text {
		rw := runewidth.RuneWidth(ru)
		if rw < 1 {
			rw = 1
		}
		if used+rw > available {
			break
		}
		out = append(out, ru)
		used += rw
	}
	return string(out) + ellipsis
}
