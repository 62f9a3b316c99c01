package playback

import "github.com/kk-code-lab/codescroll/internal/highlight"

// Window maps a scroll offset to the slice of display lines to render,
// right-padded with blank lines so the result always has exactly height
// rows. Padding keeps short files and end-of-file from shifting the layout.
// The function is pure and never indexes out of bounds.
func Window(lines []highlight.Line, scroll, height int) []highlight.Line {
	if height <= 0 {
		return nil
	}

	start := scroll
	if max := len(lines) - 1; start > max {
		start = max
	}
	if start < 0 {
		start = 0
	}

	end := start + height
	if end > len(lines) {
		end = len(lines)
	}

	out := make([]highlight.Line, 0, height)
	if start < end {
		out = append(out, lines[start:end]...)
	}
	for len(out) < height {
		out = append(out, highlight.Line{})
	}
	return out
}
