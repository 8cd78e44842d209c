package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/planeview/internal/scene"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Plain writes each scene to w as a full-screen redraw, without a
// terminal program host.
type Plain struct {
	w      io.Writer
	render *Renderer
	phi    []float64
	frames int
}

func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w, render: NewRenderer(width, height)}
}

func (p *Plain) Start() error {
	_, err := io.WriteString(p.w, hideCursor)
	return err
}

func (p *Plain) Stop() error {
	_, err := io.WriteString(p.w, showCursor)
	return err
}

// Draw implements feed.Surface.
func (p *Plain) Draw(s scene.Scene) error {
	if err := p.render.Draw(s); err != nil {
		return err
	}
	p.frames++
	p.phi = pushHistory(p.phi, s.Phi)

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  frame %d\n", s.Title, p.frames))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	for _, row := range strings.SplitAfter(p.render.Canvas.Render(), "\n") {
		if row != "" {
			b.WriteString("  " + row)
		}
	}
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("  P=%s  Q=%s\n", vecString(s.P.Pos), vecString(s.Q.Pos)))
	b.WriteString("  " + Sparkline(p.phi, width-2) + "\n")

	_, err := io.WriteString(p.w, b.String())
	return err
}
