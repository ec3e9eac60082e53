// Package termview renders bugs to a terminal with tcell.
package termview

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/bugland/internal/application/state"
	"github.com/younwookim/bugland/internal/application/system"
	"github.com/younwookim/bugland/internal/application/viewer"
	"github.com/younwookim/bugland/internal/domain/bug"
	"github.com/younwookim/bugland/internal/infrastructure/config"
)

const (
	patternRune = 'x'
	maskRune    = '.'

	// cellWidth is the number of terminal columns per bug cell
	cellWidth = 2
)

// Canvas is the part of tcell.Screen the renderer draws on
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Renderer holds the styles used for each kind of cell
type Renderer struct {
	PatternStyle tcell.Style
	MaskStyle    tcell.Style
	OverlapStyle tcell.Style
	TextStyle    tcell.Style
}

// NewRenderer builds terminal styles from a viewer palette
func NewRenderer(p config.Palette) Renderer {
	bg := rgb(p.Background)
	base := tcell.StyleDefault.Background(bg)
	return Renderer{
		PatternStyle: base.Foreground(rgb(p.Pattern)),
		MaskStyle:    base.Foreground(rgb(p.Mask)),
		OverlapStyle: base.Foreground(rgb(p.Overlap)).Bold(true),
		TextStyle:    base.Foreground(rgb(p.Text)),
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw draws b with its top-left bounds corner at (x, y) and returns the
// size of the drawn area in terminal cells.
func (r Renderer) Draw(c Canvas, b *bug.Bug, x, y int, mode state.ViewMode) (w, h int) {
	bounds := b.Bounds()
	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			pat, mask := b.CellAt(row, col)
			ch, style, ok := r.cell(mode, pat != 0, mask != 0)
			if !ok {
				continue
			}
			c.SetContent(x+(col-bounds.Min.X)*cellWidth, y+row-bounds.Min.Y, ch, nil, style)
		}
	}
	return bounds.Dx() * cellWidth, bounds.Dy()
}

func (r Renderer) cell(mode state.ViewMode, inPattern, inMask bool) (rune, tcell.Style, bool) {
	showPattern := inPattern && mode.ShowsPattern()
	showMask := inMask && mode.ShowsMask()

	switch {
	case showPattern && showMask:
		return patternRune, r.OverlapStyle, true
	case showPattern:
		return patternRune, r.PatternStyle, true
	case showMask:
		return maskRune, r.MaskStyle, true
	default:
		return 0, tcell.StyleDefault, false
	}
}

// DrawText writes s starting at (x, y) and returns the column after it
func DrawText(c Canvas, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		c.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// KeyCommand maps a key press to a viewer command.
// quit is true for Escape, Ctrl+C and 'q'.
func KeyCommand(key tcell.Key, ch rune) (cmd system.Command, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return system.CmdNone, true
	case tcell.KeyTab:
		return system.CmdCycleView, false
	case tcell.KeyRight:
		return system.CmdNext, false
	case tcell.KeyLeft:
		return system.CmdPrev, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return system.CmdUndo, false
	case tcell.KeyRune:
	default:
		return system.CmdNone, false
	}

	switch ch {
	case 'q':
		return system.CmdNone, true
	case 'r':
		return system.CmdRotate, false
	case 'R':
		return system.CmdRotateBack, false
	case 'h':
		return system.CmdHFlip, false
	case 'v':
		return system.CmdVFlip, false
	case '=', '+':
		return system.CmdScaleUp, false
	case '-':
		return system.CmdScaleDown, false
	case 'm':
		return system.CmdMarginUp, false
	case 'n':
		return system.CmdMarginDown, false
	case 't':
		return system.CmdTotalMask, false
	case 'f':
		return system.CmdFitMask, false
	case 'u':
		return system.CmdUndo, false
	default:
		return system.CmdNone, false
	}
}

// Render draws the viewer state: the bug, a status line and a help line
func Render(c Canvas, v *viewer.Viewer, r Renderer, status string) {
	b := v.Display()
	_, h := r.Draw(c, b, 1, 1, v.Mode())

	line := fmt.Sprintf("%s  %dx%d mask %dx%d  %s  scale %d margin %d  steps %d",
		b.Name(), b.Height(), b.Width(), b.MaskHeight(), b.MaskWidth(),
		v.Mode(), v.Scale(), v.Margin(), len(v.Ops()))
	DrawText(c, 1, h+2, line, r.TextStyle)
	if status != "" {
		DrawText(c, 1, h+3, status, r.TextStyle)
	}
	DrawText(c, 1, h+4, "r/R rotate  h/v flip  =/- scale  m/n margin  t/f total/fit  tab view  arrows bug  u undo  q quit", r.TextStyle)
}

// Reload carries a freshly loaded catalog into Run
type Reload struct {
	Entries []system.Entry
	Err     error
}

// PostReload wakes Run with a new catalog. It is safe to call from any goroutine.
func PostReload(screen tcell.Screen, r Reload) error {
	return screen.PostEvent(tcell.NewEventInterrupt(r))
}

// applyReload swaps the viewer's catalog and returns a status line
func applyReload(v *viewer.Viewer, r Reload) string {
	if r.Err != nil {
		return fmt.Sprintf("reload failed: %v", r.Err)
	}
	if err := v.Reload(r.Entries); err != nil {
		return fmt.Sprintf("reload failed: %v", err)
	}
	return fmt.Sprintf("reloaded %d bugs", len(r.Entries))
}

// Run draws v on an initialized screen and handles keys until the user quits.
// The caller owns the screen and calls Fini.
func Run(screen tcell.Screen, v *viewer.Viewer, r Renderer) {
	var status string
	for {
		screen.Clear()
		Render(screen, v, r, status)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			cmd, quit := KeyCommand(ev.Key(), ev.Rune())
			if quit {
				return
			}
			status = ""
			if err := v.Execute(cmd); err != nil {
				status = err.Error()
			}
		case *tcell.EventInterrupt:
			if reload, ok := ev.Data().(Reload); ok {
				status = applyReload(v, reload)
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// screen finalized
			return
		}
	}
}
