// Package inspect provides the interactive bug inspector scene.
package inspect

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/bugland/internal/application/replay"
	"github.com/younwookim/bugland/internal/application/scene"
	"github.com/younwookim/bugland/internal/application/state"
	"github.com/younwookim/bugland/internal/application/system"
	"github.com/younwookim/bugland/internal/application/viewer"
	"github.com/younwookim/bugland/internal/domain/bug"
	"github.com/younwookim/bugland/internal/infrastructure/config"
)

const helpText = "R/Shift+R: Rotate | H/V: Flip | =/-: Scale | M/N: Margin | T/F: Total/Fit | Tab: View | Arrows: Bug | BS: Undo | F5: Save"

// Inspect shows one catalog bug at a time and applies transforms on key presses
type Inspect struct {
	config      *config.ViewerConfig
	palette     config.Palette
	viewer      *viewer.Viewer
	inputSystem *InputSystem
	screenW     int
	screenH     int

	// Script recording
	recordFilename string
}

// New creates a new Inspect scene.
// If recordPath is not empty, the transform script is saved there on exit.
func New(cfg *config.ViewerConfig, entries []system.Entry, recordPath string) (*Inspect, error) {
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, fmt.Errorf("failed to parse colors: %w", err)
	}

	v, err := viewer.New(entries, cfg.Controls.MaxScale, cfg.Controls.MaxMargin)
	if err != nil {
		return nil, err
	}

	if recordPath != "" {
		log.Printf("Recording enabled: %s", recordPath)
	}

	return &Inspect{
		config:         cfg,
		palette:        palette,
		viewer:         v,
		inputSystem:    NewInputSystem(),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: recordPath,
	}, nil
}

// Viewer exposes the scene state, e.g. to preselect a bug or replay a script
func (p *Inspect) Viewer() *viewer.Viewer {
	return p.viewer
}

// Update handles input
func (p *Inspect) Update(_ float64) (scene.Scene, error) {
	p.handle(system.Commands(p.inputSystem.GetInput()))
	return nil, nil
}

func (p *Inspect) handle(cmds []system.Command) {
	for _, cmd := range cmds {
		if cmd == system.CmdSave {
			p.saveScript(p.recordFilename)
			continue
		}
		if err := p.viewer.Execute(cmd); err != nil {
			log.Printf("%s: %v", cmd, err)
		}
	}
}

// saveScript saves the transforms applied to the current bug
func (p *Inspect) saveScript(filename string) {
	rec := p.viewer.Script()
	if rec.StepCount() == 0 {
		log.Printf("Nothing to save for %s", p.viewer.EntryID())
		return
	}

	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := rec.Save(filename); err != nil {
		log.Printf("Failed to save script: %v", err)
	} else {
		log.Printf("Script saved: %s (%d steps)", filename, rec.StepCount())
	}
}

// Draw renders the scene
func (p *Inspect) Draw(screen *ebiten.Image) {
	screen.Fill(p.palette.Background)

	b := p.viewer.Display()
	p.drawBug(screen, b)
	p.drawUI(screen, b)
}

func (p *Inspect) drawBug(screen *ebiten.Image, b *bug.Bug) {
	pitch := p.config.Grid.CellSize + p.config.Grid.Gap
	size := float64(p.config.Grid.CellSize)
	bounds := b.Bounds()
	originX, originY := origin(bounds, pitch, p.screenW, p.screenH)

	mode := p.viewer.Mode()
	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			pat, mask := b.CellAt(row, col)
			c, ok := cellColor(p.palette, mode, pat != 0, mask != 0)
			if !ok {
				continue
			}
			x := float64(originX + (col-bounds.Min.X)*pitch)
			y := float64(originY + (row-bounds.Min.Y)*pitch)
			ebitenutil.DrawRect(screen, x, y, size, size, c)
		}
	}
}

func (p *Inspect) drawUI(screen *ebiten.Image, b *bug.Bug) {
	info := fmt.Sprintf("%s [%d/%d] %dx%d mask %dx%d | %s | scale %d margin %d | steps %d",
		b.Name(), p.viewer.Index()+1, p.viewer.Len(),
		b.Height(), b.Width(), b.MaskHeight(), b.MaskWidth(),
		p.viewer.Mode(), p.viewer.Scale(), p.viewer.Margin(), len(p.viewer.Ops()))
	ebitenutil.DebugPrintAt(screen, info, 4, p.screenH-18)
	ebitenutil.DebugPrint(screen, helpText)
}

// origin returns the screen position of bounds.Min that centres bounds
func origin(bounds image.Rectangle, pitch, screenW, screenH int) (x, y int) {
	return (screenW - bounds.Dx()*pitch) / 2, (screenH - bounds.Dy()*pitch) / 2
}

// cellColor picks the fill for a cell, reporting false when nothing is drawn
func cellColor(palette config.Palette, mode state.ViewMode, inPattern, inMask bool) (color.RGBA, bool) {
	showPattern := inPattern && mode.ShowsPattern()
	showMask := inMask && mode.ShowsMask()

	switch {
	case showPattern && showMask:
		return palette.Overlap, true
	case showPattern:
		return palette.Pattern, true
	case showMask:
		return palette.Mask, true
	default:
		return color.RGBA{}, false
	}
}

// OnEnter is called when entering this scene
func (p *Inspect) OnEnter() {
	log.Printf("Inspecting %s", p.viewer.EntryID())
}

// OnExit is called when leaving this scene
func (p *Inspect) OnExit() {
	if p.recordFilename != "" {
		p.saveScript(p.recordFilename)
	}
}

// Layout returns the viewer's screen dimensions
func (p *Inspect) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
