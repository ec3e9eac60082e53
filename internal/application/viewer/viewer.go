// Package viewer holds the transform state shared by the window and terminal
// bug viewers.
package viewer

import (
	"errors"
	"fmt"

	"github.com/younwookim/bugland/internal/application/replay"
	"github.com/younwookim/bugland/internal/application/state"
	"github.com/younwookim/bugland/internal/application/system"
	"github.com/younwookim/bugland/internal/domain/bug"
)

// ErrEmptyCatalog is returned when the viewer is given no bugs
var ErrEmptyCatalog = errors.New("catalog has no bugs")

// frame is one entry of the undo stack
type frame struct {
	bug    *bug.Bug
	op     system.Op
	margin int
}

// Viewer is the input-independent state of a bug viewer: the selected
// catalog bug, the transforms applied to it, the display scale and the view mode.
//
// Scale is kept out of the transform history: rotations, flips and mask
// changes apply to the unscaled bug and the scale is applied for display.
type Viewer struct {
	entries []system.Entry
	index   int

	current *bug.Bug
	history []frame
	margin  int
	scale   int
	mode    state.ViewMode

	maxScale  int
	maxMargin int
}

// New creates a viewer on the first catalog entry
func New(entries []system.Entry, maxScale, maxMargin int) (*Viewer, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	if maxScale < 1 {
		maxScale = 1
	}
	if maxMargin < 0 {
		maxMargin = 0
	}

	v := &Viewer{
		entries:   entries,
		maxScale:  maxScale,
		maxMargin: maxMargin,
		mode:      state.ViewOverlay,
	}
	v.selectEntry(0)
	return v, nil
}

// Select jumps to the entry with the given id
func (v *Viewer) Select(id string) bool {
	for i, e := range v.entries {
		if e.ID == id {
			v.selectEntry(i)
			return true
		}
	}
	return false
}

// Reload replaces the catalog, staying on the selected id when it still
// exists. The undo history is cleared.
func (v *Viewer) Reload(entries []system.Entry) error {
	if len(entries) == 0 {
		return ErrEmptyCatalog
	}
	id := v.EntryID()
	v.entries = entries
	if !v.Select(id) {
		v.selectEntry(0)
	}
	return nil
}

func (v *Viewer) selectEntry(i int) {
	n := len(v.entries)
	v.index = ((i % n) + n) % n
	v.current = v.entries[v.index].Bug
	v.history = v.history[:0]
	v.scale = 1
	v.margin = v.current.MarginWidth()
	if v.margin < 0 {
		v.margin = 0
	}
}

// Execute runs a single command. CmdSave is left to the caller.
func (v *Viewer) Execute(cmd system.Command) error {
	switch cmd {
	case system.CmdRotate:
		return v.Apply(system.Rotate{Angle: 90})
	case system.CmdRotateBack:
		return v.Apply(system.Rotate{Angle: 270})
	case system.CmdHFlip:
		return v.Apply(system.HFlip{})
	case system.CmdVFlip:
		return v.Apply(system.VFlip{})
	case system.CmdScaleUp:
		if v.scale < v.maxScale {
			v.scale++
		}
	case system.CmdScaleDown:
		if v.scale > 1 {
			v.scale--
		}
	case system.CmdMarginUp:
		if v.margin < v.maxMargin {
			return v.Apply(system.Margin{Width: v.margin + 1})
		}
	case system.CmdMarginDown:
		if v.margin > 0 {
			return v.Apply(system.Margin{Width: v.margin - 1})
		}
	case system.CmdTotalMask:
		return v.Apply(system.TotalMask{})
	case system.CmdFitMask:
		return v.Apply(system.FitMask{})
	case system.CmdCycleView:
		v.mode = v.mode.Next()
	case system.CmdNext:
		v.selectEntry(v.index + 1)
	case system.CmdPrev:
		v.selectEntry(v.index - 1)
	case system.CmdUndo:
		v.Undo()
	}
	return nil
}

// Apply applies op to the current bug and pushes it on the undo stack
func (v *Viewer) Apply(op system.Op) error {
	next, err := op.Apply(v.current)
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", op, err)
	}

	v.history = append(v.history, frame{bug: v.current, op: op, margin: v.margin})
	v.current = next

	switch o := op.(type) {
	case system.Margin:
		v.margin = o.Width
	case system.FitMask:
		v.margin = 0
	}
	return nil
}

// Replay applies the remaining steps of r through Apply, so each one can be undone
func (v *Viewer) Replay(r *replay.Replayer) error {
	for {
		op, ok, err := r.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := v.Apply(op); err != nil {
			return err
		}
	}
}

// Undo reverts the last applied op. It reports false when there is nothing to undo.
func (v *Viewer) Undo() bool {
	if len(v.history) == 0 {
		return false
	}
	last := v.history[len(v.history)-1]
	v.history = v.history[:len(v.history)-1]
	v.current = last.bug
	v.margin = last.margin
	return true
}

// Bug returns the current unscaled bug
func (v *Viewer) Bug() *bug.Bug {
	return v.current
}

// Display returns the current bug at the display scale
func (v *Viewer) Display() *bug.Bug {
	if v.scale == 1 {
		return v.current
	}
	scaled, err := v.current.ScaleUniform(v.scale)
	if err != nil {
		return v.current
	}
	return scaled
}

// Ops returns the transforms applied since the entry was selected
func (v *Viewer) Ops() []system.Op {
	ops := make([]system.Op, len(v.history))
	for i, f := range v.history {
		ops[i] = f.op
	}
	return ops
}

// Script records the applied transforms, followed by the display scale
// when it is above 1, so replaying it reproduces Display.
func (v *Viewer) Script() *replay.Recorder {
	rec := replay.NewRecorder(v.EntryID())
	for _, op := range v.Ops() {
		rec.RecordStep(op)
	}
	if v.scale > 1 {
		rec.RecordStep(system.Scale{X: v.scale, Y: v.scale})
	}
	return rec
}

// EntryID returns the id of the selected catalog entry
func (v *Viewer) EntryID() string {
	return v.entries[v.index].ID
}

// Len returns the number of catalog entries
func (v *Viewer) Len() int {
	return len(v.entries)
}

// Index returns the position of the selected entry in the catalog
func (v *Viewer) Index() int {
	return v.index
}

// Mode returns the view mode
func (v *Viewer) Mode() state.ViewMode {
	return v.mode
}

// Scale returns the display scale
func (v *Viewer) Scale() int {
	return v.scale
}

// Margin returns the margin last applied through the viewer
func (v *Viewer) Margin() int {
	return v.margin
}
