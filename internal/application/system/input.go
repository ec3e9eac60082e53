package system

// Command is a viewer action triggered by a key press
type Command int

const (
	CmdNone Command = iota
	CmdRotate
	CmdRotateBack
	CmdHFlip
	CmdVFlip
	CmdScaleUp
	CmdScaleDown
	CmdMarginUp
	CmdMarginDown
	CmdTotalMask
	CmdFitMask
	CmdCycleView
	CmdNext
	CmdPrev
	CmdUndo
	CmdSave
)

// String returns the string representation of the command
func (c Command) String() string {
	switch c {
	case CmdRotate:
		return "Rotate"
	case CmdRotateBack:
		return "RotateBack"
	case CmdHFlip:
		return "HFlip"
	case CmdVFlip:
		return "VFlip"
	case CmdScaleUp:
		return "ScaleUp"
	case CmdScaleDown:
		return "ScaleDown"
	case CmdMarginUp:
		return "MarginUp"
	case CmdMarginDown:
		return "MarginDown"
	case CmdTotalMask:
		return "TotalMask"
	case CmdFitMask:
		return "FitMask"
	case CmdCycleView:
		return "CycleView"
	case CmdNext:
		return "Next"
	case CmdPrev:
		return "Prev"
	case CmdUndo:
		return "Undo"
	case CmdSave:
		return "Save"
	default:
		return "None"
	}
}

// InputState holds the viewer keys pressed this frame
type InputState struct {
	Rotate     bool // R
	Shift      bool // R with shift rotates counter-clockwise
	HFlip      bool // H
	VFlip      bool // V
	ScaleUp    bool // =
	ScaleDown  bool // -
	MarginUp   bool // M
	MarginDown bool // N
	Total      bool // T
	Fit        bool // F
	CycleView  bool // Tab
	Next       bool // Right
	Prev       bool // Left
	Undo       bool // Backspace
	Save       bool // F5
}

// Commands maps an input state to commands in a fixed order:
// navigation first, then transforms, then view and bookkeeping.
func Commands(in InputState) []Command {
	var cmds []Command
	if in.Prev {
		cmds = append(cmds, CmdPrev)
	}
	if in.Next {
		cmds = append(cmds, CmdNext)
	}
	if in.Rotate {
		if in.Shift {
			cmds = append(cmds, CmdRotateBack)
		} else {
			cmds = append(cmds, CmdRotate)
		}
	}
	if in.HFlip {
		cmds = append(cmds, CmdHFlip)
	}
	if in.VFlip {
		cmds = append(cmds, CmdVFlip)
	}
	if in.ScaleUp {
		cmds = append(cmds, CmdScaleUp)
	}
	if in.ScaleDown {
		cmds = append(cmds, CmdScaleDown)
	}
	if in.MarginUp {
		cmds = append(cmds, CmdMarginUp)
	}
	if in.MarginDown {
		cmds = append(cmds, CmdMarginDown)
	}
	if in.Total {
		cmds = append(cmds, CmdTotalMask)
	}
	if in.Fit {
		cmds = append(cmds, CmdFitMask)
	}
	if in.CycleView {
		cmds = append(cmds, CmdCycleView)
	}
	if in.Undo {
		cmds = append(cmds, CmdUndo)
	}
	if in.Save {
		cmds = append(cmds, CmdSave)
	}
	return cmds
}
