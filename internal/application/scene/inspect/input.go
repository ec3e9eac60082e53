package inspect

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/bugland/internal/application/system"
)

// InputSystem reads viewer key presses
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() system.InputState {
	return system.InputState{
		Rotate:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		Shift:      ebiten.IsKeyPressed(ebiten.KeyShift),
		HFlip:      inpututil.IsKeyJustPressed(ebiten.KeyH),
		VFlip:      inpututil.IsKeyJustPressed(ebiten.KeyV),
		ScaleUp:    inpututil.IsKeyJustPressed(ebiten.KeyEqual),
		ScaleDown:  inpututil.IsKeyJustPressed(ebiten.KeyMinus),
		MarginUp:   inpututil.IsKeyJustPressed(ebiten.KeyM),
		MarginDown: inpututil.IsKeyJustPressed(ebiten.KeyN),
		Total:      inpututil.IsKeyJustPressed(ebiten.KeyT),
		Fit:        inpututil.IsKeyJustPressed(ebiten.KeyF),
		CycleView:  inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Next:       inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		Prev:       inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		Undo:       inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		Save:       inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}
