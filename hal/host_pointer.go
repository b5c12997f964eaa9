package hal

import "github.com/hajimehoshi/ebiten/v2"

type hostPointer struct {
	state PointerState
}

func (p *hostPointer) State() PointerState { return p.state }

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	p.state = PointerState{
		X:       x,
		Y:       y,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Wheel:   wy,
	}
}
