package term

import (
	"github.com/gdamore/tcell/v2"

	"snake-arcade/game/types"
)

// Command is a non-movement key action
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdRestart
	CmdPause
	CmdAutopilot
)

// Keys turns terminal events into a per-frame pressed set. Terminals report
// key presses but never releases, so a direction counts as pressed only in
// the frame its event is drained.
type Keys struct {
	events  chan tcell.Event
	pressed types.DirectionSet
	resized bool
}

func NewKeys(buffer int) *Keys {
	return &Keys{events: make(chan tcell.Event, buffer)}
}

// Listen forwards screen events until the screen is finalized
func (k *Keys) Listen(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		k.Push(ev)
	}
}

// Push queues an event without blocking; events beyond the buffer are dropped
func (k *Keys) Push(ev tcell.Event) {
	select {
	case k.events <- ev:
	default:
	}
}

// Drain processes every queued event for this frame and returns the commands seen
func (k *Keys) Drain() []Command {
	k.pressed = 0
	k.resized = false
	var cmds []Command
	for {
		select {
		case ev := <-k.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if d, ok := keyDirection(ev); ok {
					k.pressed = k.pressed.With(d)
					continue
				}
				if cmd := keyCommand(ev); cmd != CmdNone {
					cmds = append(cmds, cmd)
				}
			case *tcell.EventResize:
				k.resized = true
			}
		default:
			return cmds
		}
	}
}

// Pressed reports whether d was pressed during the last drained frame
func (k *Keys) Pressed(d types.Direction) bool {
	return k.pressed.Has(d)
}

// Resized reports whether the terminal changed size during the last drained frame
func (k *Keys) Resized() bool {
	return k.resized
}

func keyDirection(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return types.Up, true
		case 's', 'S', 'j':
			return types.Down, true
		case 'a', 'A', 'h':
			return types.Left, true
		case 'd', 'D', 'l':
			return types.Right, true
		}
	}
	return types.Up, false
}

func keyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyTab:
		return CmdAutopilot
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return CmdQuit
		case 'r', 'R':
			return CmdRestart
		case 'p', 'P', ' ':
			return CmdPause
		}
	}
	return CmdNone
}
