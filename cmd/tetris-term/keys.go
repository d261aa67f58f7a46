package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/input"
)

type action int

const (
	actionNone action = iota
	actionCommand
	actionRestart
	actionQuit
)

// keymap resolves terminal key events. Terminals report no key releases,
// so every event is one command and held keys rely on the terminal's own
// auto repeat.
type keymap struct {
	keys  *input.Bindings[tcell.Key]
	runes *input.Bindings[rune]
}

func newKeymap() keymap {
	keys := input.DefaultBindings(input.Layout[tcell.Key]{
		Left:  tcell.KeyLeft,
		Right: tcell.KeyRight,
		Down:  tcell.KeyDown,
		Up:    tcell.KeyUp,
	})

	runes := input.NewBindings[rune]()
	runes.Bind('h', engine.CommandMoveLeft, true)
	runes.Bind('l', engine.CommandMoveRight, true)
	runes.Bind('j', engine.CommandSoftDrop, true)
	runes.Bind('k', engine.CommandRotate, false)
	runes.Bind('z', engine.CommandRotate, false)
	runes.Bind('w', engine.CommandRotate, false)

	return keymap{keys: keys, runes: runes}
}

func (k keymap) resolve(ev *tcell.EventKey) (action, engine.Command) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, engine.CommandNone
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return actionQuit, engine.CommandNone
		case 'r':
			return actionRestart, engine.CommandNone
		}
		if binding, ok := k.runes.Lookup(ev.Rune()); ok {
			return actionCommand, binding.Command
		}
	default:
		if binding, ok := k.keys.Lookup(ev.Key()); ok {
			return actionCommand, binding.Command
		}
	}
	return actionNone, engine.CommandNone
}
