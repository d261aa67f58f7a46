// Package input maps frontend key codes to engine commands.
//
// Key types differ between frontends (ebiten.Key, raylib's int32 key codes,
// tcell.Key, runes), so everything here is generic over any integer key.
package input

import (
	"cmp"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/engine"
)

// Binding is what a key does. Repeat marks commands that fire again while
// the key is held.
type Binding struct {
	Command engine.Command
	Repeat  bool
}

// Bindings is a key table for one frontend.
type Bindings[K intmap.IntKey] struct {
	table *intmap.Map[K, Binding]
}

// NewBindings returns an empty table.
func NewBindings[K intmap.IntKey]() *Bindings[K] {
	return &Bindings[K]{table: intmap.New[K, Binding](16)}
}

// Bind maps key to cmd, replacing any previous binding.
func (b *Bindings[K]) Bind(key K, cmd engine.Command, repeat bool) {
	b.table.Put(key, Binding{Command: cmd, Repeat: repeat})
}

// Unbind removes key and reports whether it was bound.
func (b *Bindings[K]) Unbind(key K) bool {
	return b.table.Del(key)
}

// Lookup returns the binding for key.
func (b *Bindings[K]) Lookup(key K) (Binding, bool) {
	return b.table.Get(key)
}

// Len is the number of bound keys.
func (b *Bindings[K]) Len() int {
	return b.table.Len()
}

// Keys returns every bound key in ascending order.
func (b *Bindings[K]) Keys() []K {
	keys := make([]K, 0, b.table.Len())
	for key := range b.table.Keys() {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, cmp.Compare[K])
	return keys
}

// Layout names the frontend's codes for the keys a default layout uses.
// Zero-valued alternates are skipped.
type Layout[K intmap.IntKey] struct {
	Left, Right, Down, Up K
	AltLeft, AltRight     K
	AltDown, AltRotate    K
}

// DefaultBindings binds the arrow keys (up rotates) and the optional
// alternates. Horizontal moves and soft drop repeat while held.
func DefaultBindings[K intmap.IntKey](layout Layout[K]) *Bindings[K] {
	b := NewBindings[K]()

	b.Bind(layout.Left, engine.CommandMoveLeft, true)
	b.Bind(layout.Right, engine.CommandMoveRight, true)
	b.Bind(layout.Down, engine.CommandSoftDrop, true)
	b.Bind(layout.Up, engine.CommandRotate, false)

	var zero K
	alternates := []struct {
		key    K
		cmd    engine.Command
		repeat bool
	}{
		{layout.AltLeft, engine.CommandMoveLeft, true},
		{layout.AltRight, engine.CommandMoveRight, true},
		{layout.AltDown, engine.CommandSoftDrop, true},
		{layout.AltRotate, engine.CommandRotate, false},
	}
	for _, alt := range alternates {
		if alt.key != zero {
			b.Bind(alt.key, alt.cmd, alt.repeat)
		}
	}

	return b
}
