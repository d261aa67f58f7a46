package input

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/engine"
)

const (
	DefaultRepeatDelay = 0.2
	DefaultRepeatRate  = 0.05
)

// KeyState is a key's condition this frame. Pressed is true only on the
// frame the key went down.
type KeyState struct {
	Pressed bool
	Down    bool
}

// Poller turns polled key states into commands, repeating held keys.
type Poller[K intmap.IntKey] struct {
	Bindings    *Bindings[K]
	RepeatDelay float64
	RepeatRate  float64

	held *intmap.Map[K, float64]
}

// NewPoller returns a Poller over bindings with the default repeat timing.
func NewPoller[K intmap.IntKey](bindings *Bindings[K]) *Poller[K] {
	return &Poller[K]{
		Bindings:    bindings,
		RepeatDelay: DefaultRepeatDelay,
		RepeatRate:  DefaultRepeatRate,
		held:        intmap.New[K, float64](16),
	}
}

// Poll checks every bound key through state and returns the commands to
// issue this frame. dt is the frame time in seconds.
func (p *Poller[K]) Poll(dt float64, state func(K) KeyState) []engine.Command {
	var cmds []engine.Command

	for _, key := range p.Bindings.Keys() {
		binding, _ := p.Bindings.Lookup(key)
		ks := state(key)

		switch {
		case ks.Pressed:
			p.held.Put(key, 0)
			cmds = append(cmds, binding.Command)
		case ks.Down && binding.Repeat:
			elapsed, _ := p.held.Get(key)
			elapsed += dt
			if elapsed > p.RepeatDelay {
				elapsed -= p.RepeatRate
				cmds = append(cmds, binding.Command)
			}
			p.held.Put(key, elapsed)
		case !ks.Down:
			p.held.Del(key)
		}
	}

	return cmds
}

// Reset forgets every held key.
func (p *Poller[K]) Reset() {
	p.held.Clear()
}
