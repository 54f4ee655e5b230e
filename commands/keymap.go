package commands

import (
	"errors"
	"fmt"
	"maps"

	"atlas/keys"
)

// Keymap binds key events to command names.
type Keymap struct {
	bindings map[keys.Event]string
}

// ErrConflictingBinding is returned when two specs for the same key are bound
// to different commands.
var ErrConflictingBinding = errors.New("conflicting key binding")

// NewKeymap parses bindings of key spec to command name, e.g. "ctrl-s": "save".
func NewKeymap(bindings map[string]string) (*Keymap, error) {
	k := &Keymap{bindings: make(map[keys.Event]string, len(bindings))}
	for spec, name := range bindings {
		ev, err := keys.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", spec, err)
		}
		if bound, ok := k.bindings[ev]; ok && bound != name {
			return nil, fmt.Errorf("%w: %s is bound to both %q and %q", ErrConflictingBinding, ev, bound, name)
		}
		k.bindings[ev] = name
	}
	return k, nil
}

func (k *Keymap) Lookup(ev keys.Event) (string, bool) {
	name, ok := k.bindings[ev]
	return name, ok
}

// Resolve rewrites every bound name to the full command name it abbreviates.
func (k *Keymap) Resolve(c *Commands) error {
	resolved := maps.Clone(k.bindings)
	for ev, name := range k.bindings {
		full, err := c.Resolve(name)
		if err != nil {
			return fmt.Errorf("binding %s: %w", ev, err)
		}
		resolved[ev] = full
	}
	k.bindings = resolved
	return nil
}

// KeyFor returns the first key, in spec notation, bound to command name.
func (k *Keymap) KeyFor(name string) string {
	best := ""
	for ev, bound := range k.bindings {
		s := ev.String()
		if bound == name && (best == "" || s < best) {
			best = s
		}
	}
	return best
}
