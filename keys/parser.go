package keys

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

var namedKeys = map[string]Event{
	"up":        Special(KeyUp),
	"down":      Special(KeyDown),
	"left":      Special(KeyLeft),
	"right":     Special(KeyRight),
	"home":      Special(KeyHome),
	"end":       Special(KeyEnd),
	"pageup":    Special(KeyPageUp),
	"pgup":      Special(KeyPageUp),
	"pagedown":  Special(KeyPageDown),
	"pgdn":      Special(KeyPageDown),
	"delete":    Special(KeyDelete),
	"del":       Special(KeyDelete),
	"escape":    Special(KeyEscape),
	"esc":       Special(KeyEscape),
	"enter":     Literal(Enter),
	"return":    Literal(Enter),
	"cr":        Literal(Enter),
	"tab":       Literal(Tab),
	"backspace": Literal(Backspace),
	"bs":        Literal(Backspace),
	"space":     Literal(' '),
}

// Parse parses a key specification into the event the decoder produces for it.
//
// Supported formats:
//   - Single character: "a", "Q", "/"
//   - Named keys: "enter", "escape", "backspace", "up", "pagedown", ...
//   - Control: "ctrl-s", "ctrl+s", "C-s", "<C-s>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		spec = spec[1 : len(spec)-1]
	}

	if len(spec) == 1 {
		return Literal(spec[0]), nil
	}

	lower := strings.ToLower(spec)
	if ev, ok := namedKeys[lower]; ok {
		return ev, nil
	}

	for _, prefix := range []string{"ctrl-", "ctrl+", "c-"} {
		if rest, ok := strings.CutPrefix(lower, prefix); ok {
			return parseCtrl(rest)
		}
	}

	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

func parseCtrl(rest string) (Event, error) {
	if len(rest) != 1 {
		return Event{}, fmt.Errorf("%w: ctrl needs a single character, got %q", ErrInvalidSpec, rest)
	}
	c := rest[0]
	if (c < 'a' || c > 'z') && !strings.ContainsRune("@[\\]^_", rune(c)) {
		return Event{}, fmt.Errorf("%w: no control code for %q", ErrInvalidSpec, rest)
	}
	return Literal(Ctrl(c)), nil
}
