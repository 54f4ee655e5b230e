package keys

import "fmt"

// Key identifies a logical key. KeyLiteral carries its byte in Event.Byte.
type Key int

const (
	KeyLiteral Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyEscape
)

// Bytes with a fixed meaning in raw mode.
const (
	Escape    byte = 0x1b
	Enter     byte = '\r'
	Tab       byte = '\t'
	Backspace byte = 127
)

// Ctrl returns the byte sent for c pressed together with Ctrl.
func Ctrl(c byte) byte {
	return c & 0x1f
}

var keyNames = map[Key]string{
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "pageup",
	KeyPageDown: "pagedown",
	KeyDelete:   "delete",
	KeyEscape:   "escape",
}

// Event is one decoded key press.
type Event struct {
	Key  Key
	Byte byte
}

func Literal(c byte) Event {
	return Event{Key: KeyLiteral, Byte: c}
}

func Special(k Key) Event {
	return Event{Key: k}
}

// IsLiteral reports whether e carries a byte to insert or bind.
func (e Event) IsLiteral() bool {
	return e.Key == KeyLiteral
}

// IsPrintable reports whether e is a printable ASCII byte.
func (e Event) IsPrintable() bool {
	return e.IsLiteral() && e.Byte >= 32 && e.Byte < 127
}

// String renders e in the notation accepted by Parse.
func (e Event) String() string {
	if e.Key != KeyLiteral {
		if name, ok := keyNames[e.Key]; ok {
			return name
		}
		return fmt.Sprintf("key(%d)", int(e.Key))
	}

	switch c := e.Byte; {
	case c == Enter:
		return "enter"
	case c == Tab:
		return "tab"
	case c == Backspace:
		return "backspace"
	case c == ' ':
		return "space"
	case c == 0:
		return "ctrl-@"
	case c >= 1 && c <= 26:
		return "ctrl-" + string(rune('a'+c-1))
	case c < 32:
		return "ctrl-" + string(rune(c+'@'))
	case c > 127:
		return fmt.Sprintf("0x%02x", c)
	default:
		return string(rune(c))
	}
}
