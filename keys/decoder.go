package keys

// Source yields input bytes. PollByte returns ok == false when no byte
// arrived within the source's read timeout; that is not an error. A non-nil
// error is an I/O fault.
type Source interface {
	PollByte() (c byte, ok bool, err error)
}

type state int

const (
	stateStart  state = iota
	stateEsc          // after ESC
	stateCSI          // after ESC [
	stateCSINum       // after ESC [ digit
	stateSS3          // after ESC O
)

var stateNames = [...]string{"start", "esc", "csi", "csi-num", "ss3"}

func (s state) String() string {
	return stateNames[s]
}

// Final bytes of the sequences that end right after their introducer.
var (
	csiFinal = map[byte]Key{
		'A': KeyUp,
		'B': KeyDown,
		'C': KeyRight,
		'D': KeyLeft,
		'H': KeyHome,
		'F': KeyEnd,
	}
	ss3Final = map[byte]Key{
		'A': KeyUp,
		'B': KeyDown,
		'C': KeyRight,
		'D': KeyLeft,
		'H': KeyHome,
		'F': KeyEnd,
	}
	// ESC [ digit ~
	csiTilde = map[byte]Key{
		'1': KeyHome,
		'3': KeyDelete,
		'4': KeyEnd,
		'5': KeyPageUp,
		'6': KeyPageDown,
		'7': KeyHome,
		'8': KeyEnd,
	}
)

// machine is one run of the decoder over a single key sequence.
type machine struct {
	state state
	digit byte
}

// feed advances the machine by one byte. done reports that ev is the final
// event of the sequence.
func (m *machine) feed(c byte) (ev Event, done bool) {
	switch m.state {
	case stateStart:
		if c == Escape {
			m.state = stateEsc
			return Event{}, false
		}
		return Literal(c), true

	case stateEsc:
		switch c {
		case '[':
			m.state = stateCSI
			return Event{}, false
		case 'O', '0':
			m.state = stateSS3
			return Event{}, false
		}

	case stateCSI:
		if k, ok := csiFinal[c]; ok {
			return Special(k), true
		}
		if c >= '1' && c <= '8' {
			m.state = stateCSINum
			m.digit = c
			return Event{}, false
		}

	case stateCSINum:
		if c == '~' {
			if k, ok := csiTilde[m.digit]; ok {
				return Special(k), true
			}
		}

	case stateSS3:
		if k, ok := ss3Final[c]; ok {
			return Special(k), true
		}
	}

	// unrecognized sequences are swallowed whole
	return Special(KeyEscape), true
}

// Decoder turns a byte stream into key events. The zero value is ready to use.
type Decoder struct{}

// Poll decodes one key. It returns ok == false when the source has no input
// before the first byte of a key; once an escape has been read, running out of
// input yields a bare escape.
func (d *Decoder) Poll(src Source) (ev Event, ok bool, err error) {
	var m machine
	for {
		c, ok, err := src.PollByte()
		if err != nil {
			return Event{}, false, err
		}
		if !ok {
			if m.state == stateStart {
				return Event{}, false, nil
			}
			return Special(KeyEscape), true, nil
		}
		if ev, done := m.feed(c); done {
			return ev, true, nil
		}
	}
}

// Next blocks until a full key is decoded or src fails.
func (d *Decoder) Next(src Source) (Event, error) {
	for {
		ev, ok, err := d.Poll(src)
		if err != nil {
			return Event{}, err
		}
		if ok {
			return ev, nil
		}
	}
}
