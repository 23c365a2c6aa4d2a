package ppphex

// Flag is the HDLC flag byte that delimits PPP frames.
const Flag = 0x7e

// State is the framing state of a Framer.
type State int

const (
	// Idle means we are between frames.
	Idle State = iota
	// InFrame means we have seen an opening flag but not its closing flag.
	InFrame
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFrame:
		return "in-frame"
	default:
		return "unknown"
	}
}

// Event describes what a single byte did to the framing state.
type Event int

const (
	// NoEvent is reported for every byte that isn't a flag.
	NoEvent Event = iota
	// FrameOpen is reported for a flag that starts a new frame.
	FrameOpen
	// FrameClose is reported for a flag that ends the current frame.
	FrameClose
)

func (e Event) String() string {
	switch e {
	case NoEvent:
		return "none"
	case FrameOpen:
		return "open"
	case FrameClose:
		return "close"
	default:
		return "unknown"
	}
}

// Framer tracks frame boundaries in a stream of bytes.  Every flag byte
// toggles between Idle and InFrame; the packet counter is incremented only
// when a frame opens.  The zero value is an Idle Framer that has seen no
// packets.
type Framer struct {
	state   State
	packets int
}

// Feed advances the framer by one byte and reports the resulting transition.
func (f *Framer) Feed(b byte) Event {
	if b != Flag {
		return NoEvent
	}
	if f.state == InFrame {
		f.state = Idle
		return FrameClose
	}
	f.state = InFrame
	f.packets++
	return FrameOpen
}

// State returns the current framing state.
func (f *Framer) State() State {
	return f.state
}

// Packets returns the number of frames that have been opened so far.
func (f *Framer) Packets() int {
	return f.packets
}
