package ppphex

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// FramePrefix is written at the start of every frame line.  It looks like an
// offset but is a constant; downstream tools expect exactly these six digits.
const FramePrefix = "000000"

const hexDigits = "0123456789abcdef"

// Stats summarizes a conversion.
type Stats struct {
	// Offset is where the PPP data starts in the input.  Dumper leaves it
	// at zero; Convert fills it in.
	Offset int64
	// Bytes is the number of bytes that were dumped.
	Bytes int64
	// Packets is the number of frames that were opened.
	Packets int
	// Closes is the number of closing flags that were seen.
	Closes int
}

// Dumper writes a hex dump of a PPP byte stream, starting a new line at every
// flag byte that opens a frame.  Bytes that appear before the first flag are
// written without a line prefix.
type Dumper struct {
	w       io.Writer
	logger  hclog.Logger
	framer  Framer
	scratch [len("\n"+FramePrefix) + 3]byte
	bytes   int64
	closes  int
}

// NewDumper returns a Dumper that writes to w.  Frame boundaries are reported
// to logger, which may be nil.
func NewDumper(w io.Writer, logger hclog.Logger) *Dumper {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Dumper{w: w, logger: logger}
}

// WriteByte dumps a single byte.
func (d *Dumper) WriteByte(b byte) error {
	out := d.scratch[:0]
	switch d.framer.Feed(b) {
	case FrameOpen:
		d.logger.Info(fmt.Sprintf("ppp: begin new packet (#%d)", d.framer.Packets()))
		out = append(out, '\n')
		out = append(out, FramePrefix...)
	case FrameClose:
		d.closes++
		d.logger.Info("ppp: end 7e flag detected")
	}
	out = append(out, ' ', hexDigits[b>>4], hexDigits[b&0x0f])
	if _, err := d.w.Write(out); err != nil {
		return err
	}
	d.bytes++
	return nil
}

// ReadFrom dumps every byte of r until it is exhausted, and returns the number
// of bytes consumed.  It implements io.ReaderFrom.
func (d *Dumper) ReadFrom(r io.Reader) (int64, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	var n int64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("reading byte %d: %w", n, err)
		}
		if err := d.WriteByte(b); err != nil {
			return n, fmt.Errorf("writing byte %d: %w", n, err)
		}
		n++
	}
}

// State returns the framing state after the last byte.
func (d *Dumper) State() State {
	return d.framer.State()
}

// Stats returns counts for everything dumped so far.
func (d *Dumper) Stats() Stats {
	return Stats{
		Bytes:   d.bytes,
		Packets: d.framer.Packets(),
		Closes:  d.closes,
	}
}

// Dump writes a hex dump of everything in r to w.
func Dump(r io.Reader, w io.Writer, logger hclog.Logger) (Stats, error) {
	d := NewDumper(w, logger)
	_, err := d.ReadFrom(r)
	return d.Stats(), err
}
