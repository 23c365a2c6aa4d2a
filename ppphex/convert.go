package ppphex

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Convert finds the CONNECT line in r and writes a hex dump of everything
// after it to w.  The output is buffered, but it is flushed before we return
// even if the dump fails partway through.
func Convert(r io.Reader, w io.Writer, logger hclog.Logger) (Stats, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	// Both stages share a single reader so that the dump resumes exactly
	// where the line scan stopped.
	br := bufio.NewReader(r)
	offset, err := FindMarker(br, ConnectMarker)
	if err != nil {
		return Stats{Offset: offset}, fmt.Errorf("locating %s: %w", ConnectMarker, err)
	}
	logger.Info(fmt.Sprintf("PPP data starts at byte offset: %d", offset))

	bw := bufio.NewWriter(w)
	d := NewDumper(bw, logger)
	_, err = d.ReadFrom(br)
	if flushErr := bw.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("flushing output: %w", flushErr)
	}

	stats := d.Stats()
	stats.Offset = offset
	logger.Debug("dump finished",
		"offset", stats.Offset,
		"bytes", stats.Bytes,
		"packets", stats.Packets,
		"closes", stats.Closes,
		"state", d.State(),
	)
	return stats, err
}

// ConvertFile runs Convert from the file at inPath to the file at outPath,
// which is created or truncated.  Both files are closed on every path.  If the
// conversion fails partway through, whatever was written so far is left in
// outPath.
func ConvertFile(inPath, outPath string, logger hclog.Logger) (stats Stats, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, fmt.Errorf("opening input: %w", err)
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil {
			err = multierror.Append(err, fmt.Errorf("closing input: %w", closeErr))
		}
	}()

	out, err := os.Create(outPath)
	if err != nil {
		return Stats{}, fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = multierror.Append(err, fmt.Errorf("closing output: %w", closeErr))
		}
	}()

	stats, err = Convert(in, out, logger)
	if err != nil {
		return stats, fmt.Errorf("converting %s: %w", inPath, err)
	}
	return stats, nil
}
