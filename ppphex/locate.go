package ppphex

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ConnectMarker is the modem response that precedes the PPP data in a
// capture.
const ConnectMarker = "CONNECT"

var (
	// MarkerNotFound is the error that is returned when the input ends
	// before any line contains the marker.
	MarkerNotFound = errors.New("marker not found in input")
)

// FindMarker reads lines from r until it finds one that contains marker, and
// returns the number of bytes consumed.  That is the offset of the first byte
// after the matching line, and r is left positioned there, so you can hand the
// same reader to a Dumper to process the binary data that follows.
//
// A final line with no trailing newline still counts.  If the input ends
// without a match, we return the total number of bytes read along with
// MarkerNotFound.
func FindMarker(r *bufio.Reader, marker string) (int64, error) {
	needle := []byte(marker)
	var offset int64
	for {
		line, err := r.ReadBytes('\n')
		offset += int64(len(line))
		if len(line) > 0 && bytes.Contains(line, needle) {
			return offset, nil
		}
		if err == io.EOF {
			return offset, MarkerNotFound
		}
		if err != nil {
			return offset, fmt.Errorf("reading line at byte %d: %w", offset, err)
		}
	}
}
