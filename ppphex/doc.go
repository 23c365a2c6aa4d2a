// Package ppphex extracts a PPP byte stream from a terminal capture log and
// renders it as a hex dump.  The capture is expected to contain some lines of
// modem chatter, one of which contains `CONNECT`; everything after that line
// is treated as raw HDLC-framed PPP.  Each flag byte (`0x7e`) that opens a
// frame starts a new output line prefixed with the placeholder `000000`, so
// that the result can be fed to tools that expect one packet per line.
//
// The bytes are not unescaped or checked; every input byte appears in the
// output exactly once.
package ppphex
