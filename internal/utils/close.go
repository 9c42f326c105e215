package utils

import (
	"io"
)

// drainLimit bounds how much of an unwanted body is read so the connection
// can be reused.
const drainLimit = 64 << 10

// Close closes c and ignores any error.
// Use for best-effort cleanup in defer where error handling is not critical.
func Close(c io.Closer) {
	_ = c.Close()
}

// DrainAndClose discards up to drainLimit bytes of rc, then closes it.
func DrainAndClose(rc io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, drainLimit))
	_ = rc.Close()
}
