package listener

import (
	"bytes"
	"io"
)

// crlfReadWriter adapts a connection whose peer speaks \r\n line endings
// to the console's \n-only sessions.
type crlfReadWriter struct {
	rw io.ReadWriter
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &crlfReadWriter{rw: rw}
}

// Read collapses \r\n pairs, then bare \r, to \n. Telnet clients send
// \r\n and some ssh clients send a lone \r.
func (c *crlfReadWriter) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	if n > 0 {
		data := bytes.ReplaceAll(p[:n], []byte("\r\n"), []byte("\n"))
		data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
		n = copy(p, data)
	}
	return n, err
}

// Write expands \n to \r\n. It reports the original length, not the
// expanded one, so callers see the write they asked for.
func (c *crlfReadWriter) Write(p []byte) (int, error) {
	converted := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	_, err := c.rw.Write(converted)
	return len(p), err
}
