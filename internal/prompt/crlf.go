package prompt

import (
	"bytes"
	"io"
)

// CRLFWriter translates \n into \r\n, needed for output written while the
// terminal is in raw mode. Out is flushed after each Write when it has a
// Flush method (e.g. bufio.Writer).
type CRLFWriter struct {
	Out io.Writer
}

func (w *CRLFWriter) Write(buf []byte) (int, error) {
	return CRLFWrite(w.Out, buf)
}

// CRLFWrite writes buf to out one line at a time, each \n replaced by \r\n
// within the same Write call so a report line is never split. The returned
// count is in terms of buf (so len(buf) on success).
func CRLFWrite(out io.Writer, buf []byte) (int, error) {
	done := 0
	for done < len(buf) {
		line := buf[done:]
		chunk := line
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i+1]
			chunk = append(line[:i:i], '\r', '\n') // copies, buf is never modified
		}
		nn, err := out.Write(chunk)
		if err != nil {
			return done + min(nn, len(line)), err
		}
		done += len(line)
	}
	if f, ok := out.(interface{ Flush() error }); ok {
		return done, f.Flush()
	}
	return done, nil
}
