package prompt_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"fortio.org/pigment/internal/prompt"
)

type countingWriter struct {
	count   int
	flushes int
	builder strings.Builder
}

func (c *countingWriter) Write(p []byte) (n int, err error) {
	c.count++
	return c.builder.Write(p)
}

func (c *countingWriter) Flush() error {
	c.flushes++
	return nil
}

func TestCRLFWriter_Write(t *testing.T) {
	tests := []struct {
		input     string
		want      string
		numWrites int
	}{
		{"#3b82f6", "#3b82f6", 1},
		{"", "", 0},
		{"\n", "\r\n", 1},
		{"hex  #3b82f6\n", "hex  #3b82f6\r\n", 1},
		{"hex  #3b82f6\nname  blue-500\nno last newline", "hex  #3b82f6\r\nname  blue-500\r\nno last newline", 3},
		{"\n\nwcag 21.00:1\n", "\r\n\r\nwcag 21.00:1\r\n", 3},
	}
	for _, tt := range tests {
		out := countingWriter{}
		w := &prompt.CRLFWriter{Out: &out}
		input := []byte(tt.input)
		n, err := w.Write(input)
		if err != nil {
			t.Errorf("CRLFWriter.Write(%q) error = %v, want nil", tt.input, err)
		}
		if n != len(tt.input) {
			t.Errorf("CRLFWriter.Write(%q) = %v, want %v", tt.input, n, len(tt.input))
		}
		if out.count != tt.numWrites {
			t.Errorf("CRLFWriter.Write(%q) = %v writes, want %v", tt.input, out.count, tt.numWrites)
		}
		if out.flushes != 1 {
			t.Errorf("CRLFWriter.Write(%q) flushed %d times, want 1", tt.input, out.flushes)
		}
		if actual := out.builder.String(); actual != tt.want {
			t.Errorf("CRLFWriter.Write(%q) = %q, want %q", tt.input, actual, tt.want)
		}
		if string(input) != tt.input {
			t.Errorf("CRLFWriter.Write modified its input: %q", input)
		}
	}
}

// failingWriter accepts limit bytes then fails.
type failingWriter struct {
	limit int
}

var errFull = errors.New("full")

func (f *failingWriter) Write(p []byte) (int, error) {
	if len(p) > f.limit {
		n := f.limit
		f.limit = 0
		return n, errFull
	}
	f.limit -= len(p)
	return len(p), nil
}

func TestCRLFWriteError(t *testing.T) {
	// "ab\n" goes out as "ab\r\n" (4 bytes), then "cd\n" fails after 1 byte.
	n, err := prompt.CRLFWrite(&failingWriter{limit: 5}, []byte("ab\ncd\n"))
	if !errors.Is(err, errFull) {
		t.Fatalf("CRLFWrite error = %v, want %v", err, errFull)
	}
	if n != 4 {
		t.Errorf("CRLFWrite = %d bytes, want 4", n)
	}
}

func TestNonInteractive(t *testing.T) {
	var out strings.Builder
	p := prompt.New(strings.NewReader("info #fff\n\ncontrast red blue"), &out)
	if p.IsTerminal() {
		t.Fatalf("New() should not be a terminal")
	}
	p.SetPrompt("ignored> ")
	p.SetCompletions([]string{"info"})
	p.LoggerSetup()
	for _, want := range []string{"info #fff", "", "contrast red blue"} {
		got, err := p.ReadLine()
		if err != nil || got != want {
			t.Errorf("ReadLine() = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := p.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestComplete(t *testing.T) {
	words := []string{"harmony", "help", "shades", "scale", "suggest", "tints"}
	tests := []struct {
		line   string
		pos    int
		want   string
		wantOk bool
	}{
		{"t", 1, "tints ", true},
		{"h", 1, "h", false}, // harmony and help, nothing to add
		{"ha", 2, "harmony ", true},
		{"s", 1, "s", false},
		{"sc", 2, "scale ", true},
		{"x", 1, "", false},
		{"tints #fff", 10, "", false},
		{"ti", 1, "", false}, // cursor not at the end
	}
	for _, tt := range tests {
		got, pos, ok := prompt.Complete(words, tt.line, tt.pos)
		if ok != tt.wantOk {
			t.Errorf("Complete(%q) ok = %v, want %v", tt.line, ok, tt.wantOk)
			continue
		}
		if ok && (got != tt.want || pos != len(tt.want)) {
			t.Errorf("Complete(%q) = %q, %d; want %q", tt.line, got, pos, tt.want)
		}
	}
}

func TestCompleteCommonPrefix(t *testing.T) {
	got, pos, ok := prompt.Complete([]string{"shades", "shadow"}, "s", 1)
	if !ok || got != "shad" || pos != 4 {
		t.Errorf("Complete = %q %d %v", got, pos, ok)
	}
}
