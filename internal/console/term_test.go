package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

// mockReadWriter implements io.ReadWriter for testing prompts
type mockReadWriter struct {
	readBuf  *bytes.Buffer
	writeBuf *bytes.Buffer
}

func newMockReadWriter(input string) *mockReadWriter {
	return &mockReadWriter{
		readBuf:  bytes.NewBufferString(input),
		writeBuf: &bytes.Buffer{},
	}
}

func (m *mockReadWriter) Read(p []byte) (n int, err error) {
	return m.readBuf.Read(p)
}

func (m *mockReadWriter) Write(p []byte) (n int, err error) {
	return m.writeBuf.Write(p)
}

func TestTermPrompt(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   string
	}{
		"simple line": {
			input: "hello\n",
			exp:   "hello",
		},
		"crlf line endings are trimmed": {
			input: "hello\r\n",
			exp:   "hello",
		},
		"empty line": {
			input: "\n",
			exp:   "",
		},
		"line without trailing newline": {
			input: "partial",
			exp:   "partial",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rw := newMockReadWriter(tt.input)
			term := NewTerm(rw)

			got, err := term.Prompt("> ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "input", got, tt.exp)
			testutil.AssertEqual(t, "prompt written", rw.writeBuf.String(), "> ")
		})
	}
}

func TestTermPrompt_EOF(t *testing.T) {
	rw := newMockReadWriter("")
	term := NewTerm(rw)

	_, err := term.Prompt("> ")
	if err == nil {
		t.Errorf("expected error, got nil")
	}
}

func TestTermPrompt_Validator(t *testing.T) {
	rw := newMockReadWriter("bad\ngood\n")
	term := NewTerm(rw)

	got, err := term.Prompt("> ", WithValidator(
		func(str string) (bool, string) {
			if str != "good" {
				return false, "try again\n"
			}
			return true, ""
		},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "input", got, "good")
	if !strings.Contains(rw.writeBuf.String(), "try again") {
		t.Errorf("expected validator message in output, got %q", rw.writeBuf.String())
	}
}

func TestTermPrompt_MaxTries(t *testing.T) {
	rw := newMockReadWriter("bad\nbad\nbad\n")
	term := NewTerm(rw)

	_, err := term.Prompt("> ",
		WithValidator(func(str string) (bool, string) {
			return false, "try again\n"
		}),
		WithMaxTries(2),
	)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	if !strings.Contains(rw.writeBuf.String(), "too many tries") {
		t.Errorf("expected give-up message in output, got %q", rw.writeBuf.String())
	}
}

// Input typed ahead of a prompt must survive for the next prompt. A reader
// created per call would swallow it.
func TestTermPrompt_TypeAhead(t *testing.T) {
	rw := newMockReadWriter("one\ntwo\n")
	term := NewTerm(rw)

	first, err := term.Prompt("> ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := term.Prompt("> ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "first input", first, "one")
	testutil.AssertEqual(t, "second input", second, "two")
}

func TestTermPromptYN(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   bool
	}{
		"y":             {input: "y\n", exp: true},
		"yes":           {input: "yes\n", exp: true},
		"uppercase yes": {input: "YES\n", exp: true},
		"n":             {input: "n\n", exp: false},
		"no":            {input: "no\n", exp: false},
		"uppercase no":  {input: "NO\n", exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rw := newMockReadWriter(tt.input)
			term := NewTerm(rw)

			got, err := term.PromptYN("continue? ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "answer", got, tt.exp)
		})
	}
}

func TestTermPromptYN_InvalidThenValid(t *testing.T) {
	rw := newMockReadWriter("maybe\ny\n")
	term := NewTerm(rw)

	got, err := term.PromptYN("continue? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "answer", got, true)
	if !strings.Contains(rw.writeBuf.String(), "enter 'yes' or 'no'") {
		t.Errorf("expected validator message in output, got %q", rw.writeBuf.String())
	}
}
