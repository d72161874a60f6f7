package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Term wraps a connection for prompt-driven interaction. It owns a single
// buffered reader for the connection's lifetime so input typed ahead of a
// prompt isn't lost between reads.
type Term struct {
	r *bufio.Reader
	w io.Writer
}

func NewTerm(rw io.ReadWriter) *Term {
	return &Term{
		r: bufio.NewReader(rw),
		w: rw,
	}
}

// Printf formats to the connection.
func (t *Term) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(t.w, format, args...)
	return err
}

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Prompt writes prompt and reads one line, re-prompting until the
// validator accepts the input or the try limit is hit.
func (t *Term) Prompt(prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		if _, err := t.w.Write([]byte(prompt)); err != nil {
			return "", err
		}

		line, err := t.r.ReadString('\n')
		if err != nil && (line == "" || err != io.EOF) {
			return "", err
		}
		input := strings.TrimRight(line, "\r\n")

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				t.w.Write([]byte(msg))

				tries++
				if config.tries > 0 && config.tries == tries {
					t.w.Write([]byte("too many tries\n"))
					return "", fmt.Errorf("too many tries")
				}

				continue
			}
		}

		return input, nil
	}
}

// PromptYN prompts until the user answers yes or no.
func (t *Term) PromptYN(prompt string) (bool, error) {
	str, err := t.Prompt(prompt, WithValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(str) {
			case "y", "yes", "n", "no":
				return true, ""
			default:
				return false, "enter 'yes' or 'no'\n"
			}
		},
	))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(str) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
