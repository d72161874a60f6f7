package message

import (
	"fmt"
	"text/template"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-phrase/internal/storage"
)

const selectorWidth = 40

// Message is a narration template loaded from asset files. The template
// carries pronoun tokens for the acting and targeted beings plus optional
// {{ }} data fields expanded before token substitution. Extensions ride
// along untouched for downstream consumers.
type Message struct {
	Template   string                 `json:"template"`
	Extensions storage.ExtensionState `json:"extensions,omitempty"`
}

func (m *Message) Validate() error {
	el := errors.NewErrorList()

	if m.Template == "" {
		el.Add(fmt.Errorf("template must be set"))
	}

	if _, err := template.New("").Funcs(templateFuncs).Parse(m.Template); err != nil {
		el.Add(fmt.Errorf("parsing template: %w", err))
	}

	return el.Err()
}

func (m *Message) Selector() string {
	runes := []rune(m.Template)
	if len(runes) > selectorWidth {
		return string(runes[:selectorWidth-3]) + "..."
	}
	return m.Template
}
