package message

import (
	"fmt"

	"github.com/pixil98/go-phrase/internal/storage"
)

// Library holds all asset stores. It provides a single reference that can
// be passed to rendering and console code so lookups all share the same
// signature.
type Library struct {
	Messages storage.Storer[*Message]
	Pronouns storage.Storer[*PronounSet]
}

// Message returns the message with the given id, or an error naming the
// id when it isn't loaded.
func (l *Library) Message(id storage.Identifier) (*Message, error) {
	m := l.Messages.Get(id)
	if m == nil {
		return nil, fmt.Errorf("message %q not found", id)
	}
	return m, nil
}

// PronounSet returns the pronoun set with the given id, or an error naming
// the id when it isn't loaded.
func (l *Library) PronounSet(id storage.Identifier) (*PronounSet, error) {
	p := l.Pronouns.Get(id)
	if p == nil {
		return nil, fmt.Errorf("pronoun set %q not found", id)
	}
	return p, nil
}
