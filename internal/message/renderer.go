package message

import (
	"fmt"

	"github.com/pixil98/go-phrase/internal/display"
	"github.com/pixil98/go-phrase/internal/phrase"
	"github.com/pixil98/go-phrase/internal/storage"
)

// Role binds a being to the grammatical person its pronouns render from
// and, when the being's gender uses marked placeholder forms, the pronoun
// set that rewrites them. Pronouns may be nil, which leaves any marked
// forms visible in the output.
type Role struct {
	Being    *phrase.Being
	Person   phrase.Person
	Pronouns *PronounSet
}

// Narration carries one message rendered for each audience. ToTarget is
// empty when the message had no target.
type Narration struct {
	ToActor     string
	ToTarget    string
	ToObservers string
	Extensions  storage.ExtensionState
}

// Renderer turns message templates into finished sentences.
type Renderer struct {
	library *Library
}

func NewRenderer(library *Library) *Renderer {
	return &Renderer{
		library: library,
	}
}

// Render expands data fields, substitutes actor then target pronoun
// tokens, rewrites marked placeholder forms for each role, and capitalizes
// the result. target may be nil for messages that only involve the actor.
func (r *Renderer) Render(tmplStr string, data any, actor, target *Role) (string, error) {
	if actor == nil {
		return "", fmt.Errorf("rendering requires an actor")
	}

	out, err := expandTemplate(tmplStr, data)
	if err != nil {
		return "", err
	}

	out = rewrite(phrase.User(out, actor.Person, actor.Being), actor)
	if target != nil {
		out = rewrite(phrase.Target(out, target.Person, target.Being), target)
	}

	return display.Capitalize(out), nil
}

// Narrate renders the stored message once per audience and attaches the
// message's extensions to the result.
func (r *Renderer) Narrate(id storage.Identifier, data any, actor, target *Role) (*Narration, error) {
	msg, err := r.library.Message(id)
	if err != nil {
		return nil, err
	}

	n, err := r.NarrateTemplate(msg.Template, data, actor, target)
	if err != nil {
		return nil, err
	}

	n.Extensions = msg.Extensions
	return n, nil
}

// NarrateTemplate renders a template once per audience: the actor reads
// themselves in second person, the target reads themselves in second
// person, and observers read both beings in third person.
func (r *Renderer) NarrateTemplate(tmplStr string, data any, actor, target *Role) (*Narration, error) {
	if actor == nil {
		return nil, fmt.Errorf("narration requires an actor")
	}

	n := &Narration{}
	var err error

	n.ToActor, err = r.Render(tmplStr, data, withPerson(actor, phrase.Second), withPerson(target, phrase.Third))
	if err != nil {
		return nil, err
	}

	if target != nil {
		n.ToTarget, err = r.Render(tmplStr, data, withPerson(actor, phrase.Third), withPerson(target, phrase.Second))
		if err != nil {
			return nil, err
		}
	}

	n.ToObservers, err = r.Render(tmplStr, data, withPerson(actor, phrase.Third), withPerson(target, phrase.Third))
	if err != nil {
		return nil, err
	}

	return n, nil
}

func withPerson(role *Role, p phrase.Person) *Role {
	if role == nil {
		return nil
	}
	return &Role{Being: role.Being, Person: p, Pronouns: role.Pronouns}
}

func rewrite(text string, role *Role) string {
	if role.Pronouns == nil {
		return text
	}
	return role.Pronouns.Rewrite(text)
}
