package render

import (
	"github.com/pixil98/go-phrase/internal/phrase"
	"github.com/pixil98/go-phrase/internal/storage"
)

// Participant describes one being taking part in a narration. Person uses
// the legacy numeric encoding (1 first, 2 second, 3 third); anything else
// renders in third person. Pronouns optionally names a stored pronoun set
// used to rewrite marked placeholder forms for this being.
type Participant struct {
	Gender       phrase.Gender      `json:"gender,omitempty"`
	GeneralName  string             `json:"general_name"`
	SpecificName string             `json:"specific_name,omitempty"`
	Person       phrase.Person      `json:"person,omitempty"`
	Pronouns     storage.Identifier `json:"pronouns,omitempty"`
}

// Request asks for a single rendered string. Exactly one of Message (a
// stored message id) or Template (inline text) must be set. Extensions
// are merged over the stored message's own, the request winning on
// shared keys, and ride back on the response.
type Request struct {
	Id         string                 `json:"id,omitempty"`
	Message    storage.Identifier     `json:"message,omitempty"`
	Template   string                 `json:"template,omitempty"`
	Data       map[string]any         `json:"data,omitempty"`
	Extensions storage.ExtensionState `json:"extensions,omitempty"`
	Actor      *Participant           `json:"actor"`
	Target     *Participant           `json:"target,omitempty"`
}

// EventRequest asks for a narration fanned out to audience subjects. At
// least one subject must be set; each audience that has a subject receives
// its own rendering of the message. Participant Person fields are ignored
// since each audience fixes the grammatical person itself.
type EventRequest struct {
	Id              string                 `json:"id,omitempty"`
	Message         storage.Identifier     `json:"message,omitempty"`
	Template        string                 `json:"template,omitempty"`
	Data            map[string]any         `json:"data,omitempty"`
	Extensions      storage.ExtensionState `json:"extensions,omitempty"`
	Actor           *Participant           `json:"actor"`
	Target          *Participant           `json:"target,omitempty"`
	ActorSubject    string                 `json:"actor_subject,omitempty"`
	TargetSubject   string                 `json:"target_subject,omitempty"`
	ObserverSubject string                 `json:"observer_subject,omitempty"`
}

// Response carries a rendered string back to the requester or out to an
// audience subject. Error is set instead of Text when the request failed.
type Response struct {
	Id         string                 `json:"id"`
	Text       string                 `json:"text,omitempty"`
	Extensions storage.ExtensionState `json:"extensions,omitempty"`
	Error      string                 `json:"error,omitempty"`
}
