package render

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-phrase/internal/message"
	"github.com/pixil98/go-phrase/internal/phrase"
	"github.com/pixil98/go-phrase/internal/storage"
)

// Bus is the messaging surface the service uses.
type Bus interface {
	Ready() <-chan struct{}
	Subscribe(subject string, handler func(data []byte)) (func(), error)
	SubscribeReply(subject string, handler func(data []byte) []byte) (func(), error)
	Publish(subject string, data []byte) error
}

// Service answers render requests over the message bus. Requests on
// <prefix>.render get a reply with the rendered string; events on
// <prefix>.event fan a narration out to the audience subjects named in
// the request.
type Service struct {
	bus      Bus
	library  *message.Library
	renderer *message.Renderer
	prefix   string
}

func NewService(bus Bus, library *message.Library, prefix string) *Service {
	return &Service{
		bus:      bus,
		library:  library,
		renderer: message.NewRenderer(library),
		prefix:   prefix,
	}
}

func (s *Service) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-s.bus.Ready():
	}

	unsubRender, err := s.bus.SubscribeReply(s.prefix+".render", s.handleRender(ctx))
	if err != nil {
		return fmt.Errorf("subscribing to render subject: %w", err)
	}
	defer unsubRender()

	unsubEvent, err := s.bus.Subscribe(s.prefix+".event", s.handleEvent(ctx))
	if err != nil {
		return fmt.Errorf("subscribing to event subject: %w", err)
	}
	defer unsubEvent()

	slog.InfoContext(ctx, "render service listening", "prefix", s.prefix)

	<-ctx.Done()
	return nil
}

func (s *Service) handleRender(ctx context.Context) func(data []byte) []byte {
	return func(data []byte) []byte {
		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			return s.marshalResponse(ctx, &Response{Error: fmt.Sprintf("unmarshalling request: %v", err)})
		}

		resp := &Response{Id: requestId(req.Id)}

		text, ext, err := s.render(&req)
		if err != nil {
			resp.Error = userMessage(ctx, err)
			return s.marshalResponse(ctx, resp)
		}

		resp.Text = text
		resp.Extensions = ext
		return s.marshalResponse(ctx, resp)
	}
}

func (s *Service) handleEvent(ctx context.Context) func(data []byte) {
	return func(data []byte) {
		var req EventRequest
		if err := json.Unmarshal(data, &req); err != nil {
			slog.WarnContext(ctx, "unmarshalling event", "error", err)
			return
		}

		if err := s.narrateEvent(&req); err != nil {
			slog.WarnContext(ctx, "narrating event", "id", req.Id, "error", err)
		}
	}
}

func (s *Service) render(req *Request) (string, storage.ExtensionState, error) {
	actor, err := s.role(req.Actor, "actor")
	if err != nil {
		return "", nil, err
	}
	if actor == nil {
		return "", nil, NewRequestError("an actor is required")
	}

	target, err := s.role(req.Target, "target")
	if err != nil {
		return "", nil, err
	}

	tmpl, ext, err := s.template(req.Message, req.Template)
	if err != nil {
		return "", nil, err
	}

	text, err := s.renderer.Render(tmpl, req.Data, actor, target)
	if err != nil {
		return "", nil, NewRequestError(err.Error())
	}

	return text, ext.Merge(req.Extensions), nil
}

func (s *Service) narrateEvent(req *EventRequest) error {
	if req.ActorSubject == "" && req.TargetSubject == "" && req.ObserverSubject == "" {
		return NewRequestError("an event requires at least one audience subject")
	}
	if req.TargetSubject != "" && req.Target == nil {
		return NewRequestError("target_subject requires a target")
	}

	actor, err := s.role(req.Actor, "actor")
	if err != nil {
		return err
	}
	if actor == nil {
		return NewRequestError("an actor is required")
	}

	target, err := s.role(req.Target, "target")
	if err != nil {
		return err
	}

	tmpl, ext, err := s.template(req.Message, req.Template)
	if err != nil {
		return err
	}

	n, err := s.renderer.NarrateTemplate(tmpl, req.Data, actor, target)
	if err != nil {
		return err
	}
	n.Extensions = ext.Merge(req.Extensions)

	id := requestId(req.Id)
	el := errors.NewErrorList()
	el.Add(s.publish(req.ActorSubject, id, n.ToActor, n.Extensions))
	el.Add(s.publish(req.TargetSubject, id, n.ToTarget, n.Extensions))
	el.Add(s.publish(req.ObserverSubject, id, n.ToObservers, n.Extensions))

	return el.Err()
}

func (s *Service) publish(subject, id, text string, ext storage.ExtensionState) error {
	if subject == "" {
		return nil
	}

	data, err := json.Marshal(&Response{Id: id, Text: text, Extensions: ext})
	if err != nil {
		return fmt.Errorf("marshalling response: %w", err)
	}

	if err := s.bus.Publish(subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}
	return nil
}

func (s *Service) role(p *Participant, label string) (*message.Role, error) {
	if p == nil {
		return nil, nil
	}
	if p.GeneralName == "" {
		return nil, NewRequestError(fmt.Sprintf("%s requires a general name", label))
	}

	role := &message.Role{
		Being: &phrase.Being{
			Gender:       p.Gender,
			GeneralName:  p.GeneralName,
			SpecificName: p.SpecificName,
		},
		Person: p.Person,
	}

	if p.Pronouns != "" {
		set, err := s.library.PronounSet(p.Pronouns)
		if err != nil {
			return nil, NewRequestError(err.Error())
		}
		role.Pronouns = set
	}

	return role, nil
}

func (s *Service) template(id storage.Identifier, tmpl string) (string, storage.ExtensionState, error) {
	switch {
	case id != "" && tmpl != "":
		return "", nil, NewRequestError("message and template are mutually exclusive")
	case id != "":
		msg, err := s.library.Message(id)
		if err != nil {
			return "", nil, NewRequestError(err.Error())
		}
		return msg.Template, msg.Extensions, nil
	case tmpl != "":
		return tmpl, nil, nil
	default:
		return "", nil, NewRequestError("a message or template is required")
	}
}

func (s *Service) marshalResponse(ctx context.Context, resp *Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.ErrorContext(ctx, "marshalling response", "error", err)
		return []byte(`{"error":"internal rendering failure"}`)
	}
	return data
}

// requestId returns the caller's correlation id, or a fresh one when the
// request didn't carry any.
func requestId(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
