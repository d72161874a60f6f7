package console

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-phrase/internal/display"
	"github.com/pixil98/go-phrase/internal/message"
	"github.com/pixil98/go-phrase/internal/phrase"
)

// preview runs one pass of the preview flow and reports whether the
// operator wants another.
func (m *Manager) preview(t *Term) (bool, error) {
	msgs := m.library.Messages.GetAll()
	if len(msgs) == 0 {
		if err := t.Printf("no messages loaded\n"); err != nil {
			return false, err
		}
		return false, nil
	}

	msgId, err := NewSelector(msgs).Prompt(t, "Which message?")
	if err != nil {
		return false, fmt.Errorf("selecting message: %w", err)
	}

	msg, err := m.library.Message(msgId)
	if err != nil {
		return false, err
	}

	actor, err := m.promptRole(t, "actor")
	if err != nil {
		return false, err
	}

	var target *message.Role
	hasTarget, err := t.PromptYN("Add a target? ")
	if err != nil {
		return false, err
	}
	if hasTarget {
		target, err = m.promptRole(t, "target")
		if err != nil {
			return false, err
		}
	}

	if err := m.printNarration(t, msg, actor, target); err != nil {
		return false, err
	}

	return t.PromptYN("Preview another? ")
}

// promptRole collects a being description from the operator. Beings with
// the marked placeholder gender also pick which stored pronoun set to
// rewrite with.
func (m *Manager) promptRole(t *Term, label string) (*message.Role, error) {
	if err := t.Printf("\nDescribe the %s:\n", label); err != nil {
		return nil, err
	}

	general, err := t.Prompt("General name (e.g. goblin): ", WithValidator(
		func(str string) (bool, string) {
			if strings.TrimSpace(str) == "" {
				return false, "A general name is required!\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return nil, err
	}

	specific, err := t.Prompt("Specific name (blank for none): ")
	if err != nil {
		return nil, err
	}

	gender, err := m.promptGender(t)
	if err != nil {
		return nil, err
	}

	role := &message.Role{
		Being: &phrase.Being{
			Gender:       gender,
			GeneralName:  strings.TrimSpace(general),
			SpecificName: strings.TrimSpace(specific),
		},
		Person: phrase.Third,
	}

	if gender == phrase.Other {
		sets := m.library.Pronouns.GetAll()
		if len(sets) == 0 {
			if err := t.Printf("No pronoun sets loaded; placeholder forms will show.\n"); err != nil {
				return nil, err
			}
			return role, nil
		}

		setId, err := NewSelector(sets).Prompt(t, "Which pronouns?")
		if err != nil {
			return nil, fmt.Errorf("selecting pronouns: %w", err)
		}

		set, err := m.library.PronounSet(setId)
		if err != nil {
			return nil, err
		}
		role.Pronouns = set
	}

	return role, nil
}

func (m *Manager) promptGender(t *Term) (phrase.Gender, error) {
	str, err := t.Prompt("Gender (male, female, genderless, they, additional, other, plural) [genderless]: ", WithValidator(
		func(str string) (bool, string) {
			var g phrase.Gender
			if err := g.UnmarshalText([]byte(str)); err != nil {
				return false, "Unknown gender!\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return phrase.Genderless, err
	}

	var g phrase.Gender
	if err := g.UnmarshalText([]byte(str)); err != nil {
		return phrase.Genderless, err
	}
	return g, nil
}

// printNarration shows the message from every audience's point of view,
// plus the actor speaking in their own voice. Render failures print to the
// operator and end the pass without ending the session.
func (m *Manager) printNarration(t *Term, msg *message.Message, actor, target *message.Role) error {
	n, err := m.renderer.NarrateTemplate(msg.Template, nil, actor, target)
	if err != nil {
		return t.Printf("rendering failed: %v\n", err)
	}

	first, err := m.renderer.Render(msg.Template, nil,
		&message.Role{Being: actor.Being, Person: phrase.First, Pronouns: actor.Pronouns},
		target)
	if err != nil {
		return t.Printf("rendering failed: %v\n", err)
	}

	if err := t.Printf("\nYou see:       %s\n", display.Wrap(n.ToActor)); err != nil {
		return err
	}
	if n.ToTarget != "" {
		if err := t.Printf("Target sees:   %s\n", display.Wrap(n.ToTarget)); err != nil {
			return err
		}
	}
	if err := t.Printf("Others see:    %s\n", display.Wrap(n.ToObservers)); err != nil {
		return err
	}
	return t.Printf("In your voice: %s\n\n", display.Wrap(first))
}
