package message

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-phrase/internal/display"
	"github.com/pixil98/go-phrase/internal/phrase"
)

type pronounPossessive struct {
	Adjective string `json:"adjective"`
	Pronoun   string `json:"pronoun"`
}

// PronounSet defines a set of pronouns loaded from asset files. Text
// rendered for a being whose gender carries marked placeholder forms gets
// a Rewrite pass to swap the placeholders for the set's real words.
type PronounSet struct {
	Subjective string            `json:"subjective"`
	Objective  string            `json:"objective"`
	Possessive pronounPossessive `json:"possessive"`
	Reflexive  string            `json:"reflexive"`
}

func (p *PronounSet) Validate() error {
	el := errors.NewErrorList()

	if p.Subjective == "" {
		el.Add(fmt.Errorf("subjective form must be set"))
	}
	if p.Objective == "" {
		el.Add(fmt.Errorf("objective form must be set"))
	}
	if p.Possessive.Adjective == "" {
		el.Add(fmt.Errorf("possessive adjective form must be set"))
	}
	if p.Possessive.Pronoun == "" {
		el.Add(fmt.Errorf("possessive pronoun form must be set"))
	}
	if p.Reflexive == "" {
		el.Add(fmt.Errorf("reflexive form must be set"))
	}

	return el.Err()
}

func (p *PronounSet) Selector() string {
	return fmt.Sprintf("%s/%s", p.Subjective, p.Objective)
}

// Rewrite replaces marked placeholder pronouns in text with this set's
// forms, covering the capitalized variants a sentence opener produces.
// Longer placeholders are listed first so "``imself" is never clipped to
// an "``im" match.
func (p *PronounSet) Rewrite(text string) string {
	if !strings.Contains(text, phrase.OtherMark) {
		return text
	}

	pairs := [...][2]string{
		{phrase.OtherReflexive, p.Reflexive},
		{phrase.OtherPossessive, p.Possessive.Pronoun},
		{phrase.OtherObjective, p.Objective},
		{phrase.OtherAdjective, p.Possessive.Adjective},
		{phrase.OtherSubjective, p.Subjective},
	}

	args := make([]string, 0, len(pairs)*4)
	for _, pair := range pairs {
		args = append(args,
			display.Capitalize(pair[0]), display.Capitalize(pair[1]),
			pair[0], pair[1],
		)
	}

	return strings.NewReplacer(args...).Replace(text)
}
