package phrase

import "fmt"

// Gender selects the pronoun row used when a Being is addressed in the
// third person, and carries number: Plural marks a Being that is a group of
// individuals, which takes plural agreement in every person. Plural should
// not be confused with They, the gender-non-specific singular.
//
// The zero value is Genderless, so a Being built without an explicit gender
// reads naturally for inanimate things ("it", "its", "itself").
type Gender int

const (
	// Genderless uses "it" and related forms; meant for things that aren't
	// alive, and in most cases not recommended for people.
	Genderless Gender = iota
	Male
	Female
	// They uses singular "they" in place of "he" or "she", for someone with
	// a non-specific or unknown gender.
	They
	// Additional is a gender in addition to male and female that is not
	// genderless: "xe" and related forms, the Male forms with the leading
	// 'h' replaced by 'x'. Useful for non-human species and for people who
	// use non-binary pronouns.
	Additional
	// Other substitutes deliberately unpronounceable placeholder forms
	// meant to be rewritten afterward with a custom pronoun set. See the
	// Other* constants.
	Other
	// Plural marks a group, regardless of the members' genders, addressed
	// as a single Being.
	Plural
)

func (g Gender) String() string {
	switch g {
	case Genderless:
		return "genderless"
	case Male:
		return "male"
	case Female:
		return "female"
	case They:
		return "they"
	case Additional:
		return "additional"
	case Other:
		return "other"
	case Plural:
		return "plural"
	default:
		return fmt.Sprintf("gender(%d)", int(g))
	}
}

func (g Gender) MarshalText() ([]byte, error) {
	switch g {
	case Genderless, Male, Female, They, Additional, Other, Plural:
		return []byte(g.String()), nil
	default:
		return nil, fmt.Errorf("unknown gender: %d", int(g))
	}
}

func (g *Gender) UnmarshalText(text []byte) error {
	switch string(text) {
	case "genderless", "":
		*g = Genderless
	case "male":
		*g = Male
	case "female":
		*g = Female
	case "they":
		*g = They
	case "additional":
		*g = Additional
	case "other":
		*g = Other
	case "plural":
		*g = Plural
	default:
		return fmt.Errorf("unknown gender: %s", text)
	}
	return nil
}
