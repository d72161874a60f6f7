// Package phrase renders English sentence templates against the
// grammatical person and gender of the beings they mention, so a single
// past-tense template reads naturally no matter who acted or was acted on.
package phrase

import (
	"strings"
	"unicode/utf8"
)

// Markers conventionally used when a template addresses two participants:
// '@' introduces tokens for the acting Being and '~' for the affected one.
// Each Substitute call is scoped to a single marker, so the two token sets
// never interfere inside one template.
const (
	ActorMarker  rune = '@'
	TargetMarker rune = '~'
)

// Placeholder forms substituted for the Other gender. They are deliberately
// unpronounceable: OtherMark never occurs in real English text, so callers
// that support custom pronoun schemes can rewrite these after substitution.
// The forms are the Male row with the leading 'h' replaced by OtherMark,
// except the standalone possessive: a letter-for-letter derivation would
// give "``is" for both @my and @mine (as "his" serves both in English),
// and a rewrite pass could no longer tell the two apart. It is "``irs"
// instead.
//
// Capitalization happens in the caller's final pass: upper-casing the first
// letter of "``e" yields "``E", so rewrites must handle both variants.
const (
	OtherMark       = "``"
	OtherSubjective = OtherMark + "e"
	OtherObjective  = OtherMark + "im"
	OtherAdjective  = OtherMark + "is"
	OtherPossessive = OtherMark + "irs"
	OtherReflexive  = OtherMark + "imself"
)

// forms is one row of the substitution table. The field names follow the
// usual pronoun categories: subjective @I, objective @me, possessive
// adjective @my, standalone possessive @mine, reflexive @myself, plus the
// past-tense copula @was and the name used for @user and @general. An
// empty name means "use the Being's name" (third person).
type forms struct {
	name       string
	subjective string
	objective  string
	adjective  string
	possessive string
	reflexive  string
	was        string
}

// The table is stored as explicit rows rather than derived, because
// English third-person pronouns are irregular across the gender axis and
// the Other row intentionally breaks the derivation rule for its
// standalone possessive.
var (
	firstSingular = forms{name: "I", subjective: "I", objective: "me", adjective: "my", possessive: "mine", reflexive: "myself", was: "was"}
	firstPlural   = forms{name: "we", subjective: "we", objective: "us", adjective: "our", possessive: "ours", reflexive: "ourselves", was: "were"}

	secondSingular = forms{name: "you", subjective: "you", objective: "you", adjective: "your", possessive: "yours", reflexive: "yourself", was: "were"}
	secondPlural   = forms{name: "you", subjective: "you", objective: "you", adjective: "your", possessive: "yours", reflexive: "yourselves", was: "were"}

	third = map[Gender]forms{
		Genderless: {subjective: "it", objective: "it", adjective: "its", possessive: "its", reflexive: "itself", was: "was"},
		Male:       {subjective: "he", objective: "him", adjective: "his", possessive: "his", reflexive: "himself", was: "was"},
		Female:     {subjective: "she", objective: "her", adjective: "her", possessive: "hers", reflexive: "herself", was: "was"},
		They:       {subjective: "they", objective: "them", adjective: "their", possessive: "theirs", reflexive: "themself", was: "were"},
		Additional: {subjective: "xe", objective: "xim", adjective: "xis", possessive: "xis", reflexive: "ximself", was: "was"},
		Other:      {subjective: OtherSubjective, objective: OtherObjective, adjective: OtherAdjective, possessive: OtherPossessive, reflexive: OtherReflexive, was: "was"},
		Plural:     {subjective: "they", objective: "them", adjective: "their", possessive: "theirs", reflexive: "themselves", was: "were"},
	}
)

// tokenNames in match order, longer names first so "@myself" is never
// consumed as "@my" followed by "self".
var tokenNames = []string{"general", "myself", "mine", "user", "was", "my", "me", "I"}

// Substitute returns tmpl with every token introduced by marker replaced by
// the wording that fits person and b. A token is the marker immediately
// followed by one of: user, general, I, me, my, mine, myself, was.
// Templates are written in past tense from the first-person view, like
// "@I jumped with @my spear at ~user!"; the only conjugated verb is the
// copula @was ("I was", "you were"). Matching is case-sensitive and
// whole-token, every occurrence is replaced, and a marker followed by
// anything unrecognized passes through untouched, so literal marker
// characters are safe in templates.
//
// In third person @user becomes the Being's DisplayName while @general is
// always "the" plus the general name, even when a specific name exists. In
// first and second person both are the plain pronoun ("I", "we", "you").
//
// Substitute is pure: it keeps no state, performs no I/O, and always
// produces the same output for the same inputs. Substituted pronouns can
// lowercase a sentence-initial capital, so the finished string should go
// through display.Capitalize once all participants are substituted.
func Substitute(tmpl string, person Person, b *Being, marker rune) string {
	if !strings.ContainsRune(tmpl, marker) {
		return tmpl
	}

	row := resolve(person, b.Gender)

	var sb strings.Builder
	sb.Grow(len(tmpl))
	for i := 0; i < len(tmpl); {
		r, size := utf8.DecodeRuneInString(tmpl[i:])
		if r != marker {
			sb.WriteString(tmpl[i : i+size])
			i += size
			continue
		}

		token := matchToken(tmpl[i+size:])
		if token == "" {
			sb.WriteRune(marker)
			i += size
			continue
		}

		sb.WriteString(row.resolveToken(token, b))
		i += size + len(token)
	}
	return sb.String()
}

// User substitutes the '@' tokens that address the acting Being. It is
// Substitute with the conventional actor marker.
func User(tmpl string, person Person, b *Being) string {
	return Substitute(tmpl, person, b, ActorMarker)
}

// Target substitutes the '~' tokens that address the affected Being. It is
// Substitute with the conventional target marker.
func Target(tmpl string, person Person, b *Being) string {
	return Substitute(tmpl, person, b, TargetMarker)
}

// resolve picks the table row for a person and gender. Plural agreement
// wins in every person; outside the third person gender is otherwise
// irrelevant. Unknown person values fall back to Third (see Person) and
// unknown genders to Genderless.
func resolve(person Person, g Gender) forms {
	switch person {
	case First:
		if g == Plural {
			return firstPlural
		}
		return firstSingular
	case Second:
		if g == Plural {
			return secondPlural
		}
		return secondSingular
	default:
		row, ok := third[g]
		if !ok {
			row = third[Genderless]
		}
		return row
	}
}

func matchToken(s string) string {
	for _, name := range tokenNames {
		if strings.HasPrefix(s, name) {
			return name
		}
	}
	return ""
}

func (f forms) resolveToken(token string, b *Being) string {
	switch token {
	case "user":
		if f.name != "" {
			return f.name
		}
		return b.DisplayName()
	case "general":
		if f.name != "" {
			return f.name
		}
		return "the " + b.GeneralName
	case "I":
		return f.subjective
	case "me":
		return f.objective
	case "my":
		return f.adjective
	case "mine":
		return f.possessive
	case "myself":
		return f.reflexive
	case "was":
		return f.was
	}
	return token
}
