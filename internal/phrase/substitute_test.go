package phrase

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

// allTokens exercises every token in one template so a table error in any
// cell shows up as a diff.
const allTokens = "@user|@I|@me|@my|@mine|@myself|@was"

func TestSubstitute(t *testing.T) {
	rogue := &Being{Gender: Female, GeneralName: "rogue", SpecificName: "Brunhilda"}
	goblin := &Being{Gender: Male, GeneralName: "goblin"}

	tests := map[string]struct {
		tmpl   string
		person Person
		being  *Being
		marker rune
		exp    string
	}{
		"first person singular": {
			tmpl:   allTokens,
			person: First,
			being:  goblin,
			marker: '@',
			exp:    "I|I|me|my|mine|myself|was",
		},
		"first person plural": {
			tmpl:   allTokens,
			person: First,
			being:  &Being{Gender: Plural, GeneralName: "war band"},
			marker: '@',
			exp:    "we|we|us|our|ours|ourselves|were",
		},
		"second person singular": {
			tmpl:   allTokens,
			person: Second,
			being:  rogue,
			marker: '@',
			exp:    "you|you|you|your|yours|yourself|were",
		},
		"second person plural": {
			tmpl:   allTokens,
			person: Second,
			being:  &Being{Gender: Plural, GeneralName: "war band"},
			marker: '@',
			exp:    "you|you|you|your|yours|yourselves|were",
		},
		"third person male": {
			tmpl:   allTokens,
			person: Third,
			being:  goblin,
			marker: '@',
			exp:    "the goblin|he|him|his|his|himself|was",
		},
		"third person female": {
			tmpl:   allTokens,
			person: Third,
			being:  rogue,
			marker: '@',
			exp:    "Brunhilda|she|her|her|hers|herself|was",
		},
		"third person genderless": {
			tmpl:   allTokens,
			person: Third,
			being:  &Being{GeneralName: "stone idol"},
			marker: '@',
			exp:    "the stone idol|it|it|its|its|itself|was",
		},
		"third person they": {
			tmpl:   allTokens,
			person: Third,
			being:  &Being{Gender: They, GeneralName: "stranger"},
			marker: '@',
			exp:    "the stranger|they|them|their|theirs|themself|were",
		},
		"third person additional": {
			tmpl:   allTokens,
			person: Third,
			being:  &Being{Gender: Additional, GeneralName: "cyber-goblin"},
			marker: '@',
			exp:    "the cyber-goblin|xe|xim|xis|xis|ximself|was",
		},
		"third person other": {
			tmpl:   allTokens,
			person: Third,
			being:  &Being{Gender: Other, GeneralName: "envoy"},
			marker: '@',
			exp:    "the envoy|``e|``im|``is|``irs|``imself|was",
		},
		"third person plural": {
			tmpl:   allTokens,
			person: Third,
			being:  &Being{Gender: Plural, GeneralName: "war band"},
			marker: '@',
			exp:    "the war band|they|them|their|theirs|themselves|were",
		},
		"unknown person falls back to third": {
			tmpl:   allTokens,
			person: Person(0),
			being:  goblin,
			marker: '@',
			exp:    "the goblin|he|him|his|his|himself|was",
		},
		"unknown gender falls back to genderless": {
			tmpl:   "@I struck @myself",
			person: Third,
			being:  &Being{Gender: Gender(99), GeneralName: "glitch"},
			marker: '@',
			exp:    "it struck itself",
		},
		"general ignores specific name": {
			tmpl:   "@user is not @general",
			person: Third,
			being:  rogue,
			marker: '@',
			exp:    "Brunhilda is not the rogue",
		},
		"general in second person is a pronoun": {
			tmpl:   "@general dodged",
			person: Second,
			being:  rogue,
			marker: '@',
			exp:    "you dodged",
		},
		"longer tokens win over shorter prefixes": {
			tmpl:   "@my @myself @mine @me",
			person: Third,
			being:  goblin,
			marker: '@',
			exp:    "his himself his him",
		},
		"every occurrence is replaced": {
			tmpl:   "@I saw @me and @my friend",
			person: Third,
			being:  rogue,
			marker: '@',
			exp:    "she saw her and her friend",
		},
		"unrecognized token passes through": {
			tmpl:   "ping @bogus and @user",
			person: Third,
			being:  goblin,
			marker: '@',
			exp:    "ping @bogus and the goblin",
		},
		"bare marker passes through": {
			tmpl:   "fifty @ fifty @",
			person: Third,
			being:  goblin,
			marker: '@',
			exp:    "fifty @ fifty @",
		},
		"matching is case sensitive": {
			tmpl:   "@i @I",
			person: Third,
			being:  goblin,
			marker: '@',
			exp:    "@i he",
		},
		"no tokens returns template unchanged": {
			tmpl:   "nothing to do here",
			person: Third,
			being:  goblin,
			marker: '@',
			exp:    "nothing to do here",
		},
		"tilde marker leaves at tokens alone": {
			tmpl:   "@I lunged at ~user",
			person: Third,
			being:  goblin,
			marker: '~',
			exp:    "@I lunged at the goblin",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Substitute(tt.tmpl, tt.person, tt.being, tt.marker)
			testutil.AssertEqual(t, "substitution", got, tt.exp)
		})
	}
}

func TestSubstitute_TwoParticipants(t *testing.T) {
	tmpl := "@user jumped with @my spear at ~user!"
	rogue := &Being{Gender: Female, GeneralName: "rogue", SpecificName: "Brunhilda"}
	goblin := &Being{Gender: Male, GeneralName: "goblin"}

	tests := map[string]struct {
		actorPerson Person
		exp         string
	}{
		"second person actor": {
			actorPerson: Second,
			exp:         "you jumped with your spear at the goblin!",
		},
		"first person actor": {
			actorPerson: First,
			exp:         "I jumped with my spear at the goblin!",
		},
		"third person actor": {
			actorPerson: Third,
			exp:         "Brunhilda jumped with her spear at the goblin!",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Target(User(tmpl, tt.actorPerson, rogue), Third, goblin)
			testutil.AssertEqual(t, "two-pass substitution", got, tt.exp)
		})
	}
}

// Second person reads the same for every gender short of Plural, which
// still changes the reflexive ("yourselves") and nothing else.
func TestSubstitute_SecondPersonGenderInvariant(t *testing.T) {
	base := Substitute(allTokens, Second, &Being{GeneralName: "rogue"}, '@')

	for _, g := range []Gender{Male, Female, They, Additional, Other} {
		got := Substitute(allTokens, Second, &Being{Gender: g, GeneralName: "rogue"}, '@')
		if got != base {
			t.Errorf("gender %s: got %q, expected %q", g, got, base)
		}
	}
}

func TestSubstitute_GendersAreDistinct(t *testing.T) {
	tmpl := "@I dropped @my torch"
	seen := map[string]Gender{}

	for _, g := range []Gender{Male, Female, Genderless} {
		got := Substitute(tmpl, Third, &Being{Gender: g, GeneralName: "guard"}, '@')
		if prev, ok := seen[got]; ok {
			t.Errorf("gender %s renders identically to %s: %q", g, prev, got)
		}
		seen[got] = g
	}
}

// The Additional row is the Male row with the leading 'h' replaced by 'x',
// for every pronoun token.
func TestSubstitute_AdditionalDerivesFromMale(t *testing.T) {
	for _, token := range []string{"I", "me", "my", "mine", "myself"} {
		male := Substitute("@"+token, Third, &Being{Gender: Male, GeneralName: "g"}, '@')
		additional := Substitute("@"+token, Third, &Being{Gender: Additional, GeneralName: "g"}, '@')

		exp := "x" + strings.TrimPrefix(male, "h")
		testutil.AssertEqual(t, "token "+token, additional, exp)
	}
}

// The Other row derives the same way with OtherMark, except the standalone
// possessive, which must stay distinguishable from the adjective form so a
// rewrite pass can tell @my from @mine.
func TestSubstitute_OtherDerivesFromMale(t *testing.T) {
	for _, token := range []string{"I", "me", "my", "myself"} {
		male := Substitute("@"+token, Third, &Being{Gender: Male, GeneralName: "g"}, '@')
		other := Substitute("@"+token, Third, &Being{Gender: Other, GeneralName: "g"}, '@')

		exp := OtherMark + strings.TrimPrefix(male, "h")
		testutil.AssertEqual(t, "token "+token, other, exp)
	}

	adjective := Substitute("@my", Third, &Being{Gender: Other, GeneralName: "g"}, '@')
	possessive := Substitute("@mine", Third, &Being{Gender: Other, GeneralName: "g"}, '@')

	testutil.AssertEqual(t, "standalone possessive", possessive, OtherPossessive)
	if possessive == adjective {
		t.Errorf("@mine and @my both render as %q; rewrites cannot tell them apart", possessive)
	}
	if !strings.HasPrefix(possessive, OtherMark) {
		t.Errorf("possessive %q does not carry the %q mark", possessive, OtherMark)
	}
}
