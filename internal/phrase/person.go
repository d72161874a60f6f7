package phrase

import "fmt"

// Person is the grammatical person a Being is addressed in: First ("I",
// "we"), Second ("you"), or Third (name or pronoun). It is supplied per
// substitution rather than stored on the Being, because the same Being is
// addressed differently across messages: the narrator says "you" to the
// player and "she" to an onlooker.
//
// The numeric values 1, 2, and 3 are part of the wire contract. Any other
// value is treated as Third, so a malformed request degrades to a readable
// sentence instead of failing the render.
type Person int

const (
	First  Person = 1
	Second Person = 2
	Third  Person = 3
)

func (p Person) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	default:
		return fmt.Sprintf("person(%d)", int(p))
	}
}
