package card

import "strings"

// Suit 花色
type Suit string

const (
	Hearts   Suit = "hearts"   // ♥
	Diamonds Suit = "diamonds" // ♦
	Clubs    Suit = "clubs"    // ♣
	Spades   Suit = "spades"   // ♠
)

// Color is derived from the suit, never stored.
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// ParseSuit normalizes a suit string ("Hearts", "SPADES", ...) to a Suit
// constant. Unknown values fail with *InvalidCardSpecError.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hearts", "heart":
		return Hearts, nil
	case "diamonds", "diamond":
		return Diamonds, nil
	case "clubs", "club":
		return Clubs, nil
	case "spades", "spade":
		return Spades, nil
	default:
		return "", &InvalidCardSpecError{
			Field:   "suit",
			Value:   s,
			Allowed: suitNames(),
		}
	}
}

func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Symbol returns the plain-text suit glyph used in corner labels.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

func (s Suit) String() string { return string(s) }

func suitNames() []string {
	names := make([]string, 0, 4)
	for _, s := range Suits() {
		names = append(names, string(s))
	}
	return names
}
