package card

import (
	"strconv"
	"strings"
)

// Rank 点数 (A, 2..10, J, Q, K)
type Rank string

const (
	RankA  Rank = "A"
	Rank2  Rank = "2"
	Rank3  Rank = "3"
	Rank4  Rank = "4"
	Rank5  Rank = "5"
	Rank6  Rank = "6"
	Rank7  Rank = "7"
	Rank8  Rank = "8"
	Rank9  Rank = "9"
	Rank10 Rank = "10"
	RankJ  Rank = "J"
	RankQ  Rank = "Q"
	RankK  Rank = "K"
)

// Ranks returns all ranks in conventional deck order.
func Ranks() []Rank {
	return []Rank{
		RankA, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7,
		Rank8, Rank9, Rank10, RankJ, RankQ, RankK,
	}
}

// ParseRank normalizes a rank string to a Rank constant. "T" and "t"
// are accepted as aliases for "10". Unknown values fail with
// *InvalidCardSpecError.
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return RankA, nil
	case "2":
		return Rank2, nil
	case "3":
		return Rank3, nil
	case "4":
		return Rank4, nil
	case "5":
		return Rank5, nil
	case "6":
		return Rank6, nil
	case "7":
		return Rank7, nil
	case "8":
		return Rank8, nil
	case "9":
		return Rank9, nil
	case "T", "10":
		return Rank10, nil
	case "J":
		return RankJ, nil
	case "Q":
		return RankQ, nil
	case "K":
		return RankK, nil
	default:
		return "", &InvalidCardSpecError{
			Field:   "rank",
			Value:   s,
			Allowed: rankNames(),
		}
	}
}

// Numeric reports the pip count for ranks 2-10. Ace and court ranks
// are not numeric; they draw a letter-in-circle pip instead.
func (r Rank) Numeric() (int, bool) {
	n, err := strconv.Atoi(string(r))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r Rank) String() string { return string(r) }

func rankNames() []string {
	names := make([]string, 0, 13)
	for _, r := range Ranks() {
		names = append(names, string(r))
	}
	return names
}
