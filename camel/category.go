package camel

import "fmt"

// Category enumerates hand classifications ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// String returns a human-readable category description.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return "Unknown"
	}
}

// Classify returns the hand's category under the given mode. In Wildcard
// mode the jacks are merged into the best non-jack label before the count
// shape is examined; the hand itself is never altered.
func (h Hand) Classify(m Mode) Category {
	counts := h.counts()
	if m == Wildcard {
		counts = resolveJokers(counts)
	}
	return classifyCounts(counts)
}

// classifyCounts maps the count multiset of a five-card hand onto its
// category. The two largest counts determine the shape completely.
func classifyCounts(counts [NumLabels]uint8) Category {
	var first, second uint8
	for _, n := range counts {
		if n > first {
			first, second = n, first
		} else if n > second {
			second = n
		}
	}

	switch {
	case first == 5:
		return FiveOfAKind
	case first == 4:
		return FourOfAKind
	case first == 3 && second == 2:
		return FullHouse
	case first == 3:
		return ThreeOfAKind
	case first == 2 && second == 2:
		return TwoPair
	case first == 2:
		return Pair
	case first == 1:
		return HighCard
	}
	panic(fmt.Sprintf("camel: impossible count shape %v for a five-card hand", counts))
}

// resolveJokers merges every jack into the non-jack label with the highest
// count. When several labels share the maximum the strongest one is chosen;
// the choice cannot change the resulting category. A hand of five jacks
// collapses onto a single placeholder label, which only ever feeds
// classification and never positional comparison.
func resolveJokers(counts [NumLabels]uint8) [NumLabels]uint8 {
	jokers := counts[Jack]
	if jokers == 0 {
		return counts
	}
	counts[Jack] = 0

	best := Two
	for l := Three; l <= Ace; l++ {
		if l == Jack {
			continue
		}
		if counts[l] >= counts[best] {
			best = l
		}
	}
	counts[best] += jokers
	return counts
}
