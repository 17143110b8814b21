package camel

import (
	"math/rand"
	"testing"
)

func TestClassifyStandard(t *testing.T) {
	tests := []struct {
		cards    string
		expected Category
	}{
		{"AAAAA", FiveOfAKind},
		{"AA8AA", FourOfAKind},
		{"23332", FullHouse},
		{"TTT98", ThreeOfAKind},
		{"23432", TwoPair},
		{"A23A4", Pair},
		{"23456", HighCard},

		// Worked examples
		{"32T3K", Pair},
		{"T55J5", ThreeOfAKind},
		{"KK677", TwoPair},
		{"KTJJT", TwoPair},
		{"QQQJA", ThreeOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			h := MustParseHand(tt.cards, 1)
			if got := h.Classify(Standard); got != tt.expected {
				t.Errorf("Classify(%s, standard) = %s, want %s", tt.cards, got, tt.expected)
			}
		})
	}
}

func TestClassifyWildcard(t *testing.T) {
	tests := []struct {
		cards    string
		expected Category
	}{
		// No jacks: identical to standard classification.
		{"32T3K", Pair},
		{"KK677", TwoPair},
		{"23456", HighCard},

		// Jokers merge into the most frequent label.
		{"T55J5", FourOfAKind},
		{"KTJJT", FourOfAKind},
		{"QQQJA", FourOfAKind},
		{"J2345", Pair},
		{"JJ234", ThreeOfAKind},
		{"2233J", FullHouse},
		{"JJJ23", FourOfAKind},
		{"JJJJ2", FiveOfAKind},

		// All jokers still form the strongest hand.
		{"JJJJJ", FiveOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			h := MustParseHand(tt.cards, 1)
			if got := h.Classify(Wildcard); got != tt.expected {
				t.Errorf("Classify(%s, wildcard) = %s, want %s", tt.cards, got, tt.expected)
			}
		})
	}
}

// Classification depends only on the label multiset, never on card order.
func TestClassifyPermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, cards := range []string{"32T3K", "T55J5", "KTJJT", "QQQJA", "JJJJJ", "23456"} {
		base := MustParseHand(cards, 1)
		labels := base.Labels()
		for trial := 0; trial < 20; trial++ {
			shuffled := labels
			rng.Shuffle(HandSize, func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			perm, err := NewHand(shuffled, 1)
			if err != nil {
				t.Fatalf("NewHand(%v) returned error: %v", shuffled, err)
			}
			for _, mode := range []Mode{Standard, Wildcard} {
				if got, want := perm.Classify(mode), base.Classify(mode); got != want {
					t.Fatalf("Classify(%s, %s) = %s, want %s (permutation of %s)",
						perm, mode, got, want, cards)
				}
			}
		}
	}
}

func TestResolveJokersRemovesJackEntry(t *testing.T) {
	for _, cards := range []string{"JJJJJ", "KTJJT", "J2345", "32T3K", "QQQJA"} {
		counts := resolveJokers(MustParseHand(cards, 1).counts())
		if counts[Jack] != 0 {
			t.Errorf("resolveJokers(%s) left a jack count of %d", cards, counts[Jack])
		}
		var sum int
		for _, n := range counts {
			sum += int(n)
		}
		if sum != HandSize {
			t.Errorf("resolveJokers(%s) counts sum to %d, want %d", cards, sum, HandSize)
		}
	}
}

func TestCategoryString(t *testing.T) {
	names := map[Category]string{
		HighCard:     "High Card",
		Pair:         "Pair",
		TwoPair:      "Two Pair",
		ThreeOfAKind: "Three of a Kind",
		FullHouse:    "Full House",
		FourOfAKind:  "Four of a Kind",
		FiveOfAKind:  "Five of a Kind",
	}
	for c, want := range names {
		if got := c.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", c, got, want)
		}
	}
}
