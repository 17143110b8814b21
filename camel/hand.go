package camel

import (
	"errors"
	"fmt"
)

// HandSize is the number of cards in every hand.
const HandSize = 5

// ErrHandSize is returned when a hand does not contain exactly five cards.
var ErrHandSize = errors.New("hand must contain exactly five cards")

// ErrNegativeStake is returned when a hand's stake is negative.
var ErrNegativeStake = errors.New("stake must be non-negative")

// Hand is an ordered five-label sequence and its stake. Hands are immutable
// after construction; classification and ordering are derived per mode.
type Hand struct {
	labels [HandSize]Label
	stake  int64
}

// NewHand builds a hand from five labels and a non-negative stake.
func NewHand(labels [HandSize]Label, stake int64) (Hand, error) {
	for i, l := range labels {
		if l >= NumLabels {
			return Hand{}, fmt.Errorf("card %d: %w: label value %d", i+1, ErrInvalidLabel, l)
		}
	}
	if stake < 0 {
		return Hand{}, fmt.Errorf("%w: %d", ErrNegativeStake, stake)
	}
	return Hand{labels: labels, stake: stake}, nil
}

// ParseHand parses a five-character card string such as "32T3K".
func ParseHand(cards string, stake int64) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d in %q", ErrHandSize, len(cards), cards)
	}
	var labels [HandSize]Label
	for i := 0; i < HandSize; i++ {
		l, err := ParseLabel(cards[i])
		if err != nil {
			return Hand{}, fmt.Errorf("card %d: %w", i+1, err)
		}
		labels[i] = l
	}
	return NewHand(labels, stake)
}

// MustParseHand parses a hand and panics on error (for tests).
func MustParseHand(cards string, stake int64) Hand {
	h, err := ParseHand(cards, stake)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand %q: %v", cards, err))
	}
	return h
}

// Labels returns the original card sequence in input order.
func (h Hand) Labels() [HandSize]Label {
	return h.labels
}

// Stake returns the hand's stake.
func (h Hand) Stake() int64 {
	return h.stake
}

// String returns the five-character card string, e.g. "KTJJT".
func (h Hand) String() string {
	buf := make([]byte, 0, HandSize)
	for _, l := range h.labels {
		buf = append(buf, l.String()[0])
	}
	return string(buf)
}

// counts returns the per-label occurrence counts; they always sum to five.
func (h Hand) counts() [NumLabels]uint8 {
	var counts [NumLabels]uint8
	for _, l := range h.labels {
		counts[l]++
	}
	return counts
}

// Compare orders h against other under mode m. It returns a negative value
// if h is weaker, positive if stronger, and zero only when both hands carry
// an identical label sequence. Categories are compared first, then the
// original labels position by position.
func (h Hand) Compare(other Hand, m Mode) int {
	if c := int(h.Classify(m)) - int(other.Classify(m)); c != 0 {
		return c
	}
	return h.comparePositions(other, m)
}

// comparePositions compares the original (unresolved) label sequences left
// to right under the mode's ordinals.
func (h Hand) comparePositions(other Hand, m Mode) int {
	for i := range h.labels {
		if c := h.labels[i].Ordinal(m) - other.labels[i].Ordinal(m); c != 0 {
			return c
		}
	}
	return 0
}
