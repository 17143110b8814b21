// Package camel implements the Camel Cards game: five-card hands ranked by
// a poker-like classification and scored as rank × stake, under a standard
// rule set and a wildcard variant where jacks act as jokers.
package camel

import (
	"errors"
	"fmt"
)

// Label identifies one of the thirteen card faces.
type Label uint8

const (
	Two Label = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumLabels is the number of distinct card faces.
const NumLabels = 13

// ErrInvalidLabel is returned when a character is not one of the thirteen
// card symbols 2-9, T, J, Q, K, A.
var ErrInvalidLabel = errors.New("invalid card label")

// ParseLabel parses a single card character.
func ParseLabel(c byte) (Label, error) {
	switch c {
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'A':
		return Ace, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, c)
	}
}

// String returns the single-character representation of a label.
func (l Label) String() string {
	if l < NumLabels {
		return string("23456789TJQKA"[l])
	}
	return "?"
}

// Mode selects the rule variant used for ordering and classification.
type Mode uint8

const (
	// Standard ranks the jack between nine and queen.
	Standard Mode = iota
	// Wildcard treats jacks as jokers: weakest in positional comparison,
	// but merged into the best label during classification.
	Wildcard
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Wildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name as produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "standard":
		return Standard, nil
	case "wildcard":
		return Wildcard, nil
	default:
		return 0, fmt.Errorf("invalid mode %q (want standard or wildcard)", s)
	}
}

// Ordinal returns the label's strength under the given mode. Ordinals are
// strictly increasing in card strength; only their relative order is
// meaningful. In Wildcard mode the jack drops below the two, every other
// label keeps its relative position.
func (l Label) Ordinal(m Mode) int {
	if m == Wildcard {
		switch {
		case l == Jack:
			return 0
		case l < Jack:
			return int(l) + 1
		default:
			return int(l)
		}
	}
	return int(l)
}
