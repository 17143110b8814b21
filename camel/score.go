package camel

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// ErrIndistinguishable is returned when two hands carry identical label
// sequences. Well-formed inputs never contain duplicate hands; ranking
// one arbitrarily would silently bias the total, so it is rejected.
var ErrIndistinguishable = errors.New("indistinguishable hands")

// Ranked pairs a hand with its classification under one rule variant.
// The slice returned by Rank is ordered weakest first.
type Ranked struct {
	Hand     Hand
	Category Category
}

// Rank classifies every hand under mode m and returns them sorted ascending
// by strength. The input slice is not modified.
func Rank(hands []Hand, m Mode) ([]Ranked, error) {
	ranked := make([]Ranked, len(hands))
	for i, h := range hands {
		ranked[i] = Ranked{Hand: h, Category: h.Classify(m)}
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		if c := int(a.Category) - int(b.Category); c != 0 {
			return c
		}
		return a.Hand.comparePositions(b.Hand, m)
	})

	// Equal neighbours in a sorted sequence are the only possible ties.
	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		if prev.Category == cur.Category && prev.Hand.comparePositions(cur.Hand, m) == 0 {
			return nil, fmt.Errorf("%w: %s appears more than once", ErrIndistinguishable, cur.Hand)
		}
	}
	return ranked, nil
}

// Score sorts the hands ascending by strength under mode m, assigns each a
// 1-based rank, and returns the sum of rank × stake.
func Score(hands []Hand, m Mode) (int64, error) {
	ranked, err := Rank(hands, m)
	if err != nil {
		return 0, err
	}
	var total int64
	for i, r := range ranked {
		total += int64(i+1) * r.Hand.Stake()
	}
	return total, nil
}

// Totals holds the final score under each rule variant.
type Totals struct {
	Standard int64 `json:"standard"`
	Wildcard int64 `json:"wildcard"`
}

// ScoreBoth computes the Standard and Wildcard totals for the same hand set.
// Hands are immutable and the two pipelines share nothing, so the variants
// run concurrently.
func ScoreBoth(hands []Hand) (Totals, error) {
	var t Totals
	var g errgroup.Group
	g.Go(func() error {
		total, err := Score(hands, Standard)
		t.Standard = total
		return err
	})
	g.Go(func() error {
		total, err := Score(hands, Wildcard)
		t.Wildcard = total
		return err
	})
	if err := g.Wait(); err != nil {
		return Totals{}, err
	}
	return t, nil
}
