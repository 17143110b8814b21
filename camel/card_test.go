package camel

import (
	"testing"
)

func TestParseLabel(t *testing.T) {
	valid := "23456789TJQKA"
	for i := 0; i < len(valid); i++ {
		l, err := ParseLabel(valid[i])
		if err != nil {
			t.Fatalf("ParseLabel(%q) returned error: %v", valid[i], err)
		}
		if l != Label(i) {
			t.Errorf("ParseLabel(%q) = %d, want %d", valid[i], l, i)
		}
		if l.String() != string(valid[i]) {
			t.Errorf("Label(%d).String() = %q, want %q", l, l.String(), string(valid[i]))
		}
	}

	for _, c := range []byte{'1', '0', 'X', 'j', 't', ' ', '*'} {
		if _, err := ParseLabel(c); err == nil {
			t.Errorf("ParseLabel(%q) should have failed", c)
		}
	}
}

func TestOrdinalStandardOrder(t *testing.T) {
	// 2 < 3 < ... < 9 < T < J < Q < K < A
	want := []Label{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
	for i := 1; i < len(want); i++ {
		lo, hi := want[i-1], want[i]
		if lo.Ordinal(Standard) >= hi.Ordinal(Standard) {
			t.Errorf("standard: %s should rank below %s", lo, hi)
		}
	}
}

func TestOrdinalWildcardOrder(t *testing.T) {
	// J drops below 2; everything else keeps its relative position.
	want := []Label{Jack, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Queen, King, Ace}
	for i := 1; i < len(want); i++ {
		lo, hi := want[i-1], want[i]
		if lo.Ordinal(Wildcard) >= hi.Ordinal(Wildcard) {
			t.Errorf("wildcard: %s should rank below %s", lo, hi)
		}
	}
}

func TestOrdinalInjectivePerMode(t *testing.T) {
	for _, mode := range []Mode{Standard, Wildcard} {
		seen := make(map[int]Label)
		for l := Two; l <= Ace; l++ {
			ord := l.Ordinal(mode)
			if dup, ok := seen[ord]; ok {
				t.Errorf("%s: labels %s and %s share ordinal %d", mode, dup, l, ord)
			}
			seen[ord] = l
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range []Mode{Standard, Wildcard} {
		got, err := ParseMode(mode.String())
		if err != nil {
			t.Fatalf("ParseMode(%q) returned error: %v", mode, err)
		}
		if got != mode {
			t.Errorf("ParseMode(%q) = %s", mode, got)
		}
	}
	if _, err := ParseMode("joker"); err == nil {
		t.Error("ParseMode(\"joker\") should have failed")
	}
}
