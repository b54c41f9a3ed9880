package facecard

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"cardtable/card"
)

func TestRender_AceOfSpades(t *testing.T) {
	svg, err := Render("spades", "A", nil)
	if err != nil {
		t.Fatalf("Render err: %v", err)
	}
	if !strings.Contains(svg, "♠") {
		t.Fatalf("expected spade glyph in output")
	}
	if !strings.Contains(svg, ">A</text>") {
		t.Fatalf("expected literal A in output")
	}
	if got := strings.Count(svg, "<circle"); got != 1 {
		t.Fatalf("expected 1 pip for ace, got %d", got)
	}
}

func TestRender_CornerGlyphCount(t *testing.T) {
	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			svg, err := Render(string(s), string(r), nil)
			if err != nil {
				t.Fatalf("Render(%s, %s) err: %v", s, r, err)
			}
			if got := strings.Count(svg, s.Symbol()); got != 2 {
				t.Fatalf("Render(%s, %s): suit symbol count = %d, want 2 (one per corner)", s, r, got)
			}
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	first, err := Render("Hearts", "10", nil)
	if err != nil {
		t.Fatalf("Render err: %v", err)
	}
	second, err := Render("Hearts", "10", nil)
	if err != nil {
		t.Fatalf("Render err: %v", err)
	}
	if first != second {
		t.Fatalf("expected byte-identical output for identical inputs")
	}
}

func TestRender_AllCardsDistinct(t *testing.T) {
	seen := make(map[string]string, 52)
	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			svg, err := Render(string(s), string(r), nil)
			if err != nil {
				t.Fatalf("Render(%s, %s) err: %v", s, r, err)
			}
			name := fmt.Sprintf("%s of %s", r, s)
			if prev, dup := seen[svg]; dup {
				t.Fatalf("%s renders identically to %s", name, prev)
			}
			seen[svg] = name
		}
	}
}

func TestRender_NoOverlappingPipTransforms(t *testing.T) {
	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			svg, err := Render(string(s), string(r), nil)
			if err != nil {
				t.Fatalf("Render(%s, %s) err: %v", s, r, err)
			}
			transforms := make(map[string]bool)
			for _, line := range strings.Split(svg, "\n") {
				idx := strings.Index(line, `transform="translate`)
				if idx < 0 {
					continue
				}
				tr := line[idx:]
				if transforms[tr] {
					t.Fatalf("Render(%s, %s): two pips share transform %s", s, r, tr)
				}
				transforms[tr] = true
			}
		}
	}
}

func TestRender_EmptyPlacementList(t *testing.T) {
	layout := PipLayout{card.Rank5: {}}
	svg, err := Render("clubs", "5", layout)
	if err != nil {
		t.Fatalf("Render err: %v", err)
	}
	if strings.Contains(svg, "<path") {
		t.Fatalf("expected no pips for empty placement list")
	}
	if got := strings.Count(svg, "♣"); got != 2 {
		t.Fatalf("expected corner labels to survive, symbol count = %d", got)
	}
}

func TestRender_OverrideDoesNotMergeWithDefault(t *testing.T) {
	// Override defines rank 2 only; rendering rank 9 must not fall
	// back to the default pips.
	layout := PipLayout{card.Rank2: {{X: 40, Y: 30, Scale: 1.5}, {X: 40, Y: 90, Scale: 1.5}}}
	svg, err := Render("diamonds", "9", layout)
	if err != nil {
		t.Fatalf("Render err: %v", err)
	}
	if strings.Contains(svg, "<path") {
		t.Fatalf("expected no pips for rank omitted from override")
	}
}

func TestRender_CustomPlacement(t *testing.T) {
	layout := PipLayout{card.Rank2: {{X: 20, Y: 40, Scale: 1}, {X: 60, Y: 80, Scale: 2}}}
	svg, err := Render("hearts", "2", layout)
	if err != nil {
		t.Fatalf("Render err: %v", err)
	}
	if got := strings.Count(svg, "<path"); got != 2 {
		t.Fatalf("expected 2 pips, got %d", got)
	}
	if !strings.Contains(svg, `translate(10, 30) scale(1)`) {
		t.Fatalf("expected first pip centered on (20, 40)")
	}
	if !strings.Contains(svg, `translate(40, 60) scale(2)`) {
		t.Fatalf("expected second pip centered on (60, 80)")
	}
}

func TestRender_InvalidSpec(t *testing.T) {
	cases := []struct {
		suit, rank, field string
	}{
		{"stars", "A", "suit"},
		{"hearts", "11", "rank"},
		{"", "A", "suit"},
		{"spades", "", "rank"},
	}
	for _, c := range cases {
		_, err := Render(c.suit, c.rank, nil)
		if err == nil {
			t.Fatalf("Render(%q, %q): expected error", c.suit, c.rank)
		}
		var spec *card.InvalidCardSpecError
		if !errors.As(err, &spec) {
			t.Fatalf("Render(%q, %q): expected *card.InvalidCardSpecError, got %T", c.suit, c.rank, err)
		}
		if spec.Field != c.field {
			t.Fatalf("Render(%q, %q): field = %q, want %q", c.suit, c.rank, spec.Field, c.field)
		}
	}
}

func TestDefaultLayout_IsACopy(t *testing.T) {
	l := DefaultLayout()
	l[card.Rank2][0].X = 1
	delete(l, card.Rank3)

	fresh := DefaultLayout()
	if fresh[card.Rank2][0].X != 40 {
		t.Fatalf("mutating a DefaultLayout copy leaked into the shared table")
	}
	if !reflect.DeepEqual(fresh[card.Rank3], defaultLayout[card.Rank3]) {
		t.Fatalf("deleting from a DefaultLayout copy leaked into the shared table")
	}
}

func TestDefaultLayout_PipCounts(t *testing.T) {
	l := DefaultLayout()
	for _, r := range card.Ranks() {
		want := 1
		if n, ok := r.Numeric(); ok {
			want = n
		}
		if got := len(l[r]); got != want {
			t.Fatalf("rank %s: %d placements, want %d", r, got, want)
		}
	}
}
