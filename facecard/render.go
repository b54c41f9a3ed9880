package facecard

import (
	"fmt"
	"strconv"
	"strings"

	"cardtable/card"
)

// Card canvas size in SVG user units.
const (
	CanvasWidth  = 80
	CanvasHeight = 120
)

// Fixed vector paths for the suit glyphs, drawn in a 20x20 box
// centered on (10, 10). Invariant across calls.
var suitPaths = map[card.Suit]string{
	card.Hearts:   "M10,6 C10,0 0,0 0,6 C0,12 10,18 10,18 C10,18 20,12 20,6 C20,0 10,0 10,6 Z",
	card.Diamonds: "M10,0 L20,10 L10,20 L0,10 Z",
	card.Clubs:    "M10,18 C9,18 9,15 9,15 C4,16 3,11 6,10 C3,9 4,4 9,5 C9,5 9,2 10,2 C11,2 11,5 11,5 C16,4 17,9 14,10 C17,11 16,16 11,15 C11,15 11,18 10,18 Z",
	card.Spades:   "M10,0 C10,0 0,8 0,14 C0,16 2,20 10,18 C10,18 10,22 8,22 L12,22 C10,22 10,18 10,18 C18,20 20,16 20,14 C20,8 10,0 10,0 Z",
}

// Render maps (suit, rank, optional layout override) to a
// self-contained SVG string for the card face. Inputs are normalized
// case-insensitively and validated; unknown values fail with
// *card.InvalidCardSpecError. A nil layout uses the built-in default.
// A layout that omits the rank renders border and corner labels only.
//
// Pure and idempotent: identical inputs produce byte-identical output.
func Render(suit, rank string, layout PipLayout) (string, error) {
	s, err := card.ParseSuit(suit)
	if err != nil {
		return "", err
	}
	r, err := card.ParseRank(rank)
	if err != nil {
		return "", err
	}

	pips := defaultLayout[r]
	if layout != nil {
		// No merge with the default: an override that omits the rank
		// renders no pips.
		pips = layout[r]
	}

	color := string(s.Color())
	symbol := s.Symbol()

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 80 120" width="80" height="120">`)
	b.WriteString("\n")
	b.WriteString(`  <rect width="80" height="120" rx="10" ry="10" fill="white" stroke="black" stroke-width="1"/>`)
	b.WriteString("\n")

	// Rank and suit labels in the top-left corner, and the same pair
	// rotated 180 degrees into the bottom-right corner so the card
	// reads correctly from either orientation.
	fmt.Fprintf(&b, "  %s\n", cornerText(5, 20, color, "", string(r)))
	fmt.Fprintf(&b, "  %s\n", cornerText(5, 35, color, "", symbol))
	fmt.Fprintf(&b, "  %s\n", cornerText(75, 120, color, `rotate(180 75 120)`, string(r)))
	fmt.Fprintf(&b, "  %s\n", cornerText(75, 105, color, `rotate(180 75 105)`, symbol))

	if _, numeric := r.Numeric(); numeric {
		path := suitPaths[s]
		for _, p := range pips {
			// The glyph box is 20x20 centered on (10, 10); translate so
			// the scaled glyph is centered on the placement point.
			fmt.Fprintf(&b, `  <path d="%s" fill="%s" transform="translate(%s, %s) scale(%s)"/>`,
				path, color,
				fnum(p.X-10*p.Scale), fnum(p.Y-10*p.Scale), fnum(p.Scale))
			b.WriteString("\n")
		}
	} else {
		for _, p := range pips {
			fmt.Fprintf(&b, `  <circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="1.5"/>`,
				fnum(p.X), fnum(p.Y), fnum(10*p.Scale), color)
			b.WriteString("\n")
			fmt.Fprintf(&b, `  <text x="%s" y="%s" font-family="Arial, sans-serif" font-size="%s" fill="%s" font-weight="bold" text-anchor="middle" dominant-baseline="central">%s</text>`,
				fnum(p.X), fnum(p.Y), fnum(12*p.Scale), color, string(r))
			b.WriteString("\n")
		}
	}

	b.WriteString("</svg>")
	return b.String(), nil
}

func cornerText(x, y int, color, transform, content string) string {
	attrs := fmt.Sprintf(`x="%d" y="%d" font-family="Arial, sans-serif" font-size="14" fill="%s" font-weight="bold"`, x, y, color)
	if transform != "" {
		attrs += fmt.Sprintf(` text-anchor="end" transform="%s"`, transform)
	}
	return fmt.Sprintf("<text %s>%s</text>", attrs, content)
}

// fnum formats coordinates the shortest way that round-trips, so
// equal placements always render to equal markup.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
