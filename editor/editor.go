// Package editor drives one pip-layout authoring session: an operator
// adjusts the placement list for one rank at a time, sees a live SVG
// preview after every edit, and commits ranks into a working layout
// that can be exported, imported, or handed to a save collaborator.
package editor

import (
	"fmt"

	"cardtable/card"
	"cardtable/facecard"
)

const (
	// Fallback global scale when the selected rank has no placements.
	DefaultScale = 1.2

	// New pips appear centered on the canvas.
	defaultPipX = 40
	defaultPipY = 60
)

// PreviewSuit is the fixed suit used for live previews.
const PreviewSuit = card.Spades

// Saver receives the full working layout on every commit. Persistence
// is the collaborator's concern; the editor only emits.
type Saver interface {
	SaveLayout(layout facecard.PipLayout) error
}

// Editor holds the state of one authoring session. It has a single
// logical owner and is not safe for concurrent use; concurrent
// sessions against the same saved layout are last-writer-wins at the
// save boundary.
type Editor struct {
	saver   Saver
	rank    card.Rank
	working facecard.PipLayout
	pips    []facecard.PipPlacement
	scale   float64
	preview string
}

// New starts a session on the built-in default layout with the first
// numeric rank selected.
func New(saver Saver) *Editor {
	e := &Editor{
		saver:   saver,
		rank:    card.Rank2,
		working: facecard.DefaultLayout(),
	}
	e.seedFromRank()
	e.rerender()
	return e
}

// Rank returns the currently selected rank.
func (e *Editor) Rank() card.Rank { return e.rank }

// Scale returns the global scale applied to the selected rank's pips.
func (e *Editor) Scale() float64 { return e.scale }

// Pips returns a copy of the selected rank's working placement list.
func (e *Editor) Pips() []facecard.PipPlacement {
	return append([]facecard.PipPlacement(nil), e.pips...)
}

// Preview returns the SVG rendered after the most recent edit.
func (e *Editor) Preview() string { return e.preview }

// Layout returns a copy of the working layout. In-progress edits on
// the selected rank are not included until Commit writes them.
func (e *Editor) Layout() facecard.PipLayout {
	return e.working.Clone()
}

// SelectRank switches the active rank. The global scale control is
// re-seeded from the first placement of that rank's current layout
// (or the fixed default if it has none); no other rank's data changes.
func (e *Editor) SelectRank(rank string) error {
	r, err := card.ParseRank(rank)
	if err != nil {
		return err
	}
	e.rank = r
	e.seedFromRank()
	e.rerender()
	return nil
}

// AddPip appends a placement at the default center position using the
// current global scale.
func (e *Editor) AddPip() {
	e.pips = append(e.pips, facecard.PipPlacement{X: defaultPipX, Y: defaultPipY, Scale: e.scale})
	e.rerender()
}

// RemovePip removes the placement at index i.
func (e *Editor) RemovePip(i int) error {
	if i < 0 || i >= len(e.pips) {
		return fmt.Errorf("no pip at index %d", i)
	}
	e.pips = append(e.pips[:i], e.pips[i+1:]...)
	e.rerender()
	return nil
}

// SetPipX moves the placement at index i horizontally, clamped to the
// canvas.
func (e *Editor) SetPipX(i int, x float64) error {
	if i < 0 || i >= len(e.pips) {
		return fmt.Errorf("no pip at index %d", i)
	}
	e.pips[i].X = clamp(x, 0, facecard.CanvasWidth)
	e.rerender()
	return nil
}

// SetPipY moves the placement at index i vertically, clamped to the
// canvas.
func (e *Editor) SetPipY(i int, y float64) error {
	if i < 0 || i >= len(e.pips) {
		return fmt.Errorf("no pip at index %d", i)
	}
	e.pips[i].Y = clamp(y, 0, facecard.CanvasHeight)
	e.rerender()
	return nil
}

// SetScale changes the global scale and rewrites the scale field of
// every working placement for the active rank. Scale is never edited
// per pip.
func (e *Editor) SetScale(scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", scale)
	}
	e.scale = scale
	for i := range e.pips {
		e.pips[i].Scale = scale
	}
	e.rerender()
	return nil
}

// Commit writes the working placement list (global scale applied)
// into the layout under the active rank and emits the updated layout
// to the save collaborator, if any.
func (e *Editor) Commit() error {
	e.working[e.rank] = e.scaledPips()
	if e.saver == nil {
		return nil
	}
	return e.saver.SaveLayout(e.working.Clone())
}

// Reset discards all edits and reloads the default layout.
func (e *Editor) Reset() {
	e.working = facecard.DefaultLayout()
	e.seedFromRank()
	e.rerender()
}

// Import replaces the entire working layout from a serialized
// document. On failure the working layout is left unchanged.
func (e *Editor) Import(doc []byte) error {
	layout, err := facecard.ParseLayout(doc)
	if err != nil {
		return err
	}
	e.working = layout
	e.seedFromRank()
	e.rerender()
	return nil
}

// Export serializes the working layout to the transferable document
// form. Uncommitted edits on the selected rank are not included, so
// Import(Export()) always reproduces the working layout exactly.
func (e *Editor) Export() ([]byte, error) {
	return facecard.MarshalLayout(e.working)
}

func (e *Editor) seedFromRank() {
	e.pips = append([]facecard.PipPlacement(nil), e.working[e.rank]...)
	if len(e.pips) > 0 {
		e.scale = e.pips[0].Scale
	} else {
		e.scale = DefaultScale
	}
}

func (e *Editor) scaledPips() []facecard.PipPlacement {
	out := make([]facecard.PipPlacement, len(e.pips))
	for i, p := range e.pips {
		out[i] = facecard.PipPlacement{X: p.X, Y: p.Y, Scale: e.scale}
	}
	return out
}

// rerender is the explicit edit -> preview pipeline step: every
// mutation above calls it once, and it is the only place the renderer
// is invoked.
func (e *Editor) rerender() {
	override := facecard.PipLayout{e.rank: e.scaledPips()}
	svg, err := facecard.Render(string(PreviewSuit), string(e.rank), override)
	if err != nil {
		// Rank and suit are already validated; keep the last preview.
		return
	}
	e.preview = svg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
