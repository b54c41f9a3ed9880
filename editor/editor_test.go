package editor

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"cardtable/card"
	"cardtable/facecard"
)

type captureSaver struct {
	saved []facecard.PipLayout
}

func (s *captureSaver) SaveLayout(l facecard.PipLayout) error {
	s.saved = append(s.saved, l)
	return nil
}

func TestNew_SeedsFromFirstNumericRank(t *testing.T) {
	e := New(nil)
	if e.Rank() != card.Rank2 {
		t.Fatalf("initial rank = %s, want 2", e.Rank())
	}
	if e.Scale() != 1.5 {
		t.Fatalf("initial scale = %v, want 1.5 (first placement of rank 2)", e.Scale())
	}
	if len(e.Pips()) != 2 {
		t.Fatalf("initial pip count = %d, want 2", len(e.Pips()))
	}
	if e.Preview() == "" {
		t.Fatalf("expected an initial preview render")
	}
}

func TestCommit_ScaleChangeLeavesOtherRanksUntouched(t *testing.T) {
	saver := &captureSaver{}
	e := New(saver)

	before := e.Layout()
	if err := e.SelectRank("5"); err != nil {
		t.Fatalf("SelectRank err: %v", err)
	}
	if err := e.SetScale(2.4); err != nil {
		t.Fatalf("SetScale err: %v", err)
	}
	if err := e.Commit(); err != nil {
		t.Fatalf("Commit err: %v", err)
	}

	after := e.Layout()
	for _, r := range card.Ranks() {
		if r == card.Rank5 {
			continue
		}
		if !reflect.DeepEqual(before[r], after[r]) {
			t.Fatalf("rank %s changed by committing rank 5", r)
		}
	}
	for i, p := range after[card.Rank5] {
		if p.Scale != 2.4 {
			t.Fatalf("pip %d: scale = %v, want 2.4", i, p.Scale)
		}
	}
	if len(saver.saved) != 1 {
		t.Fatalf("expected 1 save emission, got %d", len(saver.saved))
	}
}

func TestSelectRank_ReseedsScale(t *testing.T) {
	e := New(nil)
	if err := e.SetScale(3); err != nil {
		t.Fatalf("SetScale err: %v", err)
	}

	if err := e.SelectRank("9"); err != nil {
		t.Fatalf("SelectRank err: %v", err)
	}
	if e.Scale() != 1.1 {
		t.Fatalf("scale after selecting rank 9 = %v, want 1.1", e.Scale())
	}

	// Rank 2 was never committed, so its placements still carry the
	// default scale.
	if err := e.SelectRank("2"); err != nil {
		t.Fatalf("SelectRank err: %v", err)
	}
	if e.Scale() != 1.5 {
		t.Fatalf("scale after returning to rank 2 = %v, want 1.5", e.Scale())
	}
}

func TestSelectRank_EmptyRankUsesDefaultScale(t *testing.T) {
	e := New(nil)
	if err := e.Import([]byte(`{"2": [[40, 30, 1.5]]}`)); err != nil {
		t.Fatalf("Import err: %v", err)
	}
	if err := e.SelectRank("K"); err != nil {
		t.Fatalf("SelectRank err: %v", err)
	}
	if e.Scale() != DefaultScale {
		t.Fatalf("scale for empty rank = %v, want %v", e.Scale(), DefaultScale)
	}
	if len(e.Pips()) != 0 {
		t.Fatalf("expected no pips for rank absent from imported layout")
	}
}

func TestAddRemovePip(t *testing.T) {
	e := New(nil)
	e.AddPip()
	pips := e.Pips()
	if len(pips) != 3 {
		t.Fatalf("pip count after add = %d, want 3", len(pips))
	}
	added := pips[2]
	if added.X != 40 || added.Y != 60 || added.Scale != e.Scale() {
		t.Fatalf("added pip = %+v, want center at current scale", added)
	}

	if err := e.RemovePip(0); err != nil {
		t.Fatalf("RemovePip err: %v", err)
	}
	if len(e.Pips()) != 2 {
		t.Fatalf("pip count after remove = %d, want 2", len(e.Pips()))
	}
	if err := e.RemovePip(7); err == nil {
		t.Fatalf("expected error removing out-of-range index")
	}
}

func TestSetScale_RewritesEveryWorkingPip(t *testing.T) {
	e := New(nil)
	if err := e.SetScale(2.2); err != nil {
		t.Fatalf("SetScale err: %v", err)
	}
	for i, p := range e.Pips() {
		if p.Scale != 2.2 {
			t.Fatalf("pip %d: scale = %v, want 2.2 before any commit", i, p.Scale)
		}
	}
	if err := e.SetScale(0); err == nil {
		t.Fatalf("expected error for non-positive scale")
	}
}

func TestSetPipPosition_Clamps(t *testing.T) {
	e := New(nil)
	if err := e.SetPipX(0, 500); err != nil {
		t.Fatalf("SetPipX err: %v", err)
	}
	if err := e.SetPipY(0, -5); err != nil {
		t.Fatalf("SetPipY err: %v", err)
	}
	p := e.Pips()[0]
	if p.X != facecard.CanvasWidth || p.Y != 0 {
		t.Fatalf("pip = %+v, want clamped to canvas bounds", p)
	}
}

func TestImportExport_RoundTrip(t *testing.T) {
	e := New(nil)
	doc, err := e.Export()
	if err != nil {
		t.Fatalf("Export err: %v", err)
	}

	other := New(nil)
	if err := other.Import(doc); err != nil {
		t.Fatalf("Import err: %v", err)
	}
	doc2, err := other.Export()
	if err != nil {
		t.Fatalf("Export err: %v", err)
	}
	if string(doc) != string(doc2) {
		t.Fatalf("import(export(L)) changed the document")
	}
	if !reflect.DeepEqual(e.Layout(), other.Layout()) {
		t.Fatalf("import(export(L)) changed the layout")
	}
}

func TestImport_InvalidLeavesWorkingUnchanged(t *testing.T) {
	e := New(nil)
	before := e.Layout()

	err := e.Import([]byte(`{"2": [[40, 30]]}`))
	if err == nil {
		t.Fatalf("expected error for malformed document")
	}
	var bad *facecard.InvalidLayoutDocumentError
	if !errors.As(err, &bad) {
		t.Fatalf("expected *facecard.InvalidLayoutDocumentError, got %T", err)
	}
	if !reflect.DeepEqual(before, e.Layout()) {
		t.Fatalf("failed import mutated the working layout")
	}
}

func TestReset_DiscardsEdits(t *testing.T) {
	e := New(nil)
	if err := e.SetScale(2.9); err != nil {
		t.Fatalf("SetScale err: %v", err)
	}
	if err := e.Commit(); err != nil {
		t.Fatalf("Commit err: %v", err)
	}

	e.Reset()
	if !reflect.DeepEqual(e.Layout(), facecard.DefaultLayout()) {
		t.Fatalf("reset did not restore the default layout")
	}
	if e.Scale() != 1.5 {
		t.Fatalf("scale after reset = %v, want 1.5", e.Scale())
	}
}

func TestEditsDrivePreview(t *testing.T) {
	e := New(nil)
	if !strings.Contains(e.Preview(), "♠") {
		t.Fatalf("preview must use the fixed spades suit")
	}

	before := e.Preview()
	e.AddPip()
	if e.Preview() == before {
		t.Fatalf("expected preview to re-render after an edit")
	}
}
