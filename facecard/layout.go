package facecard

import (
	"encoding/json"
	"fmt"

	"cardtable/card"
)

// PipPlacement positions one pip on the 80x120 card canvas.
// Serialized as a 3-element tuple [x, y, scale].
type PipPlacement struct {
	X     float64
	Y     float64
	Scale float64
}

func (p PipPlacement) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Scale})
}

func (p *PipPlacement) UnmarshalJSON(data []byte) error {
	var tuple []float64
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 3 {
		return fmt.Errorf("pip placement must be a 3-element tuple, got %d elements", len(tuple))
	}
	if tuple[2] <= 0 {
		return fmt.Errorf("pip scale must be positive, got %v", tuple[2])
	}
	p.X, p.Y, p.Scale = tuple[0], tuple[1], tuple[2]
	return nil
}

// PipLayout maps each rank to its ordered pip placements. Placement
// order affects only rendering order. A rank missing from the map
// renders no pips; that is valid, not an error.
type PipLayout map[card.Rank][]PipPlacement

// Clone returns a deep copy. Editors mutate clones, never the shared
// default table.
func (l PipLayout) Clone() PipLayout {
	out := make(PipLayout, len(l))
	for r, pips := range l {
		out[r] = append([]PipPlacement(nil), pips...)
	}
	return out
}

// MarshalLayout serializes a layout to the transferable document form:
// an indented JSON object keyed by rank, each value an array of
// [x, y, scale] tuples.
func MarshalLayout(l PipLayout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// ParseLayout parses a layout document. The document must be a JSON
// object whose keys are ranks and whose values are arrays of
// [x, y, scale] tuples with positive scale; anything else fails with
// *InvalidLayoutDocumentError and no partial result.
func ParseLayout(doc []byte) (PipLayout, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, &InvalidLayoutDocumentError{Reason: err.Error()}
	}

	layout := make(PipLayout, len(raw))
	for key, val := range raw {
		rank, err := card.ParseRank(key)
		if err != nil {
			return nil, &InvalidLayoutDocumentError{
				Reason: fmt.Sprintf("unknown rank key %q", key),
			}
		}
		if _, dup := layout[rank]; dup {
			return nil, &InvalidLayoutDocumentError{
				Reason: fmt.Sprintf("duplicate rank key %q", key),
			}
		}
		var pips []PipPlacement
		if err := json.Unmarshal(val, &pips); err != nil {
			return nil, &InvalidLayoutDocumentError{
				Reason: fmt.Sprintf("rank %q: %v", key, err),
			}
		}
		layout[rank] = pips
	}
	return layout, nil
}
