// Package layoutstore persists exported pip-layout documents. It is
// the save collaborator the editor emits committed layouts to, and
// the place the card API reads the active layout from.
package layoutstore

import (
	"context"
	"errors"

	"cardtable/facecard"
)

// ActiveLayoutName is the document the server renders cards with.
const ActiveLayoutName = "table"

var ErrLayoutNotFound = errors.New("layout not found")

// Service stores layout documents by name. Documents are validated on
// the way in and out, so a Load never returns a layout that would not
// re-import.
type Service interface {
	Save(ctx context.Context, name string, layout facecard.PipLayout) error
	Load(ctx context.Context, name string) (facecard.PipLayout, error)
	Close() error
}

// Saver adapts a Service to the editor's save collaborator interface,
// writing every commit under a fixed document name.
type Saver struct {
	svc  Service
	name string
}

func NewSaver(svc Service, name string) *Saver {
	return &Saver{svc: svc, name: name}
}

func (s *Saver) SaveLayout(layout facecard.PipLayout) error {
	return s.svc.Save(context.Background(), s.name, layout)
}
