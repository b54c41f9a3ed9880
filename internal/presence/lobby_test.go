package presence

import (
	"testing"

	"go.uber.org/zap"
)

func TestLobby_GetOrCreateReturnsSameTable(t *testing.T) {
	l := NewLobby(func(TableSnapshot, []string) {}, zap.NewNop().Sugar())
	defer l.Shutdown()

	a := l.GetOrCreate("table-1")
	b := l.GetOrCreate("table-1")
	if a != b {
		t.Fatalf("expected the same table instance for one id")
	}
	if l.Get("table-1") != a {
		t.Fatalf("Get returned a different table")
	}
	if l.Get("table-2") != nil {
		t.Fatalf("Get must return nil for an unknown table")
	}
}

func TestLobby_RemovesTableWhenLastParticipantLeaves(t *testing.T) {
	l := NewLobby(func(TableSnapshot, []string) {}, zap.NewNop().Sugar())
	defer l.Shutdown()

	tbl := l.GetOrCreate("t")
	resp := make(chan error, 1)
	if err := tbl.SubmitEvent(Event{Type: EventJoin, ConnID: "c1", UserID: "u1", Response: resp}); err != nil {
		t.Fatalf("SubmitEvent join err: %v", err)
	}
	<-resp

	resp = make(chan error, 1)
	if err := tbl.SubmitEvent(Event{Type: EventDisconnect, ConnID: "c1", Response: resp}); err != nil {
		t.Fatalf("SubmitEvent disconnect err: %v", err)
	}
	<-resp

	if l.Get("t") != nil {
		t.Fatalf("empty table must be removed from the lobby")
	}
	if err := tbl.SubmitEvent(Event{Type: EventJoin, ConnID: "c2", UserID: "u2"}); err != ErrTableClosed {
		t.Fatalf("removed table must reject events, got err = %v", err)
	}
}

func TestLobby_TableWithParticipantsSurvivesALeave(t *testing.T) {
	l := NewLobby(func(TableSnapshot, []string) {}, zap.NewNop().Sugar())
	defer l.Shutdown()

	tbl := l.GetOrCreate("t")
	for i, id := range []string{"u1", "u2"} {
		resp := make(chan error, 1)
		connID := []string{"c1", "c2"}[i]
		if err := tbl.SubmitEvent(Event{Type: EventJoin, ConnID: connID, UserID: id, Response: resp}); err != nil {
			t.Fatalf("SubmitEvent join err: %v", err)
		}
		<-resp
	}

	resp := make(chan error, 1)
	if err := tbl.SubmitEvent(Event{Type: EventExit, ConnID: "c1", Response: resp}); err != nil {
		t.Fatalf("SubmitEvent exit err: %v", err)
	}
	<-resp

	if l.Get("t") != tbl {
		t.Fatalf("table with remaining participants must stay registered")
	}
}

func TestLobby_ListTables(t *testing.T) {
	l := NewLobby(func(TableSnapshot, []string) {}, zap.NewNop().Sugar())
	defer l.Shutdown()

	l.GetOrCreate("a")
	l.GetOrCreate("b")

	ids := l.ListTables()
	if len(ids) != 2 {
		t.Fatalf("ListTables = %v, want 2 ids", ids)
	}
}
