// Package presence maintains, per table, the authoritative list of
// connected participants and their status. Each table runs as an
// actor: one goroutine owns the participant map and handles each
// event to completion, including its broadcast, before the next, so
// every subscriber observes snapshots in mutation order.
package presence

import (
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Participant is one live connection's record at a table.
type Participant struct {
	ConnID string
	UserID string
	Status Status
	Seat   int
}

// Event types for the table actor queue.
type EventType int

const (
	EventJoin EventType = iota
	EventSmokeBreak
	EventRejoin
	EventStartGame
	EventExit
	EventDisconnect
)

// Event is one message to the table actor. Malformed or out-of-order
// events (status change before join, unknown connection) are handled
// as no-ops, never as failures: the full snapshot re-broadcast after
// every mutation makes the view self-healing.
type Event struct {
	Type   EventType
	ConnID string
	UserID string

	// Response, when non-nil, receives the handling result. Used by
	// callers that need the mutation applied before proceeding.
	Response chan error
}

// BroadcastFunc delivers one snapshot to a set of connections. It is
// called synchronously from the actor goroutine, so implementations
// must not block on slow receivers.
type BroadcastFunc func(snap TableSnapshot, connIDs []string)

var ErrTableClosed = errors.New("table closed")

// Table owns the participant records for one table id. All mutation
// goes through the event channel; there is no other writer.
type Table struct {
	ID string

	mu           sync.RWMutex
	participants map[string]*Participant // connID -> record
	byUser       map[string]string       // userID -> connID, duplicate-join guard
	nextSeat     int
	gameStarted  bool
	closed       bool
	stopOnce     sync.Once

	events chan Event
	done   chan struct{}

	broadcast BroadcastFunc

	// onEmpty, when non-nil, is called from the actor goroutine after
	// a leave event removes the last participant.
	onEmpty func(tableID string)

	log *zap.SugaredLogger
}

// NewTable creates a table and starts its actor goroutine.
func NewTable(id string, broadcast BroadcastFunc, onEmpty func(tableID string), log *zap.SugaredLogger) *Table {
	t := &Table{
		ID:           id,
		participants: make(map[string]*Participant),
		byUser:       make(map[string]string),
		events:       make(chan Event, 256),
		done:         make(chan struct{}),
		broadcast:    broadcast,
		onEmpty:      onEmpty,
		log:          log,
	}
	go t.run()
	return t
}

// SubmitEvent queues an event for the actor. Returns ErrTableClosed
// after Close.
func (t *Table) SubmitEvent(e Event) error {
	select {
	case <-t.done:
		return ErrTableClosed
	default:
	}
	select {
	case t.events <- e:
		return nil
	case <-t.done:
		return ErrTableClosed
	}
}

// Close stops the actor. Idempotent.
func (t *Table) Close() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		t.closed = true
		t.mu.Unlock()
		close(t.done)
	})
}

// Snapshot returns the current table state, participants ordered by
// seat.
func (t *Table) Snapshot() TableSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshotLocked()
}

// Empty reports whether no participants remain.
func (t *Table) Empty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.participants) == 0
}

func (t *Table) run() {
	for {
		select {
		case e := <-t.events:
			err := t.handleEvent(e)
			if (e.Type == EventExit || e.Type == EventDisconnect) && t.onEmpty != nil && t.Empty() {
				t.onEmpty(t.ID)
			}
			if e.Response != nil {
				e.Response <- err
			}
		case <-t.done:
			t.log.Debugf("table %s: actor stopped", t.ID)
			return
		}
	}
}

func (t *Table) handleEvent(e Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrTableClosed
	}

	switch e.Type {
	case EventJoin:
		t.handleJoin(e.ConnID, e.UserID)
	case EventSmokeBreak:
		t.handleStatusChange(e.ConnID, StatusSmokeBreak)
	case EventRejoin:
		t.handleStatusChange(e.ConnID, StatusActive)
	case EventStartGame:
		t.handleStartGame(e.ConnID)
	case EventExit, EventDisconnect:
		t.handleLeave(e.ConnID)
	default:
		t.log.Debugf("table %s: dropping unknown event type %d", t.ID, e.Type)
	}
	return nil
}

func (t *Table) handleJoin(connID, userID string) {
	if _, joined := t.byUser[userID]; joined {
		// Duplicate-join guard: one record per participant id.
		t.log.Debugf("table %s: duplicate join for %s ignored", t.ID, userID)
		return
	}
	t.participants[connID] = &Participant{
		ConnID: connID,
		UserID: userID,
		Status: StatusPendingGameStart,
		Seat:   t.nextSeat,
	}
	t.byUser[userID] = connID
	// Seats are assigned in join order and never renumbered or reused.
	t.nextSeat++
	t.log.Infof("table %s: %s joined, seat=%d", t.ID, userID, t.nextSeat-1)
	t.broadcastLocked()
}

func (t *Table) handleStatusChange(connID string, status Status) {
	p := t.participants[connID]
	if p == nil {
		t.log.Debugf("table %s: status change from unknown connection %s ignored", t.ID, connID)
		return
	}
	p.Status = status
	t.broadcastLocked()
}

func (t *Table) handleStartGame(connID string) {
	if t.participants[connID] == nil {
		t.log.Debugf("table %s: start_game from unknown connection %s ignored", t.ID, connID)
		return
	}
	if t.gameStarted {
		// Idempotent: no state change, no duplicate broadcast.
		return
	}
	t.gameStarted = true
	t.log.Infof("table %s: game started", t.ID)
	t.broadcastLocked()
}

func (t *Table) handleLeave(connID string) {
	p := t.participants[connID]
	if p == nil {
		return
	}
	delete(t.participants, connID)
	delete(t.byUser, p.UserID)
	t.log.Infof("table %s: %s left, seat=%d", t.ID, p.UserID, p.Seat)
	t.broadcastLocked()
}

// broadcastLocked emits the current snapshot to every connection at
// the table, synchronously within the triggering event's handling.
func (t *Table) broadcastLocked() {
	if t.broadcast == nil {
		return
	}
	snap := t.snapshotLocked()
	connIDs := make([]string, 0, len(t.participants))
	for id := range t.participants {
		connIDs = append(connIDs, id)
	}
	sort.Strings(connIDs)
	t.broadcast(snap, connIDs)
}

func (t *Table) snapshotLocked() TableSnapshot {
	snap := TableSnapshot{
		TableID:     t.ID,
		GameStarted: t.gameStarted,
		Players:     make([]PlayerSnapshot, 0, len(t.participants)),
	}
	for _, p := range t.participants {
		snap.Players = append(snap.Players, PlayerSnapshot{
			ID:     p.UserID,
			Status: p.Status,
			Seat:   p.Seat,
		})
	}
	sort.Slice(snap.Players, func(i, j int) bool {
		return snap.Players[i].Seat < snap.Players[j].Seat
	})
	return snap
}
