package presence

import (
	"sync"

	"go.uber.org/zap"
)

// Lobby is the registry of live tables. Tables are created on first
// join and share the lobby's broadcast function.
type Lobby struct {
	mu     sync.RWMutex
	tables map[string]*Table

	broadcast BroadcastFunc
	log       *zap.SugaredLogger
}

func NewLobby(broadcast BroadcastFunc, log *zap.SugaredLogger) *Lobby {
	return &Lobby{
		tables:    make(map[string]*Table),
		broadcast: broadcast,
		log:       log,
	}
}

// GetOrCreate returns the table with the given id, creating and
// starting it if needed.
func (l *Lobby) GetOrCreate(tableID string) *Table {
	l.mu.RLock()
	t := l.tables[tableID]
	l.mu.RUnlock()
	if t != nil {
		return t
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if t := l.tables[tableID]; t != nil {
		return t
	}
	t = NewTable(tableID, l.broadcast, l.removeEmptyTable, l.log)
	l.tables[tableID] = t
	l.log.Infof("lobby: created table %s", tableID)
	return t
}

// removeEmptyTable drops a table once its last participant leaves, so
// a long-lived process does not accumulate dead tables. Called from
// the table's own actor goroutine.
func (l *Lobby) removeEmptyTable(tableID string) {
	l.mu.Lock()
	t := l.tables[tableID]
	if t == nil || !t.Empty() {
		l.mu.Unlock()
		return
	}
	delete(l.tables, tableID)
	l.mu.Unlock()

	t.Close()
	l.log.Infof("lobby: removed empty table %s", tableID)
}

// Get returns the table with the given id, or nil.
func (l *Lobby) Get(tableID string) *Table {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tables[tableID]
}

// ListTables returns the ids of all live tables.
func (l *Lobby) ListTables() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, 0, len(l.tables))
	for id := range l.tables {
		ids = append(ids, id)
	}
	return ids
}

// Shutdown stops every table actor.
func (l *Lobby) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range l.tables {
		t.Close()
	}
}
