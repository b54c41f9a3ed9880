// Package gateway owns the WebSocket side of the presence protocol:
// connection lifecycle, frame pumps, liveness probing, and dispatch
// of decoded events into table actors.
package gateway

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"cardtable/internal/presence"
	"cardtable/internal/wire"
)

const (
	readLimit     = 1 << 16
	readTimeout   = 60 * time.Second
	writeTimeout  = 10 * time.Second
	sendQueueSize = 64

	// Liveness defaults: a ping frame every pingInterval; a connection
	// that misses maxMissedPongs consecutive probes is dropped, taking
	// the same path as a transport-level close.
	pingInterval   = 2 * time.Second
	maxMissedPongs = int32(3)
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: Restrict in production
	},
}

// Connection is one WebSocket client.
type Connection struct {
	ID   string
	conn *websocket.Conn
	send chan []byte
	gw   *Gateway

	// Table the connection joined; touched only from readPump.
	table *presence.Table

	missedPongs atomic.Int32
}

// Gateway tracks live connections and routes their events into the
// lobby's tables.
type Gateway struct {
	mu          sync.RWMutex
	connections map[string]*Connection
	lobby       *presence.Lobby
	log         *zap.SugaredLogger

	// Liveness settings, fixed before the first connection.
	pingInterval   time.Duration
	maxMissedPongs int32
}

// New creates a gateway with its own lobby.
func New(log *zap.SugaredLogger) *Gateway {
	g := &Gateway{
		connections:    make(map[string]*Connection),
		log:            log,
		pingInterval:   pingInterval,
		maxMissedPongs: maxMissedPongs,
	}
	g.lobby = presence.NewLobby(g.broadcastSnapshot, log)
	return g
}

// Lobby exposes the table registry for shutdown wiring.
func (g *Gateway) Lobby() *presence.Lobby {
	return g.lobby
}

// HandleWebSocket upgrades the request and starts the frame pumps.
func (g *Gateway) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warnf("gateway: upgrade error: %v", err)
		return
	}

	c := &Connection{
		ID:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendQueueSize),
		gw:   g,
	}

	g.mu.Lock()
	g.connections[c.ID] = c
	total := len(g.connections)
	g.mu.Unlock()
	g.log.Infof("gateway: client connected: %s, total: %d", c.ID, total)

	go c.readPump()
	go c.writePump()
}

func (c *Connection) readPump() {
	defer func() {
		c.gw.removeConnection(c)
		if c.table != nil {
			// Transport loss is a normal transition, not an error: the
			// participant is removed and the table re-broadcasts.
			_ = c.table.SubmitEvent(presence.Event{Type: presence.EventDisconnect, ConnID: c.ID})
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	c.conn.SetReadDeadline(time.Now().Add(readTimeout))

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.gw.log.Warnf("gateway: read error on %s: %v", c.ID, err)
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(readTimeout))

		msg, err := wire.DecodeClient(data)
		if err != nil {
			// Malformed and unknown events are no-ops, logged for
			// diagnostics and reported back, never fatal.
			c.gw.log.Debugf("gateway: dropping frame from %s: %v", c.ID, err)
			c.enqueueError(err.Error())
			continue
		}
		c.dispatch(msg)
	}
}

func (c *Connection) dispatch(msg wire.ClientMessage) {
	switch m := msg.(type) {
	case wire.JoinTable:
		if c.table != nil {
			c.gw.log.Debugf("gateway: %s already at table %s, join ignored", c.ID, c.table.ID)
			return
		}
		t := c.gw.lobby.GetOrCreate(m.TableID)
		c.table = t
		_ = t.SubmitEvent(presence.Event{Type: presence.EventJoin, ConnID: c.ID, UserID: m.UserID})
	case wire.RequestSmokeBreak:
		c.submitToTable(presence.EventSmokeBreak)
	case wire.RequestRejoin:
		c.submitToTable(presence.EventRejoin)
	case wire.StartGame:
		c.submitToTable(presence.EventStartGame)
	case wire.ExitGame:
		c.submitToTable(presence.EventExit)
		c.table = nil
	case wire.Pong:
		c.missedPongs.Store(0)
	default:
		c.gw.log.Debugf("gateway: unhandled message %T from %s", m, c.ID)
	}
}

func (c *Connection) submitToTable(eventType presence.EventType) {
	if c.table == nil {
		// Event before join: protocol no-op.
		return
	}
	_ = c.table.SubmitEvent(presence.Event{Type: eventType, ConnID: c.ID})
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.gw.pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			if c.missedPongs.Add(1) > c.gw.maxMissedPongs {
				c.gw.log.Infof("gateway: %s missed %d pongs, dropping", c.ID, c.gw.maxMissedPongs)
				return
			}
			ping, err := wire.EncodePing()
			if err != nil {
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, ping); err != nil {
				return
			}
		}
	}
}

// enqueue queues a frame for delivery, dropping it if the client
// cannot keep up; the next snapshot supersedes anything dropped.
func (c *Connection) enqueue(data []byte) {
	select {
	case c.send <- data:
	default:
	}
}

func (c *Connection) enqueueError(message string) {
	frame, err := wire.EncodeError(message)
	if err != nil {
		return
	}
	c.enqueue(frame)
}

func (g *Gateway) removeConnection(c *Connection) {
	g.mu.Lock()
	delete(g.connections, c.ID)
	total := len(g.connections)
	g.mu.Unlock()
	g.log.Infof("gateway: client disconnected: %s, total: %d", c.ID, total)
}

// broadcastSnapshot is the lobby's BroadcastFunc: one encode per
// mutation, then a non-blocking enqueue per subscriber.
func (g *Gateway) broadcastSnapshot(snap presence.TableSnapshot, connIDs []string) {
	data, err := wire.EncodeGameState(snap)
	if err != nil {
		g.log.Errorf("gateway: encode snapshot for table %s: %v", snap.TableID, err)
		return
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, id := range connIDs {
		if c := g.connections[id]; c != nil {
			c.enqueue(data)
		}
	}
}
