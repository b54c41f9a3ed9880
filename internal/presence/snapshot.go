package presence

// Status of one live participant. Transitions are driven only by
// events from that participant's own connection.
type Status string

const (
	StatusPendingGameStart Status = "pending_game_start"
	StatusActive           Status = "active"
	StatusSmokeBreak       Status = "smoke_break"
)

// PlayerSnapshot is one participant inside a TableSnapshot.
type PlayerSnapshot struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
	Seat   int    `json:"seat"`
}

// TableSnapshot is the full authoritative state of a table at a point
// in time. It is broadcast whole to every participant after each
// mutation; clients replace their local view rather than patching it.
type TableSnapshot struct {
	TableID     string           `json:"tableId"`
	GameStarted bool             `json:"gameStarted"`
	Players     []PlayerSnapshot `json:"players"`
}
