// Package wire defines the presence protocol's event vocabulary as a
// closed set of typed messages and converts them to and from the JSON
// frames exchanged over the WebSocket. Payload shapes are validated
// here, at the boundary, before anything is dispatched.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"cardtable/internal/presence"
)

// Client -> server event names.
const (
	EventJoinTable         = "join_table"
	EventRequestSmokeBreak = "request_smoke_break"
	EventRequestRejoin     = "request_rejoin"
	EventStartGame         = "start_game"
	EventExitGame          = "exit_game"
	EventPong              = "pong"
)

// Server -> client event names.
const (
	EventGameStateUpdate = "game_state_update"
	EventPing            = "ping"
	EventError           = "error"
)

var (
	ErrUnknownEvent   = errors.New("unknown event type")
	ErrMalformedEvent = errors.New("malformed event payload")
)

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ClientMessage is the closed union of events a client may send.
type ClientMessage interface {
	clientMessage()
}

// JoinTable seats a participant at a table.
type JoinTable struct {
	TableID string `json:"tableId"`
	UserID  string `json:"userId"`
}

// RequestSmokeBreak moves the caller to smoke_break status.
type RequestSmokeBreak struct{}

// RequestRejoin moves the caller back to active status.
type RequestRejoin struct{}

// StartGame flips the caller's table to started.
type StartGame struct{}

// ExitGame removes the caller from its table while keeping the
// connection open.
type ExitGame struct{}

// Pong answers a liveness probe.
type Pong struct{}

func (JoinTable) clientMessage()         {}
func (RequestSmokeBreak) clientMessage() {}
func (RequestRejoin) clientMessage()     {}
func (StartGame) clientMessage()         {}
func (ExitGame) clientMessage()          {}
func (Pong) clientMessage()              {}

// DecodeClient parses one inbound frame into its typed message.
// Unknown event names fail with ErrUnknownEvent; structurally invalid
// payloads fail with an error wrapping ErrMalformedEvent. Callers
// treat both as no-ops per the protocol's failure semantics.
func DecodeClient(data []byte) (ClientMessage, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	switch env.Type {
	case EventJoinTable:
		var m JoinTable
		if len(env.Data) == 0 {
			return nil, fmt.Errorf("%w: join_table requires a payload", ErrMalformedEvent)
		}
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		if m.TableID == "" || m.UserID == "" {
			return nil, fmt.Errorf("%w: join_table requires tableId and userId", ErrMalformedEvent)
		}
		return m, nil
	case EventRequestSmokeBreak:
		return RequestSmokeBreak{}, nil
	case EventRequestRejoin:
		return RequestRejoin{}, nil
	case EventStartGame:
		return StartGame{}, nil
	case EventExitGame:
		return ExitGame{}, nil
	case EventPong:
		return Pong{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, env.Type)
	}
}

// ErrorPayload is the body of a server error event. Diagnostics only;
// the connection stays up.
type ErrorPayload struct {
	Message string `json:"message"`
}

// EncodeGameState wraps a table snapshot in a game_state_update frame.
func EncodeGameState(snap presence.TableSnapshot) ([]byte, error) {
	return encodeServer(EventGameStateUpdate, snap)
}

// EncodePing builds a liveness probe frame.
func EncodePing() ([]byte, error) {
	return encodeServer(EventPing, nil)
}

// EncodeError builds an error frame.
func EncodeError(message string) ([]byte, error) {
	return encodeServer(EventError, ErrorPayload{Message: message})
}

func encodeServer(eventType string, payload any) ([]byte, error) {
	env := envelope{Type: eventType}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Data = data
	}
	return json.Marshal(env)
}
