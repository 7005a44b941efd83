package core

import "github.com/dkeye/linkup/internal/domain"

// Frame is one serialized protocol envelope.
type Frame []byte

// ConnID is the transport-assigned handle of one live connection.
// Minted at upgrade time, destroyed with the connection, never reused.
type ConnID string

// SignalConnection abstracts a client transport endpoint.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// PresenceEntry pairs an announced user with its current live connection.
// At most one entry per user exists at any time.
type PresenceEntry struct {
	UserID domain.UserID `json:"userId"`
	ConnID ConnID        `json:"connectionId"`
}
