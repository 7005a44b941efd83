package core

import (
	"encoding/json"

	"github.com/dkeye/linkup/internal/domain"
	"github.com/pion/webrtc/v4"
)

// Call signaling payloads. The coordinator is a stateless relay: every
// payload carries its own target connection id, resolved client-side from
// the presence set. Signal blobs stay opaque end to end.

type CallOffer struct {
	UserToCall ConnID          `json:"userToCall"`
	SignalData json.RawMessage `json:"signalData"`
	From       ConnID          `json:"from"`
	FromID     domain.UserID   `json:"fromId"`
	Name       string          `json:"name"`
	Type       domain.CallType `json:"type"`
}

type CallAnswer struct {
	To     ConnID          `json:"to"`
	Signal json.RawMessage `json:"signal"`
}

type CallEnd struct {
	To ConnID `json:"to"`
}

// IceCandidate is the only payload we decode structurally before
// forwarding; a candidate that does not parse is dropped at the boundary.
type IceCandidate struct {
	Target    ConnID                  `json:"target"`
	Candidate webrtc.ICECandidateInit `json:"candidate"`
	Sender    domain.UserID           `json:"sender"`
}
