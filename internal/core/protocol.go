package core

import "encoding/json"

// Envelope is the wire frame: an event name plus its raw payload.
// The payload is kept raw so call signal blobs pass through untouched.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Client to server events.
const (
	EvAddNewUser   = "addNewUser"
	EvSendMessage  = "sendMessage"
	EvCallUser     = "callUser"
	EvAnswerCall   = "answerCall"
	EvEndCall      = "endCall"
	EvICECandidate = "ICEcandidate"
	EvPing         = "ping"
)

// Server to client events.
const (
	EvConnected       = "connected"
	EvOnlineUsers     = "getOnlineUsers"
	EvGetMessage      = "getMessage"
	EvGetNotification = "getNotification"
	EvCallIncoming    = "callIncoming"
	EvCallAccepted    = "callAccepted"
	EvCallEnded       = "callEnded"
	EvPong            = "pong"
)
