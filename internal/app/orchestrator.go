package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/linkup/internal/core"
	"github.com/dkeye/linkup/internal/domain"
	"github.com/dkeye/linkup/internal/metrics"
)

// Orchestrator is the connection lifecycle manager. It is the only writer
// of the presence set and the trigger for every cascading cleanup.
//
// Per-connection states: Connected (anonymous) -> Announced -> Disconnected.
type Orchestrator struct {
	Registry *Registry
	Presence *PresenceBroadcaster
	Router   *MessageRouter
	Calls    *CallCoordinator
}

func NewOrchestrator() *Orchestrator {
	reg := NewRegistry()
	return &Orchestrator{
		Registry: reg,
		Presence: &PresenceBroadcaster{Registry: reg},
		Router:   &MessageRouter{Registry: reg},
		Calls:    &CallCoordinator{Registry: reg},
	}
}

// OnConnect binds the fresh connection and hands the client its transport
// handle. No presence mutation yet; that waits for addNewUser.
func (o *Orchestrator) OnConnect(id core.ConnID, conn core.SignalConnection, cancel context.CancelFunc) {
	o.Registry.Bind(id, conn, cancel)
	metrics.ConnectionsLive.Inc()

	ev := struct {
		ConnID core.ConnID `json:"connectionId"`
	}{ConnID: id}
	if f, ok := frame(core.EvConnected, ev); ok {
		if err := conn.TrySend(f); err != nil {
			metrics.SendsDropped.Inc()
		}
	}
	log.Info().Str("module", "app.lifecycle").Str("conn", string(id)).Msg("connection opened")
}

// OnAnnounce binds the connection to a user identity and fans the updated
// presence set out to everyone.
func (o *Orchestrator) OnAnnounce(id core.ConnID, user domain.UserID) {
	if err := domain.ValidateUserID(user); err != nil {
		log.Warn().Err(err).Str("module", "app.lifecycle").Str("conn", string(id)).Msg("announce rejected")
		return
	}
	if _, ok := o.Registry.Conn(id); !ok {
		// Raced its own disconnect; nothing to register against.
		return
	}
	o.Registry.Register(user, id)
	metrics.UsersOnline.Set(float64(len(o.Registry.Snapshot())))
	o.Presence.BroadcastPresence()
}

// OnDisconnect tears the connection down: presence entry out, updated set
// re-broadcast, and a coarse callEnded to everyone still connected.
// Safe to call more than once per connection.
func (o *Orchestrator) OnDisconnect(id core.ConnID) {
	if !o.Registry.Unbind(id) {
		return
	}
	metrics.ConnectionsLive.Dec()
	o.Registry.Unregister(id)
	metrics.UsersOnline.Set(float64(len(o.Registry.Snapshot())))
	o.Presence.BroadcastPresence()
	o.Calls.BroadcastCallEnded(id)
	log.Info().Str("module", "app.lifecycle").Str("conn", string(id)).Msg("connection closed")
}
