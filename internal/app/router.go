package app

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/linkup/internal/core"
	"github.com/dkeye/linkup/internal/domain"
	"github.com/dkeye/linkup/internal/metrics"
)

// MessageRouter delivers a chat message plus a derived notification to the
// recipient's live connection. Best-effort by design: the message is already
// durable in the persistence layer, so an offline recipient is a silent
// drop, never an error.
type MessageRouter struct {
	Registry *Registry
}

func (mr *MessageRouter) RouteMessage(msg domain.Message) {
	connID, ok := mr.Registry.Lookup(msg.RecipientID)
	if !ok {
		metrics.MessagesDropped.Inc()
		log.Debug().Str("module", "app.router").Str("recipient", string(msg.RecipientID)).Msg("recipient offline, message dropped")
		return
	}
	conn, ok := mr.Registry.Conn(connID)
	if !ok {
		metrics.MessagesDropped.Inc()
		return
	}

	mf, ok := frame(core.EvGetMessage, msg)
	if !ok {
		return
	}
	nf, ok := frame(core.EvGetNotification, domain.NewNotification(msg.SenderID, time.Now()))
	if !ok {
		return
	}

	// Same send buffer, so the notification always trails its message.
	if err := conn.TrySend(mf); err != nil {
		metrics.SendsDropped.Inc()
		log.Warn().Err(err).Str("module", "app.router").Str("conn", string(connID)).Msg("message send dropped")
		return
	}
	if err := conn.TrySend(nf); err != nil {
		metrics.SendsDropped.Inc()
		log.Warn().Err(err).Str("module", "app.router").Str("conn", string(connID)).Msg("notification send dropped")
		return
	}
	metrics.MessagesRelayed.Inc()
	log.Debug().Str("module", "app.router").Str("sender", string(msg.SenderID)).Str("recipient", string(msg.RecipientID)).Msg("message relayed")
}
