package app

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/linkup/internal/core"
	"github.com/dkeye/linkup/internal/metrics"
)

// PresenceBroadcaster fans the full presence snapshot out to every live
// connection. Fire-and-forget: a slow client just loses frames and gets
// cleaned up by its own disconnect, never by the broadcaster.
type PresenceBroadcaster struct {
	Registry *Registry
}

func (b *PresenceBroadcaster) BroadcastPresence() {
	snap := b.Registry.Snapshot()
	f, ok := frame(core.EvOnlineUsers, snap)
	if !ok {
		return
	}

	sent, dropped := 0, 0
	for _, c := range b.Registry.Connections() {
		if err := c.Conn.TrySend(f); err != nil {
			dropped++
			continue
		}
		sent++
	}
	if dropped > 0 {
		metrics.SendsDropped.Add(float64(dropped))
	}
	log.Debug().Str("module", "app.presence").Int("online", len(snap)).Int("sent_to", sent).Int("dropped", dropped).Msg("presence broadcast")
}
