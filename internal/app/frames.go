package app

import (
	"encoding/json"

	"github.com/dkeye/linkup/internal/core"
	"github.com/rs/zerolog/log"
)

// frame serializes an event and its payload into one wire envelope.
// A marshal failure is logged and the frame is dropped; nothing we relay
// is allowed to take the process down.
func frame(event string, v any) (core.Frame, bool) {
	var data json.RawMessage
	if v != nil {
		b, err := json.Marshal(v)
		if err != nil {
			log.Error().Err(err).Str("module", "app").Str("event", event).Msg("frame payload marshal")
			return nil, false
		}
		data = b
	}
	b, err := json.Marshal(core.Envelope{Event: event, Data: data})
	if err != nil {
		log.Error().Err(err).Str("module", "app").Str("event", event).Msg("frame marshal")
		return nil, false
	}
	return core.Frame(b), true
}
