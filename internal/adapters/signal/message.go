package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/linkup/internal/core"
	"github.com/dkeye/linkup/internal/domain"
)

func (ctl *Controller) handleSendMessage(connID core.ConnID, data []byte) {
	var msg domain.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("conn", string(connID)).Msg("bad sendMessage payload")
		return
	}
	ctl.Orch.Router.RouteMessage(msg)
}
