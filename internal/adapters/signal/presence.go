package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/linkup/internal/core"
	"github.com/dkeye/linkup/internal/domain"
)

// handleAddNewUser binds the connection to the announced account identity.
// The payload is the bare user id, exactly as the client received it from
// the account service.
func (ctl *Controller) handleAddNewUser(connID core.ConnID, data []byte) {
	var userID domain.UserID
	if err := json.Unmarshal(data, &userID); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("conn", string(connID)).Msg("bad addNewUser payload")
		return
	}
	ctl.Orch.OnAnnounce(connID, userID)
}

func (ctl *Controller) handlePing(c *WsConn) {
	ctl.sendJSON(c, core.EvPong, nil)
}
