package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/linkup/internal/core"
)

func (ctl *Controller) writePump(ctx context.Context, c *WsConn) {
	ticker := time.NewTicker(ctl.pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Warn().Err(err).Str("module", "signal").Msg("writePump ping error")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, connID core.ConnID, c *WsConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("conn", string(connID)).Msg("readPump closing")
		ctl.Orch.OnDisconnect(connID)
		ctl.limiter.Forget(connID)
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("conn", string(connID)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Info().Err(err).Str("module", "signal").Str("conn", string(connID)).Msg("readPump read error")
				return
			}
			ctl.dispatch(connID, c, data)
		}
	}
}

// dispatch routes one inbound envelope to its handler. Anything malformed
// is logged and dropped; a single bad frame never costs the connection.
func (ctl *Controller) dispatch(connID core.ConnID, c *WsConn, data []byte) {
	if !ctl.limiter.Allow(connID) {
		log.Warn().Str("module", "signal").Str("conn", string(connID)).Msg("rate limited, frame dropped")
		return
	}

	var env core.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("conn", string(connID)).Msg("bad json")
		return
	}

	switch env.Event {
	case core.EvAddNewUser:
		ctl.handleAddNewUser(connID, env.Data)
	case core.EvSendMessage:
		ctl.handleSendMessage(connID, env.Data)
	case core.EvCallUser:
		ctl.handleCallUser(connID, env.Data)
	case core.EvAnswerCall:
		ctl.handleAnswerCall(connID, env.Data)
	case core.EvEndCall:
		ctl.handleEndCall(connID, env.Data)
	case core.EvICECandidate:
		ctl.handleCandidate(connID, env.Data)
	case core.EvPing:
		ctl.handlePing(c)
	default:
		log.Warn().Str("module", "signal").Str("event", env.Event).Msg("unknown event")
	}
}

func (ctl *Controller) sendJSON(c *WsConn, event string, v any) {
	var data json.RawMessage
	if v != nil {
		b, err := json.Marshal(v)
		if err != nil {
			log.Error().Err(err).Str("module", "signal").Msg("sendJSON payload marshal")
			return
		}
		data = b
	}
	b, err := json.Marshal(core.Envelope{Event: event, Data: data})
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(b)
}
