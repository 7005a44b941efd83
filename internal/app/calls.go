package app

import (
	"encoding/json"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/linkup/internal/core"
	"github.com/dkeye/linkup/internal/domain"
	"github.com/dkeye/linkup/internal/metrics"
)

// CallCoordinator relays call signaling between exactly two connections.
// It keeps no call state: every payload carries its own target, resolved
// client-side from the presence set. All forwarding is fire-and-forget.
type CallCoordinator struct {
	Registry *Registry
}

func (cc *CallCoordinator) CallUser(offer core.CallOffer) {
	ev := struct {
		Signal json.RawMessage `json:"signal"`
		From   core.ConnID     `json:"from"`
		FromID domain.UserID   `json:"fromId"`
		Name   string          `json:"name"`
		Type   domain.CallType `json:"type"`
	}{offer.SignalData, offer.From, offer.FromID, offer.Name, offer.Type}
	cc.forward(offer.UserToCall, core.EvCallIncoming, ev)
}

func (cc *CallCoordinator) AnswerCall(ans core.CallAnswer) {
	cc.forward(ans.To, core.EvCallAccepted, ans.Signal)
}

func (cc *CallCoordinator) ForwardCandidate(cand core.IceCandidate) {
	ev := struct {
		Candidate webrtc.ICECandidateInit `json:"candidate"`
		Sender    domain.UserID           `json:"sender"`
	}{cand.Candidate, cand.Sender}
	cc.forward(cand.Target, core.EvICECandidate, ev)
}

func (cc *CallCoordinator) EndCall(end core.CallEnd) {
	cc.forward(end.To, core.EvCallEnded, nil)
}

// BroadcastCallEnded tells every remaining connection that some call just
// lost a leg. Coarse on purpose: the relay does not track who was in a call
// with whom, so each client checks whether the signal concerns it.
func (cc *CallCoordinator) BroadcastCallEnded(except core.ConnID) {
	f, ok := frame(core.EvCallEnded, nil)
	if !ok {
		return
	}
	for _, c := range cc.Registry.Connections() {
		if c.ID == except {
			continue
		}
		if err := c.Conn.TrySend(f); err != nil {
			metrics.SendsDropped.Inc()
		}
	}
}

func (cc *CallCoordinator) forward(to core.ConnID, event string, payload any) {
	conn, ok := cc.Registry.Conn(to)
	if !ok {
		log.Debug().Str("module", "app.calls").Str("event", event).Str("target", string(to)).Msg("target gone, signal dropped")
		return
	}
	f, ok := frame(event, payload)
	if !ok {
		return
	}
	if err := conn.TrySend(f); err != nil {
		metrics.SendsDropped.Inc()
		log.Warn().Err(err).Str("module", "app.calls").Str("event", event).Str("target", string(to)).Msg("signal send dropped")
		return
	}
	metrics.SignalsRelayed.WithLabelValues(event).Inc()
}
