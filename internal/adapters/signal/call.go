package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/linkup/internal/core"
)

// Call signaling handlers. Payloads address their target connection
// directly; the caller resolved it client-side from the presence set, so
// no registry lookup happens here.

func (ctl *Controller) handleCallUser(connID core.ConnID, data []byte) {
	var offer core.CallOffer
	if err := json.Unmarshal(data, &offer); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("conn", string(connID)).Msg("bad callUser payload")
		return
	}
	ctl.Orch.Calls.CallUser(offer)
}

func (ctl *Controller) handleAnswerCall(connID core.ConnID, data []byte) {
	var ans core.CallAnswer
	if err := json.Unmarshal(data, &ans); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("conn", string(connID)).Msg("bad answerCall payload")
		return
	}
	ctl.Orch.Calls.AnswerCall(ans)
}

func (ctl *Controller) handleEndCall(connID core.ConnID, data []byte) {
	var end core.CallEnd
	if err := json.Unmarshal(data, &end); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("conn", string(connID)).Msg("bad endCall payload")
		return
	}
	ctl.Orch.Calls.EndCall(end)
}

// handleCandidate decodes the candidate structurally before forwarding; a
// malformed one is logged and dropped, it never reaches the peer and never
// crashes the relay.
func (ctl *Controller) handleCandidate(connID core.ConnID, data []byte) {
	var cand core.IceCandidate
	if err := json.Unmarshal(data, &cand); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("conn", string(connID)).Msg("bad ICEcandidate payload")
		return
	}
	if cand.Candidate.Candidate == "" {
		log.Warn().Str("module", "signal").Str("conn", string(connID)).Msg("empty ICE candidate dropped")
		return
	}
	ctl.Orch.Calls.ForwardCandidate(cand)
}
