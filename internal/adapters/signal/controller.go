package signal

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/linkup/internal/app"
	"github.com/dkeye/linkup/internal/config"
	"github.com/dkeye/linkup/internal/core"
)

// Controller upgrades HTTP requests to the event channel and runs one
// read/write pump pair per connection.
type Controller struct {
	Orch *app.Orchestrator

	upgrader   websocket.Upgrader
	limiter    *ConnRateLimiter
	readLimit  int64
	pingPeriod time.Duration
}

func NewController(orch *app.Orchestrator, cfg *config.Config) *Controller {
	origin := cfg.AllowedOrigin
	return &Controller{
		Orch: orch,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if origin == "" {
					return true
				}
				return r.Header.Get("Origin") == origin
			},
		},
		limiter:    NewConnRateLimiter(cfg.RateLimit, cfg.RateInterval),
		readLimit:  cfg.ReadLimit,
		pingPeriod: cfg.PingPeriod,
	}
}

// HandleSocket is the /api/ws endpoint. The connection id is minted here
// and dies with the socket; a reconnect always gets a fresh one.
func (ctl *Controller) HandleSocket(ctx context.Context, c *gin.Context) {
	ws, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}
	if ctl.readLimit > 0 {
		ws.SetReadLimit(ctl.readLimit)
	}

	connID := core.ConnID(uuid.NewString())
	log.Info().Str("module", "signal").Str("conn", string(connID)).Msg("new WS connection")

	conn := newWsConn(ws)
	ctx, cancel := context.WithCancel(ctx)
	ctl.Orch.OnConnect(connID, conn, cancel)

	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, connID, conn)
}
