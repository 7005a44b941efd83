package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkeye/linkup/internal/app"
	"github.com/dkeye/linkup/internal/core"
)

type OnlineResponse struct {
	Users []core.PresenceEntry `json:"users"`
	Count int                  `json:"count"`
}

// handlerOnline mirrors the getOnlineUsers broadcast over plain REST, for
// clients that want the presence set before opening a socket.
func handlerOnline(orch *app.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := orch.Registry.Snapshot()
		c.JSON(http.StatusOK, OnlineResponse{Users: snap, Count: len(snap)})
	}
}

func handlerHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
