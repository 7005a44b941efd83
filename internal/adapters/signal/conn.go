package signal

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dkeye/linkup/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

// WsConn wraps a websocket with a buffered outbound channel. Sends never
// block the relay: a full buffer is the client's problem, not ours.
type WsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func newWsConn(ws *websocket.Conn) *WsConn {
	return &WsConn{
		conn: ws,
		send: make(chan core.Frame, 32),
	}
}

func (c *WsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *WsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}
