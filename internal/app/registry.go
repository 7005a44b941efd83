package app

import (
	"context"
	"sync"

	"github.com/dkeye/linkup/internal/core"
	"github.com/dkeye/linkup/internal/domain"
	"github.com/rs/zerolog/log"
)

type connEntry struct {
	Conn   core.SignalConnection
	Cancel context.CancelFunc
}

// Registry owns the presence set and the live-connection table. It is the
// only shared mutable state in the process; register/unregister/snapshot
// are read-modify-write, so every access goes through one mutex.
type Registry struct {
	mu      sync.RWMutex
	conns   map[core.ConnID]*connEntry
	entries []core.PresenceEntry // announce order
	byUser  map[domain.UserID]core.ConnID
	byConn  map[core.ConnID]domain.UserID
}

func NewRegistry() *Registry {
	return &Registry{
		conns:  make(map[core.ConnID]*connEntry),
		byUser: make(map[domain.UserID]core.ConnID),
		byConn: make(map[core.ConnID]domain.UserID),
	}
}

// Bind attaches a live connection before any identity is known.
func (r *Registry) Bind(id core.ConnID, conn core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[id] = &connEntry{Conn: conn, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Msg("bound connection")
}

// Unbind detaches a connection and cancels its pumps. Reports whether the
// connection was still known, so duplicate disconnects can be ignored.
func (r *Registry) Unbind(id core.ConnID) bool {
	r.mu.Lock()
	e, ok := r.conns[id]
	delete(r.conns, id)
	r.mu.Unlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Msg("unbound connection")
	return true
}

func (r *Registry) Conn(id core.ConnID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.conns[id]; ok {
		return e.Conn, true
	}
	return nil, false
}

type connSnap struct {
	ID   core.ConnID
	Conn core.SignalConnection
}

// Connections returns every live connection, announced or not.
func (r *Registry) Connections() []connSnap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]connSnap, 0, len(r.conns))
	for id, e := range r.conns {
		out = append(out, connSnap{ID: id, Conn: e.Conn})
	}
	return out
}

// Register inserts or replaces the presence entry for user. Last write
// wins: a re-announce rebinds the user to the new connection, keeping the
// entry's position in the ordered set. Never fails.
func (r *Registry) Register(user domain.UserID, conn core.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A connection that re-announces under a new identity gives up its
	// previous entry first, so byConn stays one-to-one.
	if prev, ok := r.byConn[conn]; ok && prev != user {
		r.removeEntryLocked(prev)
	}

	if old, ok := r.byUser[user]; ok {
		delete(r.byConn, old)
		for i := range r.entries {
			if r.entries[i].UserID == user {
				r.entries[i].ConnID = conn
				break
			}
		}
	} else {
		r.entries = append(r.entries, core.PresenceEntry{UserID: user, ConnID: conn})
	}
	r.byUser[user] = conn
	r.byConn[conn] = user
	log.Info().Str("module", "app.registry").Str("user", string(user)).Str("conn", string(conn)).Msg("registered presence")
}

// Unregister removes the presence entry whose connection matches, if any.
// Matching purely by connection id means a stale connection's disconnect
// can never evict the user's current mapping.
func (r *Registry) Unregister(conn core.ConnID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byConn[conn]
	if !ok {
		return false
	}
	r.removeEntryLocked(user)
	log.Info().Str("module", "app.registry").Str("user", string(user)).Str("conn", string(conn)).Msg("unregistered presence")
	return true
}

func (r *Registry) removeEntryLocked(user domain.UserID) {
	conn, ok := r.byUser[user]
	if !ok {
		return
	}
	delete(r.byUser, user)
	delete(r.byConn, conn)
	for i := range r.entries {
		if r.entries[i].UserID == user {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
}

func (r *Registry) Lookup(user domain.UserID) (core.ConnID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUser[user]
	return id, ok
}

// Snapshot returns a copy of the presence set in announce order.
func (r *Registry) Snapshot() []core.PresenceEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.PresenceEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
