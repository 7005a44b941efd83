package app

import (
	"testing"

	"github.com/dkeye/linkup/internal/core"
	"github.com/dkeye/linkup/internal/domain"
)

func TestRouteMessageOfflineRecipientIsSilent(t *testing.T) {
	o := NewOrchestrator()
	a := connect(o, "ca")
	o.OnAnnounce("ca", "u1")

	before := len(a.envelopes(t))
	o.Router.RouteMessage(domain.Message{SenderID: "u1", RecipientID: "nobody", Text: "hi"})
	if len(a.envelopes(t)) != before {
		t.Fatal("offline recipient must produce zero deliveries")
	}
}

func TestRouteMessageDeliversExactlyOncePerKind(t *testing.T) {
	o := NewOrchestrator()
	connect(o, "ca")
	b := connect(o, "cb")
	o.OnAnnounce("ca", "u1")
	o.OnAnnounce("cb", "u2")

	o.Router.RouteMessage(domain.Message{SenderID: "u1", RecipientID: "u2", Text: "hello"})

	if n := b.countOf(t, core.EvGetMessage); n != 1 {
		t.Fatalf("recipient got %d getMessage frames, want 1", n)
	}
	if n := b.countOf(t, core.EvGetNotification); n != 1 {
		t.Fatalf("recipient got %d getNotification frames, want 1", n)
	}

	// Notification trails its message on the same connection.
	envs := b.envelopes(t)
	msgIdx, notifIdx := -1, -1
	for i, env := range envs {
		switch env.Event {
		case core.EvGetMessage:
			msgIdx = i
		case core.EvGetNotification:
			notifIdx = i
		}
	}
	if msgIdx == -1 || notifIdx == -1 || notifIdx < msgIdx {
		t.Fatalf("notification must follow message, got order %v", envs)
	}
}

func TestRouteMessageBackpressuredRecipient(t *testing.T) {
	o := NewOrchestrator()
	b := connect(o, "cb")
	o.OnAnnounce("cb", "u2")
	b.full = true

	// Must not panic or surface an error; the drop is terminal.
	o.Router.RouteMessage(domain.Message{SenderID: "u1", RecipientID: "u2", Text: "hi"})

	if n := b.countOf(t, core.EvGetMessage); n != 0 {
		t.Fatalf("saturated recipient got %d frames, want 0", n)
	}
}
