package toast

import (
	"time"

	"github.com/toastkit-dev/toastkit/pkg/dom"
)

// item is the per-notification record: the mounted element, its
// pending auto-close timer (nil when auto-close is off), and whether
// the exit transition has started. The Notifier's registry maps
// element identity to its item, so timer handles never hide inside
// closures.
type item struct {
	kind     Kind
	position Position
	el       dom.Element

	// timer is the pending auto-close timer. Stopped exactly once,
	// by whichever dismissal happens first.
	timer *time.Timer

	// dismissing is set when the exit transition starts. It is the
	// idempotency guard: an item is dismissed at most once.
	dismissing bool
}

// mount inserts the item's element as the first child of the container
// (newest on top) and wires manual dismissal: a click anywhere on the
// item starts its exit.
func (n *Notifier) mount(it *item, container dom.Element) {
	container.PrependChild(it.el)
	el := it.el
	el.On("click", func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.dismissLocked(n.items[el], DismissClicked)
	})
}

// scheduleAutoClose starts the item's one-shot auto-close timer when
// the resolved configuration enables it. Non-positive durations fire
// as soon as the runtime permits.
func (n *Notifier) scheduleAutoClose(it *item, cfg Config) {
	if !cfg.AutoClose {
		return
	}
	d := cfg.Duration
	if d < 0 {
		d = 0
	}
	it.timer = time.AfterFunc(d, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.dismissLocked(it, DismissExpired)
	})
}

// dismissLocked moves an item from Active to Dismissing: it cancels
// the pending timer, applies the exit state, and schedules the final
// detach after the exit delay. Idempotent: a second call on the same
// item, or a call for an item no longer in the registry (already
// removed or swept by Clear), is a no-op.
//
// Callers must hold n.mu.
func (n *Notifier) dismissLocked(it *item, reason DismissReason) {
	if it == nil || it.dismissing {
		return
	}
	if _, ok := n.items[it.el]; !ok {
		// A timer outliving Clear lands here: the item is already
		// gone from the document and there is nothing to do.
		it.dismissing = true
		return
	}

	it.dismissing = true
	if it.timer != nil {
		it.timer.Stop()
	}

	it.el.AddClass(classHide)
	it.el.SetAttr("style", "opacity: 0; transform: translateY(-12px)")

	time.AfterFunc(n.exitDelay, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		it.el.Remove()
		delete(n.items, it.el)
	})

	n.logger.Debug("toast dismissed", "kind", it.kind, "position", it.position, "reason", reason)
	for _, o := range n.observers {
		o.Dismissed(it.kind, reason)
	}
}
