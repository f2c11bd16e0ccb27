package toast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/toastkit-dev/toastkit/pkg/dom"
)

// DefaultExitDelay is the fixed window between the start of the exit
// transition and the item's removal from the document. The stylesheet
// fades the item within this window.
const DefaultExitDelay = 200 * time.Millisecond

// Notifier renders notifications into one document and owns every
// per-item timer it creates.
//
// All operations and timer callbacks serialize on one internal mutex,
// so the document only ever mutates from one goroutine at a time.
type Notifier struct {
	mu        sync.Mutex
	doc       dom.Document
	config    Config
	exitDelay time.Duration
	logger    *slog.Logger
	observers []Observer

	// items maps a mounted element to its lifecycle record.
	items map[dom.Element]*item

	// positions tracks every position a container was resolved for,
	// so Clear can find them all - including unrecognized positions.
	positions map[Position]struct{}
}

// NotifierOption configures a Notifier at construction.
type NotifierOption func(*Notifier)

// WithConfig replaces the notifier's default configuration. The
// config is cloned on install.
func WithConfig(cfg Config) NotifierOption {
	return func(n *Notifier) {
		n.config = cfg.Clone()
	}
}

// WithDefaults applies configuration options to the notifier's
// built-in defaults. Shorthand for New followed by Configure.
func WithDefaults(opts ...Option) NotifierOption {
	return func(n *Notifier) {
		for _, opt := range opts {
			opt(&n.config)
		}
	}
}

// WithExitDelay overrides the exit transition window. Mostly useful
// in tests that don't want to wait out the default 200ms.
func WithExitDelay(d time.Duration) NotifierOption {
	return func(n *Notifier) {
		if d >= 0 {
			n.exitDelay = d
		}
	}
}

// WithLogger sets the notifier's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) NotifierOption {
	return func(n *Notifier) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithObserver registers a lifecycle observer.
func WithObserver(o Observer) NotifierOption {
	return func(n *Notifier) {
		if o != nil {
			n.observers = append(n.observers, o)
		}
	}
}

// New creates a Notifier rendering into doc.
func New(doc dom.Document, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		doc:       doc,
		config:    DefaultConfig(),
		exitDelay: DefaultExitDelay,
		logger:    slog.Default(),
		items:     make(map[dom.Element]*item),
		positions: make(map[Position]struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Configure merges options into the notifier's defaults. It affects
// notifications shown after the call, never ones already on screen.
func (n *Notifier) Configure(opts ...Option) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, opt := range opts {
		opt(&n.config)
	}
}

// Resolve returns the effective configuration a show call with these
// options would use. Pure: the notifier's own configuration is never
// mutated. With no options it returns the current defaults.
func (n *Notifier) Resolve(opts ...Option) Config {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.resolveLocked(opts)
}

func (n *Notifier) resolveLocked(opts []Option) Config {
	cfg := n.config.Clone()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Success shows a success notification.
//
//	n.Success("Saved", "Your changes have been saved.")
func (n *Notifier) Success(title, message string, opts ...Option) {
	n.Show(KindSuccess, title, message, opts...)
}

// Error shows an error notification.
func (n *Notifier) Error(title, message string, opts ...Option) {
	n.Show(KindError, title, message, opts...)
}

// Warning shows a warning notification.
func (n *Notifier) Warning(title, message string, opts ...Option) {
	n.Show(KindWarning, title, message, opts...)
}

// Info shows an info notification.
func (n *Notifier) Info(title, message string, opts ...Option) {
	n.Show(KindInfo, title, message, opts...)
}

// Show displays one notification: it resolves the effective
// configuration, resolves the position's container, builds the item,
// mounts it newest-on-top, and schedules auto-close when enabled.
// Empty title or message simply omit that element.
func (n *Notifier) Show(kind Kind, title, message string, opts ...Option) {
	n.mu.Lock()
	defer n.mu.Unlock()

	cfg := n.resolveLocked(opts)
	container := n.container(cfg.Position)

	it := &item{
		kind:     kind,
		position: cfg.Position,
		el:       build(n.doc, kind, title, message, cfg),
	}
	n.items[it.el] = it
	n.mount(it, container)
	n.scheduleAutoClose(it, cfg)

	n.logger.Debug("toast shown",
		"kind", kind,
		"position", cfg.Position,
		"autoClose", cfg.AutoClose,
		"duration", cfg.Duration,
	)
	for _, o := range n.observers {
		o.Shown(kind, cfg.Position)
	}
}

// Dismiss starts the exit transition for the notification mounted as
// el. Calling it on an unknown or already-dismissed element is a
// no-op.
func (n *Notifier) Dismiss(el dom.Element) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dismissLocked(n.items[el], DismissManual)
}

// Clear removes every container - and with them every notification -
// immediately, bypassing the per-item exit transition. Pending timers
// are discarded wholesale; one that still fires finds its item gone
// from the registry and does nothing.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	// Count items that never started an exit transition; observers
	// already saw a Dismissed for the rest.
	items := 0
	for _, it := range n.items {
		if !it.dismissing {
			items++
		}
	}
	containers := 0
	for p := range n.positions {
		if el := n.doc.ElementByID(ContainerID(p)); el != nil {
			el.Remove()
			containers++
		}
	}
	n.items = make(map[dom.Element]*item)
	n.positions = make(map[Position]struct{})

	n.logger.Debug("toasts cleared", "containers", containers, "items", items)
	for _, o := range n.observers {
		o.Cleared(containers, items)
	}
}

// Active returns the number of mounted notifications that have not
// started their exit transition.
func (n *Notifier) Active() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	active := 0
	for _, it := range n.items {
		if !it.dismissing {
			active++
		}
	}
	return active
}
