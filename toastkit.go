// Package toastkit renders transient, stackable on-screen
// notifications with configurable position, auto-dismiss timing,
// icons, and progress indication.
//
// The root package is a convenience door over the real engine in
// pkg/toast and the document capability in pkg/dom:
//
//	doc := toastkit.NewDocument()
//	n := toastkit.New(doc)
//	n.Configure(toastkit.WithDuration(5*time.Second))
//	n.Success("Saved", "Done")
//
// Drive a real browser with pkg/remotedom, or export lifecycle
// metrics and traces with pkg/observe.
package toastkit

import (
	"github.com/toastkit-dev/toastkit/pkg/dom"
	"github.com/toastkit-dev/toastkit/pkg/toast"
)

// =============================================================================
// Re-exports for Convenience
// =============================================================================

// Notifier is an alias for toast.Notifier.
type Notifier = toast.Notifier

// Config is an alias for toast.Config.
type Config = toast.Config

// Icon is an alias for toast.Icon.
type Icon = toast.Icon

// Kind is an alias for toast.Kind.
type Kind = toast.Kind

// Position is an alias for toast.Position.
type Position = toast.Position

// Option is an alias for toast.Option.
type Option = toast.Option

// Observer is an alias for toast.Observer.
type Observer = toast.Observer

// Notification kinds.
const (
	KindSuccess = toast.KindSuccess
	KindError   = toast.KindError
	KindWarning = toast.KindWarning
	KindInfo    = toast.KindInfo
)

// Container positions.
const (
	TopLeft      = toast.TopLeft
	TopCenter    = toast.TopCenter
	TopRight     = toast.TopRight
	BottomLeft   = toast.BottomLeft
	BottomCenter = toast.BottomCenter
	BottomRight  = toast.BottomRight
)

// New creates a Notifier rendering into doc.
func New(doc dom.Document, opts ...toast.NotifierOption) *toast.Notifier {
	return toast.New(doc, opts...)
}

// NewDocument creates an empty in-memory document.
func NewDocument() dom.Document {
	return dom.NewDocument()
}

// Configuration options.
var (
	WithPosition    = toast.WithPosition
	WithDuration    = toast.WithDuration
	WithAutoClose   = toast.WithAutoClose
	WithShowIcon    = toast.WithShowIcon
	WithProgressBar = toast.WithProgressBar
	WithIcon        = toast.WithIcon
	WithIcons       = toast.WithIcons
)

// Icon constructors.
var (
	Glyph  = toast.Glyph
	Markup = toast.Markup
)
