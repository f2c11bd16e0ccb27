package toast

import "time"

// Icon is the display token shown next to a notification's content.
//
// A glyph icon renders as escaped text; a markup icon renders
// verbatim, so callers supplying markup are trusted not to pass
// user-controlled content.
type Icon struct {
	// Content is the glyph or markup fragment.
	Content string

	// HTML marks Content as a raw markup fragment.
	HTML bool
}

// Glyph creates a plain-text icon.
func Glyph(s string) Icon { return Icon{Content: s} }

// Markup creates a raw HTML icon (e.g. an inline SVG).
// The content is rendered unescaped.
func Markup(s string) Icon { return Icon{Content: s, HTML: true} }

// Config holds the display settings one notification is built with.
type Config struct {
	// Position selects the container the notification stacks into.
	// Default: TopRight.
	Position Position

	// Duration is how long the notification stays before auto-close.
	// Durations <= 0 close as soon as the scheduler permits.
	// Default: 3 seconds.
	Duration time.Duration

	// AutoClose enables the auto-dismiss timer.
	// Default: true.
	AutoClose bool

	// ShowIcon enables the icon element. A kind with no entry in
	// Icons renders without an icon even when ShowIcon is true.
	// Default: true.
	ShowIcon bool

	// ProgressBar enables the progress indicator. It only appears on
	// auto-closing notifications; the element encodes Duration for
	// the stylesheet's depletion animation.
	// Default: false.
	ProgressBar bool

	// Icons maps notification kinds to their display tokens.
	Icons map[Kind]Icon
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Position:    TopRight,
		Duration:    3 * time.Second,
		AutoClose:   true,
		ShowIcon:    true,
		ProgressBar: false,
		Icons: map[Kind]Icon{
			KindSuccess: Glyph("✓"),
			KindError:   Glyph("✖"),
			KindWarning: Glyph("⚠"),
			KindInfo:    Glyph("ℹ"),
		},
	}
}

// Clone returns a deep copy of the Config. The Icons mapping is
// copied, so options applied to the clone never leak into the
// original.
func (c Config) Clone() Config {
	clone := c
	if c.Icons != nil {
		clone.Icons = make(map[Kind]Icon, len(c.Icons))
		for k, v := range c.Icons {
			clone.Icons[k] = v
		}
	}
	return clone
}

// Option overrides one Config field. Options passed to Configure
// change the notifier's defaults; options passed to a show call apply
// to that notification only.
type Option func(*Config)

// WithPosition sets the container position.
func WithPosition(p Position) Option {
	return func(c *Config) {
		c.Position = p
	}
}

// WithDuration sets the time before auto-close.
func WithDuration(d time.Duration) Option {
	return func(c *Config) {
		c.Duration = d
	}
}

// WithAutoClose enables or disables the auto-dismiss timer.
func WithAutoClose(enabled bool) Option {
	return func(c *Config) {
		c.AutoClose = enabled
	}
}

// WithShowIcon enables or disables the icon element.
func WithShowIcon(enabled bool) Option {
	return func(c *Config) {
		c.ShowIcon = enabled
	}
}

// WithProgressBar enables or disables the progress indicator.
func WithProgressBar(enabled bool) Option {
	return func(c *Config) {
		c.ProgressBar = enabled
	}
}

// WithIcon sets the icon for one kind. Other kinds keep their icons.
func WithIcon(kind Kind, icon Icon) Option {
	return func(c *Config) {
		if c.Icons == nil {
			c.Icons = make(map[Kind]Icon)
		}
		c.Icons[kind] = icon
	}
}

// WithIcons merges icons key-by-key into the existing mapping.
// A partial mapping never drops icons for kinds it doesn't mention.
func WithIcons(icons map[Kind]Icon) Option {
	return func(c *Config) {
		if len(icons) == 0 {
			return
		}
		if c.Icons == nil {
			c.Icons = make(map[Kind]Icon, len(icons))
		}
		for k, v := range icons {
			c.Icons[k] = v
		}
	}
}
