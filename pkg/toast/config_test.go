package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/toastkit-dev/toastkit/pkg/dom"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Position != TopRight {
		t.Errorf("Position = %v, want %v", cfg.Position, TopRight)
	}
	if cfg.Duration != 3*time.Second {
		t.Errorf("Duration = %v, want 3s", cfg.Duration)
	}
	if !cfg.AutoClose {
		t.Error("AutoClose should default to true")
	}
	if !cfg.ShowIcon {
		t.Error("ShowIcon should default to true")
	}
	if cfg.ProgressBar {
		t.Error("ProgressBar should default to false")
	}

	wantIcons := map[Kind]string{
		KindSuccess: "✓",
		KindError:   "✖",
		KindWarning: "⚠",
		KindInfo:    "ℹ",
	}
	for kind, glyph := range wantIcons {
		icon, ok := cfg.Icons[kind]
		if !ok {
			t.Errorf("missing default icon for %s", kind)
			continue
		}
		if icon.Content != glyph || icon.HTML {
			t.Errorf("icon for %s = %+v, want glyph %q", kind, icon, glyph)
		}
	}
}

func TestConfigCloneIsolatesIcons(t *testing.T) {
	orig := DefaultConfig()
	clone := orig.Clone()

	clone.Icons[KindSuccess] = Glyph("OK")

	if orig.Icons[KindSuccess].Content != "✓" {
		t.Error("mutating a clone's icons leaked into the original")
	}
}

func TestResolveIdentity(t *testing.T) {
	n := New(dom.NewDocument())
	n.Configure(WithDuration(5*time.Second), WithPosition(BottomLeft))

	got := n.Resolve()
	want := n.Resolve()

	if got.Position != BottomLeft || got.Duration != 5*time.Second {
		t.Errorf("Resolve() = %+v, configuration not reflected", got)
	}
	if got.Position != want.Position || got.Duration != want.Duration ||
		got.AutoClose != want.AutoClose || got.ShowIcon != want.ShowIcon ||
		got.ProgressBar != want.ProgressBar {
		t.Error("Resolve() with no options is not stable")
	}
	if len(got.Icons) != len(want.Icons) {
		t.Error("Resolve() icon mapping is not stable")
	}
}

func TestResolveOverrides(t *testing.T) {
	n := New(dom.NewDocument())

	got := n.Resolve(
		WithDuration(time.Second),
		WithAutoClose(false),
		WithPosition(TopCenter),
	)

	if got.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", got.Duration)
	}
	if got.AutoClose {
		t.Error("AutoClose override not applied")
	}
	if got.Position != TopCenter {
		t.Errorf("Position = %v, want %v", got.Position, TopCenter)
	}

	// Non-overridden keys keep their global values.
	if !got.ShowIcon {
		t.Error("ShowIcon should keep its global value")
	}
	if got.ProgressBar {
		t.Error("ProgressBar should keep its global value")
	}
}

func TestResolveDoesNotMutateGlobal(t *testing.T) {
	n := New(dom.NewDocument())

	n.Resolve(WithDuration(time.Minute), WithIcon(KindSuccess, Glyph("OK")))

	cfg := n.Resolve()
	if cfg.Duration != 3*time.Second {
		t.Error("per-call duration leaked into the notifier's defaults")
	}
	if cfg.Icons[KindSuccess].Content != "✓" {
		t.Error("per-call icon leaked into the notifier's defaults")
	}
}

func TestIconOptionsMergeKeyByKey(t *testing.T) {
	n := New(dom.NewDocument())

	// A partial icons mapping must not drop icons for other kinds.
	n.Configure(WithIcons(map[Kind]Icon{KindSuccess: Glyph("OK")}))

	cfg := n.Resolve()
	if cfg.Icons[KindSuccess].Content != "OK" {
		t.Errorf("success icon = %q, want OK", cfg.Icons[KindSuccess].Content)
	}
	if cfg.Icons[KindError].Content != "✖" {
		t.Error("partial icon configuration dropped the error icon")
	}
	if cfg.Icons[KindWarning].Content != "⚠" || cfg.Icons[KindInfo].Content != "ℹ" {
		t.Error("partial icon configuration dropped unrelated icons")
	}
}

func TestWithIconOnEmptyMapping(t *testing.T) {
	var cfg Config
	WithIcon(KindInfo, Markup("<svg/>"))(&cfg)

	icon, ok := cfg.Icons[KindInfo]
	if !ok {
		t.Fatal("icon not set on nil mapping")
	}
	if !icon.HTML || icon.Content != "<svg/>" {
		t.Errorf("icon = %+v, want raw markup", icon)
	}
}

func TestConfigureAffectsSubsequentCallsOnly(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc, WithExitDelay(0))

	n.Info("before", "", WithAutoClose(false))
	n.Configure(WithShowIcon(false))
	n.Info("after", "", WithAutoClose(false))

	container := doc.ElementByID(ContainerID(TopRight))
	if container == nil {
		t.Fatal("container not created")
	}
	children := container.Children()
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}

	// Newest first: children[0] is "after" (no icon), children[1] is
	// "before" (icon untouched).
	if hasClass(children[0].Children(), classIcon) {
		t.Error("notification shown after Configure should have no icon")
	}
	if !hasClass(children[1].Children(), classIcon) {
		t.Error("already-displayed notification lost its icon")
	}
}

// hasClass reports whether any element in els carries the class hook.
func hasClass(els []dom.Element, class string) bool {
	for _, el := range els {
		got, _ := el.Attr("class")
		for _, c := range strings.Fields(got) {
			if c == class {
				return true
			}
		}
	}
	return false
}
