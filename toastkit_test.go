package toastkit_test

import (
	"testing"
	"time"

	"github.com/toastkit-dev/toastkit"
)

func TestRootPackageFlow(t *testing.T) {
	doc := toastkit.NewDocument()
	n := toastkit.New(doc)

	n.Configure(
		toastkit.WithDuration(5*time.Second),
		toastkit.WithIcon(toastkit.KindSuccess, toastkit.Glyph("OK")),
	)
	n.Success("Saved", "Done", toastkit.WithAutoClose(false))
	n.Info("Also", "here", toastkit.WithAutoClose(false), toastkit.WithPosition(toastkit.BottomLeft))

	if got := n.Active(); got != 2 {
		t.Errorf("Active() = %d, want 2", got)
	}

	cfg := n.Resolve()
	if cfg.Duration != 5*time.Second {
		t.Errorf("Duration = %v, want 5s", cfg.Duration)
	}
	if cfg.Icons[toastkit.KindSuccess].Content != "OK" {
		t.Error("configured icon not resolved")
	}

	n.Clear()
	if got := n.Active(); got != 0 {
		t.Errorf("Active() = %d after Clear, want 0", got)
	}
}
