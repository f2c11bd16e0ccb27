package toast

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/toastkit-dev/toastkit/pkg/dom"
)

// recorder is a test Observer counting lifecycle events.
type recorder struct {
	mu        sync.Mutex
	shown     int
	dismissed []DismissReason
	cleared   int
}

func (r *recorder) Shown(Kind, Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown++
}

func (r *recorder) Dismissed(_ Kind, reason DismissReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dismissed = append(r.dismissed, reason)
}

func (r *recorder) Cleared(containers, items int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared++
}

func (r *recorder) dismissals() []DismissReason {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DismissReason{}, r.dismissed...)
}

// waitUntil polls cond until it holds or the deadline passes.
func waitUntil(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal(msg)
}

func containerOf(doc dom.Document, p Position) dom.Element {
	return doc.ElementByID(ContainerID(p))
}

func TestStackingNewestOnTop(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc)

	n.Success("A", "first", WithAutoClose(false))
	n.Success("B", "second", WithAutoClose(false))

	container := containerOf(doc, TopRight)
	if container == nil {
		t.Fatal("container not created")
	}
	children := container.Children()
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}

	first := dom.RenderHTML(children[0])
	second := dom.RenderHTML(children[1])
	if !contains(first, "B") || !contains(second, "A") {
		t.Errorf("expected B above A, got:\n%s\n%s", first, second)
	}
}

func TestDistinctPositionsDistinctContainers(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc)

	n.Info("a", "", WithAutoClose(false), WithPosition(TopLeft))
	n.Info("b", "", WithAutoClose(false), WithPosition(BottomRight))
	n.Info("c", "", WithAutoClose(false), WithPosition(TopLeft))

	left := containerOf(doc, TopLeft)
	right := containerOf(doc, BottomRight)
	if left == nil || right == nil {
		t.Fatal("containers not created")
	}
	if left == right {
		t.Fatal("positions share a container")
	}
	if got := len(left.Children()); got != 2 {
		t.Errorf("top-left children = %d, want 2 (container reused)", got)
	}
	if got := len(right.Children()); got != 1 {
		t.Errorf("bottom-right children = %d, want 1", got)
	}
	// Only the two containers exist under body.
	if got := len(doc.Body().Children()); got != 2 {
		t.Errorf("body children = %d, want 2", got)
	}
}

func TestUnknownPositionStillWorks(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc)

	n.Warning("odd", "", WithAutoClose(false), WithPosition("middle-middle"))

	container := containerOf(doc, "middle-middle")
	if container == nil {
		t.Fatal("unknown position should still produce a container")
	}
	if got := len(container.Children()); got != 1 {
		t.Errorf("children = %d, want 1", got)
	}
}

func TestAutoCloseRemovesItem(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc, WithExitDelay(5*time.Millisecond))

	start := time.Now()
	n.Success("bye", "", WithDuration(40*time.Millisecond))

	container := containerOf(doc, TopRight)
	if got := len(container.Children()); got != 1 {
		t.Fatalf("children = %d, want 1", got)
	}

	waitUntil(t, time.Second, func() bool {
		return len(container.Children()) == 0
	}, "item never auto-closed")

	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("item removed after %v, before its duration", elapsed)
	}
}

func TestAutoCloseDisabledStaysMounted(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc, WithExitDelay(0))

	n.Info("sticky", "", WithAutoClose(false), WithDuration(10*time.Millisecond))

	time.Sleep(60 * time.Millisecond)
	container := containerOf(doc, TopRight)
	if got := len(container.Children()); got != 1 {
		t.Errorf("children = %d, want 1 (item should stay)", got)
	}
	if n.Active() != 1 {
		t.Errorf("Active() = %d, want 1", n.Active())
	}
}

func TestZeroDurationClosesImmediately(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc, WithExitDelay(0))

	n.Error("now", "", WithDuration(0))
	n.Error("past", "", WithDuration(-time.Second))

	container := containerOf(doc, TopRight)
	waitUntil(t, time.Second, func() bool {
		return len(container.Children()) == 0
	}, "zero/negative duration items never closed")
}

func TestClickDismissCancelsTimer(t *testing.T) {
	doc := dom.NewDocument()
	rec := &recorder{}
	n := New(doc, WithExitDelay(0), WithObserver(rec))

	n.Success("x", "", WithDuration(40*time.Millisecond))

	container := containerOf(doc, TopRight)
	children := container.Children()
	if len(children) != 1 {
		t.Fatalf("children = %d, want 1", len(children))
	}
	dom.Click(children[0])

	waitUntil(t, time.Second, func() bool {
		return len(container.Children()) == 0
	}, "clicked item never removed")

	// Wait out the original duration; the canceled timer must not
	// produce a second dismissal.
	time.Sleep(80 * time.Millisecond)
	reasons := rec.dismissals()
	if len(reasons) != 1 {
		t.Fatalf("dismissals = %v, want exactly one", reasons)
	}
	if reasons[0] != DismissClicked {
		t.Errorf("reason = %v, want %v", reasons[0], DismissClicked)
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	doc := dom.NewDocument()
	rec := &recorder{}
	n := New(doc, WithExitDelay(10*time.Millisecond), WithObserver(rec))

	n.Info("once", "", WithAutoClose(false))
	container := containerOf(doc, TopRight)
	el := container.Children()[0]

	n.Dismiss(el)
	n.Dismiss(el)
	dom.Click(el)

	waitUntil(t, time.Second, func() bool {
		return len(container.Children()) == 0
	}, "item never removed")

	if reasons := rec.dismissals(); len(reasons) != 1 {
		t.Errorf("dismissals = %v, want exactly one", reasons)
	}
}

func TestDismissUnknownElementIsNoOp(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc)

	n.Dismiss(doc.CreateElement("div"))
	n.Dismiss(nil)
}

func TestDismissTransitionState(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc, WithExitDelay(40*time.Millisecond))

	n.Warning("fade", "", WithAutoClose(false))
	container := containerOf(doc, TopRight)
	el := container.Children()[0]

	n.Dismiss(el)

	// Dismissing: exit state applied, still attached.
	if !hasClass([]dom.Element{el}, classHide) {
		t.Error("exit class not applied")
	}
	if style, _ := el.Attr("style"); style == "" {
		t.Error("exit style not applied")
	}
	if len(container.Children()) != 1 {
		t.Error("item detached before the exit delay")
	}
	if n.Active() != 0 {
		t.Errorf("Active() = %d during exit, want 0", n.Active())
	}

	// Removed: detached after the exit delay.
	waitUntil(t, time.Second, func() bool {
		return len(container.Children()) == 0
	}, "item never detached")
}

func TestClearRemovesAllContainers(t *testing.T) {
	doc := dom.NewDocument()
	rec := &recorder{}
	n := New(doc, WithObserver(rec))

	n.Success("a", "", WithAutoClose(false), WithPosition(TopLeft))
	n.Error("b", "", WithAutoClose(false), WithPosition(BottomCenter))
	n.Info("c", "", WithDuration(30*time.Millisecond))

	n.Clear()

	if got := len(doc.Body().Children()); got != 0 {
		t.Errorf("body children = %d after Clear, want 0", got)
	}
	if n.Active() != 0 {
		t.Errorf("Active() = %d after Clear, want 0", n.Active())
	}

	// The pending auto-close timer fires into the void: no late
	// dismissal, no resurrected elements.
	time.Sleep(80 * time.Millisecond)
	if got := len(doc.Body().Children()); got != 0 {
		t.Errorf("body children = %d after late timer, want 0", got)
	}
	if reasons := rec.dismissals(); len(reasons) != 0 {
		t.Errorf("dismissals after Clear = %v, want none", reasons)
	}
}

func TestClearThenShowRecreatesContainer(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc)

	n.Success("a", "", WithAutoClose(false))
	n.Clear()
	n.Success("b", "", WithAutoClose(false))

	container := containerOf(doc, TopRight)
	if container == nil {
		t.Fatal("container not recreated after Clear")
	}
	if got := len(container.Children()); got != 1 {
		t.Errorf("children = %d, want 1", got)
	}
}

func TestConfiguredDurationAndIconExample(t *testing.T) {
	doc := dom.NewDocument()
	n := New(doc, WithExitDelay(0))

	n.Configure(WithDuration(40*time.Millisecond), WithIcons(map[Kind]Icon{
		KindSuccess: Glyph("OK"),
	}))
	n.Success("Saved", "Done")

	container := containerOf(doc, TopRight)
	html := dom.RenderHTML(container)
	if !contains(html, "OK") {
		t.Errorf("configured icon not used:\n%s", html)
	}

	waitUntil(t, time.Second, func() bool {
		return len(container.Children()) == 0
	}, "item never auto-closed with configured duration")
}

func TestShownObserverAndActive(t *testing.T) {
	doc := dom.NewDocument()
	rec := &recorder{}
	n := New(doc, WithObserver(rec))

	n.Success("a", "", WithAutoClose(false))
	n.Warning("b", "", WithAutoClose(false))

	rec.mu.Lock()
	shown := rec.shown
	rec.mu.Unlock()
	if shown != 2 {
		t.Errorf("shown = %d, want 2", shown)
	}
	if n.Active() != 2 {
		t.Errorf("Active() = %d, want 2", n.Active())
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
