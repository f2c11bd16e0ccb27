package toast

// DismissReason records what triggered a notification's removal.
type DismissReason string

const (
	// DismissExpired means the auto-close timer fired.
	DismissExpired DismissReason = "expired"

	// DismissClicked means the user clicked the notification.
	DismissClicked DismissReason = "clicked"

	// DismissManual means Dismiss was called programmatically.
	DismissManual DismissReason = "manual"
)

// Observer receives lifecycle events from a Notifier.
//
// Observers are invoked synchronously while the notifier holds its
// lock; they must be fast and must not call back into the Notifier.
// Implementations live in pkg/observe (Prometheus metrics, OTel
// spans); slog logging is built in.
type Observer interface {
	// Shown is called after a notification is mounted.
	Shown(kind Kind, position Position)

	// Dismissed is called when a notification starts its exit
	// transition.
	Dismissed(kind Kind, reason DismissReason)

	// Cleared is called after Clear, with the number of containers
	// removed and the number of discarded items that had not yet
	// begun dismissal.
	Cleared(containers, items int)
}
