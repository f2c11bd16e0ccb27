// Package toast is the notification lifecycle engine.
//
// A Notifier renders transient, stackable notifications into a
// dom.Document: it resolves per-call configuration against its own
// defaults, places each notification in a per-position container,
// builds the item's element tree, and owns the item's auto-dismiss
// timer until the item is removed.
//
// # Quick Start
//
//	doc := dom.NewDocument()
//	n := toast.New(doc)
//	n.Success("Saved", "Your changes have been saved.")
//	n.Error("Upload failed", "The file is too large.",
//	    toast.WithAutoClose(false))
//
// # Configuration
//
// Configuration merges in two layers. Configure changes the notifier's
// defaults for all subsequent notifications; per-call options override
// those defaults for one notification only:
//
//	n.Configure(toast.WithDuration(5*time.Second))
//	n.Info("Heads up", "stays", toast.WithAutoClose(false))
//
// Icon options always merge key-by-key into the existing icon mapping;
// setting the success icon never drops the error icon.
//
// # Appearance
//
// The engine makes no visual decisions. Every element it creates
// carries class hooks (toastkit-container, toastkit-toast,
// toastkit-icon, toastkit-title, toastkit-message, toastkit-progress)
// so an external stylesheet controls placement, colors, the exit fade,
// and the progress depletion animation keyed off the duration the
// progress element encodes.
package toast
