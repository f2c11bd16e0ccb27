// Package observe provides toast.Observer implementations for
// production monitoring: Prometheus metrics and OpenTelemetry trace
// events.
//
// Wire an observer in at construction:
//
//	m := observe.NewMetrics(observe.WithNamespace("myapp"))
//	n := toast.New(doc, toast.WithObserver(m))
//
// Observers run synchronously inside the notifier's lock, so both
// implementations do nothing heavier than counter updates and span
// bookkeeping.
package observe
