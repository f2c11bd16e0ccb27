package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/toastkit-dev/toastkit/pkg/dom"
	"github.com/toastkit-dev/toastkit/pkg/observe"
	"github.com/toastkit-dev/toastkit/pkg/remotedom"
	"github.com/toastkit-dev/toastkit/pkg/toast"
)

func serveCmd() *cobra.Command {
	var (
		addr  string
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo server",
		Long: `Start the toastkit demo server.

Open the printed address in a browser; the buttons on the page fire
toasts built and scheduled in Go and streamed to the page as DOM
operations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, debug)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Address to listen on")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}

func runServe(addr string, debug bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	// One metrics observer for the process; notifiers are
	// per-connection.
	metrics := observe.NewMetrics()
	tracer := observe.NewTracer()

	ws := remotedom.NewServer(func(doc *remotedom.Document) {
		n := toast.New(doc,
			toast.WithLogger(logger),
			toast.WithObserver(metrics),
			toast.WithObserver(tracer),
			toast.WithDefaults(toast.WithProgressBar(true)),
		)
		buildDemoPage(doc, n)
	}, remotedom.WithLogger(logger))

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Handle("/ws", ws)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Get("/toastkit.js", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		w.Write(remotedom.ClientScript)
	})
	r.Get("/toastkit.css", serveAsset("assets/toastkit.css", "text/css"))
	r.Get("/", serveAsset("assets/index.html", "text/html; charset=utf-8"))

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("toastd listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func serveAsset(path, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		data, err := assets.ReadFile(path)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	}
}

// buildDemoPage assembles the demo controls through the remote
// document, so clicks arrive as DOM events and toasts flow back as
// DOM operations.
func buildDemoPage(doc *remotedom.Document, n *toast.Notifier) {
	panel := doc.CreateElement("div")
	panel.AddClass("demo-panel")

	heading := doc.CreateElement("h1")
	heading.AppendChild(doc.CreateText("toastkit demo"))
	panel.AppendChild(heading)

	demoButton(doc, panel, "Success", func() {
		n.Success("Saved", "Your changes have been saved.")
	})
	demoButton(doc, panel, "Error", func() {
		n.Error("Upload failed", "The file is too large.")
	})
	demoButton(doc, panel, "Warning", func() {
		n.Warning("Heads up", "This action cannot be undone.",
			toast.WithPosition(toast.BottomCenter))
	})
	demoButton(doc, panel, "Info", func() {
		n.Info("Sticky", "Click me to dismiss.",
			toast.WithAutoClose(false))
	})
	demoButton(doc, panel, "Clear", n.Clear)

	doc.Body().AppendChild(panel)
}

func demoButton(doc *remotedom.Document, parent dom.Element, label string, onClick func()) {
	btn := doc.CreateElement("button")
	btn.AddClass("demo-button")
	btn.AppendChild(doc.CreateText(label))
	btn.On("click", onClick)
	parent.AppendChild(btn)
}
