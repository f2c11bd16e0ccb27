package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "toastd",
		Short: "Toast notification demo server",
		Long: `toastd serves a live demo of the toastkit notification engine.

The page you get is driven entirely from Go: every toast is built
server-side and streamed to the browser as DOM operations over a
WebSocket. Prometheus metrics for the notification lifecycle are
exposed on /metrics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
