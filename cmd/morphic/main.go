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

const banner = `
  ┌┬┐┌─┐┬─┐┌─┐┬ ┬┬┌─┐
  ││││ │├┬┘├─┘├─┤││
  ┴ ┴└─┘┴└─┴  ┴ ┴┴└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "morphic",
		Short: "Server-driven reactive components for Go",
		Long: `Morphic runs reactive component trees on the server and keeps
connected browsers in sync with minimal DOM patches.

Features:

  • Signal-backed component props with attribute reflection
  • Keyed, identity-preserving DOM reconciliation
  • Real-time patch streaming over WebSocket
  • Prometheus metrics and OpenTelemetry tracing`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		initCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the morphic ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
