package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-graveyard/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeLevel  string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the graveyard SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level menu, or goes
straight into --level. Runs are stored per-server under the SSH user
name, so all users share the same history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.graveyard/host_key

Examples:
  graveyard serve                           # Listen on :23234 with auto-generated key
  graveyard serve --ssh :2222               # Listen on port 2222
  graveyard serve --level crypt             # Skip the menu
  graveyard serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeLevel, "level", "", "Start every session in this level")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagKeyHold, "key-hold", 0, "Ticks a key press stays held (0 = from settings)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	hold, err := keyHold("", flagKeyHold)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Level:       flagServeLevel,
		TickRate:    flagFPS,
		KeyHold:     hold,
		Logger:      logger.WithPrefix("graveyard-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting graveyard SSH server on %s\n", cfg.Address)
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
