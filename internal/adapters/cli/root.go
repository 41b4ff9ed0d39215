package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/shipfix-go/internal/infrastructure/config"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/logging"
)

// app holds state shared by every command of one CLI process.
// The console reuses one app for all of its lines, so the session and
// its vessel registry live as long as the console does.
type app struct {
	configPath string
	verbose    bool

	cfg       *config.Config
	session   *Session
	logCloser io.Closer

	// Shared line reader so console input and confirmation prompts never
	// buffer past each other
	input *bufio.Reader

	inConsole bool
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

// NewRootCommandWithSession creates a root command bound to an existing session
func NewRootCommandWithSession(session *Session) *cobra.Command {
	return newRootCommand(&app{cfg: session.Config, session: session})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shipfix",
		Short: "ShipFix CLI - Fleet maintenance administration",
		Long: `ShipFix CLI manages the vessel registry and the maintenance board.

Vessel changes live in memory for the lifetime of the process; use the
console to keep a session open across commands.

Examples:
  shipfix fleet list --query nanina
  shipfix fleet create --name "Estrella" --code CHI-SAI-0001 --port "San Antonio" --lead "Ana Soto"
  shipfix fleet remove bq-2 --yes
  shipfix dashboard
  shipfix console
  shipfix health --url http://localhost:4000`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Enable debug logging")

	// Add command groups
	rootCmd.AddCommand(newFleetCommand(a))
	rootCmd.AddCommand(newDashboardCommand(a))
	rootCmd.AddCommand(newIncidentCommand(a))
	rootCmd.AddCommand(newMetricsCommand(a))
	rootCmd.AddCommand(newHealthCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))
	if !a.inConsole {
		rootCmd.AddCommand(newConsoleCommand(a))
	}

	return rootCmd
}

// loadConfig loads configuration once per process
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	a.cfg = cfg
	return cfg, nil
}

// ensureSession lazily opens the session the first time a command needs it
func (a *app) ensureSession(ctx context.Context) (*Session, error) {
	if a.session != nil {
		return a.session, nil
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}
	a.logCloser = closer

	session, err := NewSession(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.session = session
	return session, nil
}

// lineReader returns the shared reader over the command's input
func (a *app) lineReader(cmd *cobra.Command) *bufio.Reader {
	if a.input == nil {
		a.input = bufio.NewReader(cmd.InOrStdin())
	}
	return a.input
}

func (a *app) close() {
	if a.session != nil {
		_ = a.session.Close()
		a.session = nil
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}

// Execute runs the root command
func Execute() {
	a := &app{}
	rootCmd := newRootCommand(a)
	err := rootCmd.Execute()
	a.close()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describeError(err))
		os.Exit(1)
	}
}
