// Package cli implements the pantry command-line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/logging"
	"github.com/mesh-intelligence/pantry/internal/paths"
	"github.com/mesh-intelligence/pantry/pkg/pantry"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	file      string
	backend   string
	logLevel  string
	jsonMode  bool
}

// app carries the flags and the configuration resolved before a subcommand
// runs.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	layout    paths.Layout
	logger    *slog.Logger
}

// NewRootCmd creates the top-level "pantry" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pantry",
		Short: "Pantry tracks item quantities in a local inventory file",
		Long: `Pantry keeps a count of items, persists it to a JSON (or SQLite) file,
and reports items that are running low.`,
		Version:       pantry.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir/pantry)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.pantry-data)")
	pf.StringVar(&a.flags.file, "file", "", "inventory file, relative to the data directory (default: inventory.json)")
	pf.StringVar(&a.flags.backend, "backend", "", "persistence backend: json or sqlite")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn (or warning), error")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newLowCmd(a))
	root.AddCommand(newReportCmd(a))
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newSnapshotCmd(a))

	return root
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "pantry:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// Execute runs the root command against the process arguments and exits
// with the appropriate code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// setup resolves configuration, the data layout, and the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return userError(fmt.Errorf("load config: %w", err))
	}
	if a.flags.backend != "" {
		cfg.Backend = a.flags.backend
	}
	if a.flags.file != "" {
		cfg.File = a.flags.file
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("invalid config: %w", err))
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, cfg.DataDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	a.configDir = configDir
	a.cfg = cfg
	a.layout = paths.Layout{DataDir: dataDir, File: cfg.File}
	a.logger = logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	return nil
}
