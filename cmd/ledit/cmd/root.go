package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ledit/internal/changelog"
	"ledit/internal/config"
	"ledit/internal/editor"
	"ledit/internal/ui"
)

// options carries global flags and the dependencies built from them. Each
// invocation gets its own, so nothing is shared between runs.
type options struct {
	configPath string
	verbose    bool
	noColor    bool

	stdout io.Writer
	stderr io.Writer

	cfg     *config.Config
	printer *ui.Printer
	editor  *editor.Editor
}

func addGlobalFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.configPath, "config", "", "config file (default $"+config.EnvPath+" or "+config.GetConfigPath()+")")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log each load, flush and changelog append to stderr")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored output")
}

// setup loads configuration and wires the editor. It runs before every
// subcommand.
func (o *options) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(o.stderr, &slog.HandlerOptions{Level: level}))

	o.cfg = cfg
	o.printer = ui.New(o.stdout, o.stderr, cfg.Output.Color && !o.noColor)
	o.editor = editor.New(newStore(cfg.Changelog), editor.WithLogger(logger))
	logger.Debug("configured", "backend", cfg.Changelog.Backend, "config", o.configPath)
	return nil
}

func newStore(cfg config.ChangelogConfig) changelog.Store {
	if cfg.Backend == config.BackendMemory {
		return changelog.NewMemoryStore(cfg.Capacity)
	}
	return changelog.NewFileStore()
}

// newRootCmd builds the command tree around o.
func newRootCmd(o *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ledit <command> [args]",
		Short: "A line-oriented text file editor with a per-file changelog",
		Long: `ledit performs whole-file line operations on small text files and records
every mutating operation in a binary changelog stored next to the file as
<file>.changelog.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// help needs no editor and must work with a broken config
			if cmd.Name() == "help" {
				return nil
			}
			return o.setup()
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	addGlobalFlags(rootCmd.PersistentFlags(), o)

	rootCmd.AddCommand(
		newCreateFileCmd(o),
		newCopyFileCmd(o),
		newDeleteFileCmd(o),
		newShowFileCmd(o),
		newAppendLineCmd(o),
		newInsertLineCmd(o),
		newDeleteLineCmd(o),
		newShowLineCmd(o),
		newLineCountCmd(o),
		newTrimCmd(o),
		newFindCmd(o),
		newChangelogCmd(o),
	)
	return rootCmd
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	o := &options{stdout: stdout, stderr: stderr}
	rootCmd := newRootCmd(o)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	p := o.printer
	if p == nil {
		p = ui.New(stdout, stderr, false)
	}
	var logErr *editor.LogError
	if errors.As(err, &logErr) {
		p.Warning("%v", err)
	} else {
		p.Error("%v", err)
	}
	return 1
}

// Execute runs the command tree against the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
