package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splitbill/splitbill/internal/config"
	"github.com/splitbill/splitbill/internal/logging"
	"github.com/splitbill/splitbill/internal/model"
	"github.com/splitbill/splitbill/internal/roster"
	"github.com/splitbill/splitbill/internal/store/seedfile"
	"github.com/splitbill/splitbill/internal/ui"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// usageError marks bad invocations (exit code 2).
type usageError struct{ error }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// app carries what every subcommand needs once flags and config are read.
type app struct {
	configPath string
	seed       string
	theme      string
	logLevel   string
	noColor    bool

	cfg config.Config
	log *slog.Logger
}

// Execute runs the command tree and returns an exit code (0 ok, 1 error, 2 usage).
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, root.UsageString())
		return 2
	}
	return 1
}

// NewRootCmd builds the command tree. Without a subcommand it starts the TUI.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "splitbill",
		Short:         "Track who owes whom among your friends",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd, "")
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/splitbill/config.yaml)")
	pf.StringVar(&a.seed, "seed", "", "roster file to start from (JSON or YAML)")
	pf.StringVar(&a.theme, "theme", "", "classic, neon or mono")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colors")

	root.AddCommand(newTUICmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newSplitCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("theme") {
		cfg.Theme = a.theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.noColor
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	a.cfg = cfg

	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.SetColorForcing(false, true)
	}
	a.log = logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.NoColor)
	return nil
}

// openStore loads the seed roster into a fresh store.
func (a *app) openStore() (*roster.Store, error) {
	friends, err := seedfile.Load(a.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	a.log.Debug("seed loaded", "path", a.cfg.Seed, "friends", len(friends))
	return roster.New(friends,
		roster.WithAvatarTemplate(a.cfg.AvatarTemplate),
		roster.WithLogger(a.log),
	), nil
}

// printRoster writes snap as a panel or, with asJSON, as a JSON document.
func printRoster(w io.Writer, snap roster.Snapshot, asJSON bool) error {
	if asJSON {
		return seedfile.Export(w, snap)
	}
	ui.Panel(w, ui.RosterLines(snap))
	return nil
}

func findFriend(snap roster.Snapshot, ref string) (model.Friend, error) {
	f, ok := snap.FindByName(ref)
	if !ok {
		return model.Friend{}, usagef("no friend named %q", ref)
	}
	return f, nil
}
