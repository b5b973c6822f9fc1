package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splitbill/splitbill/internal/logging"
	"github.com/splitbill/splitbill/internal/model"
	"github.com/splitbill/splitbill/internal/roster"
	"github.com/splitbill/splitbill/internal/store/seedfile"
	"github.com/splitbill/splitbill/internal/tui"
	"github.com/splitbill/splitbill/internal/ui"
)

// -------------- tui ----------------

func newTUICmd(a *app) *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive roster (default)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd, export)
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "write the final roster as JSON to this path on quit")
	return cmd
}

func (a *app) runTUI(cmd *cobra.Command, export string) error {
	if export == "" {
		export = a.cfg.Export
	}
	// The alt screen owns the terminal; logs go to a file or nowhere.
	log, closeLog, err := logging.SetupFile(a.cfg.LogFile, a.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	a.log = log

	store, err := a.openStore()
	if err != nil {
		return err
	}
	changes := 0
	cancel := store.Subscribe(func(roster.Snapshot) { changes++ })
	defer cancel()

	final, err := tui.Run(store)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	log.Info("tui closed", "changes", changes, "friends", len(final.Roster))

	if export != "" {
		if err := seedfile.ExportFile(export, final); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		ui.OK(cmd.OutOrStdout(), "exported "+export)
	}
	return nil
}

// -------------- ls ----------------

func newListCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the roster and balances",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			return printRoster(cmd.OutOrStdout(), store.Snapshot(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a panel")
	return cmd
}

// -------------- add ----------------

func newAddCmd(a *app) *cobra.Command {
	var (
		image  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a friend to the seed roster and print the result",
		Example: `  splitbill add "Dana"
  splitbill add Eli --image https://example.com/eli.png`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usagef("usage: splitbill add <name...>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			store.ToggleAddFriend()
			f, ok := store.AddFriend(strings.Join(args, " "), image)
			if !ok {
				return usagef("add: empty name")
			}
			if !asJSON {
				ui.OK(cmd.OutOrStdout(), "added "+f.Name)
			}
			return printRoster(cmd.OutOrStdout(), store.Snapshot(), asJSON)
		},
	}
	cmd.Flags().StringVar(&image, "image", "", "avatar URL (default derived from the new id)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a panel")
	return cmd
}

// -------------- split ----------------

func newSplitCmd(a *app) *cobra.Command {
	var (
		bill, mine, payer string
		asJSON            bool
	)
	cmd := &cobra.Command{
		Use:   "split <friend>",
		Short: "Split one bill with a friend and print the updated roster",
		Example: `  splitbill split Clark --bill 100 --mine 40
  splitbill split sarah --bill 50 --mine 20 --payer friend`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("usage: splitbill split <friend> --bill N [--mine N] [--payer user|friend]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseBill(bill, mine, payer)
			if err != nil {
				return usageError{err}
			}
			delta, err := b.Delta()
			if err != nil {
				return usageError{fmt.Errorf("split: %w", err)}
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			f, err := findFriend(store.Snapshot(), args[0])
			if err != nil {
				return err
			}
			store.SelectFriend(f.ID)
			snap, _ := store.SplitBill(delta)
			if !asJSON {
				updated, _ := snap.Find(f.ID)
				ui.OK(cmd.OutOrStdout(), ui.BalancePhrase(updated))
			}
			return printRoster(cmd.OutOrStdout(), snap, asJSON)
		},
	}
	cmd.Flags().StringVar(&bill, "bill", "", "total bill value")
	cmd.Flags().StringVar(&mine, "mine", "", "your share of the bill (capped at the bill)")
	cmd.Flags().StringVar(&payer, "payer", "user", "who paid the bill: user or friend")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a panel")
	return cmd
}

func parseBill(bill, mine, payer string) (roster.Bill, error) {
	value, err := roster.ParseAmount(bill)
	if err != nil {
		return roster.Bill{}, fmt.Errorf("--bill: %w", err)
	}
	expense, err := roster.ParseAmount(mine)
	if err != nil {
		return roster.Bill{}, fmt.Errorf("--mine: %w", err)
	}
	p, err := model.ParsePayer(payer)
	if err != nil {
		return roster.Bill{}, fmt.Errorf("--payer: %w", err)
	}
	return roster.Bill{Value: value, MyExpense: expense, Payer: p}, nil
}

// -------------- version ----------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "splitbill %s\n", Version)
			return err
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("%s takes no arguments", cmd.CommandPath())
	}
	return nil
}
