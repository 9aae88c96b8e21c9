package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"thicket/app"
	"thicket/app/config"
	"thicket/app/debug"
	"thicket/app/external"
	"thicket/app/state"
	"thicket/app/utils"
	"thicket/app/utils/clipboard"
	"thicket/app/verbs"
	"thicket/tui"
	"thicket/tui/theme"
	"thicket/tui/watcher"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"
)

const watchDebounce = 200 * time.Millisecond

var errNoTerminal = errors.New("thicket needs an interactive terminal")

func init() {
	rootCmd.Flags().BoolVar(&app.Flags.Debug, "debug", false, "Write debug logs to the config directory")
	rootCmd.Flags().BoolVar(&app.Flags.ShowHidden, "hidden", false, "Show hidden files")
	rootCmd.Flags().BoolVarP(&app.Flags.Version, "version", "v", false, "Print version information")
}

var rootCmd = &cobra.Command{
	Use:   "thicket [path]",
	Short: "Navigate a directory tree and run verbs on it",
	Long: `Thicket shows a directory tree in the terminal.
Keys are bound to verbs, which either act on the navigation
(focus, back, parent, toggle hidden) or run a command built
from the selected path.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	if app.Flags.Version {
		fmt.Fprintln(cmd.OutOrStdout(), app.VersionString())
		return nil
	}

	if err := debug.Init(app.Flags.Debug); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "could not set up logging: %v\n", err)
	}
	defer debug.Sync()

	if !theme.IsTerminal() {
		return errNoTerminal
	}

	conf := config.New()

	root, err := rootPath(conf, args)
	if err != nil {
		return err
	}

	opts := tui.OptionsFromConfig(conf)
	opts.Root = root
	opts.Store = loadStore(conf)
	opts.Launcher = external.System{}

	if app.Flags.ShowHidden {
		opts.Tree.ShowHidden = true
	}

	history := state.New()
	if err := history.Read(); err != nil {
		debug.LogErr("reading history:", err)
	}
	opts.History = history

	if err := clipboard.Init(); err != nil {
		debug.LogWarn("clipboard unavailable:", err)
	}

	if conf.Bool(config.Tree, config.WatchChanges) {
		w, err := watcher.New(watchDebounce)
		if err != nil {
			debug.LogErr("starting watcher:", err)
		} else {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			w.Start(ctx)
			defer w.Stop()

			opts.Watcher = w
		}
	}

	m, err := tui.New(opts)
	if err != nil {
		return fmt.Errorf("reading %s: %w", utils.DisplayPath(root), err)
	}

	debug.LogInfo("starting at", root)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}

	return nil
}

// rootPath is the path argument if given, the configured start
// directory otherwise
func rootPath(conf *config.Config, args []string) (string, error) {
	if len(args) == 0 {
		return conf.StartDir()
	}

	return filepath.Abs(utils.ExpandHome(args[0]))
}

func loadStore(conf *config.Config) *verbs.Store {
	store := verbs.NewStore()
	store.FillFromConf(conf.Verbs())
	return store
}
