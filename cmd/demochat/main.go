package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"demochat/pkg/chat"
	"demochat/pkg/config"
	"demochat/pkg/logging"
	"demochat/pkg/ui"
	"demochat/pkg/version"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errReported marks failures whose message was already written to stderr.
var errReported = errors.New("reported")

type app struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
	logCloser  io.Closer

	// isTerminal reports whether stdout can host the TUI.
	isTerminal func() bool
	// runTUI starts the interactive program.
	runTUI func(ctx context.Context, m ui.Model) error
}

func main() {
	a := &app{
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		runTUI: func(ctx context.Context, m ui.Model) error {
			_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
			return err
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd(a).ExecuteContext(ctx)
	// PersistentPostRun is skipped when a command fails.
	a.closeLog()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "demochat",
		Short: "A terminal chat widget with simulated assistant replies",
		Long: `demochat is a chat interface for the terminal.

Every message gets one of a few canned replies after a short random delay.
Nothing is sent to a model or over the network.

Run without arguments to start the interactive chat.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.GetConfigPath(), "path to the config file")

	root.AddCommand(newAskCmd(a), newVersionCmd(), newConfigCmd(a))
	return root
}

// setup loads and validates the config and opens the log file. A log file
// that cannot be opened is reported on stderr and logging is disabled.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", a.configPath, err)
	}
	a.cfg = cfg

	logger, closer, err := logging.Init(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
	}
	a.logger = logger
	a.logCloser = closer
	a.logger.Info("config_loaded", "config_path", a.configPath, "version", version.Summary())
	return nil
}

func (a *app) closeLog() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}

func (a *app) runInteractive(cmd *cobra.Command) error {
	if !a.isTerminal() {
		fmt.Fprintln(cmd.ErrOrStderr(), "demochat needs an interactive terminal. Use `demochat ask <message>` for a single headless turn.")
		return errReported
	}

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	m := ui.NewModel(ui.Options{
		Config:     a.cfg,
		Session:    ui.NewSessionFromConfig(a.cfg, a.logger),
		Logger:     a.logger,
		CurrentDir: dir,
	})

	if err := a.runTUI(cmd.Context(), m); err != nil {
		a.logger.Error("ui_failed", "error", err)
		return fmt.Errorf("running chat: %w", err)
	}
	a.logger.Info("ui_exit", "messages", m.Session().Len())
	return nil
}

func newAskCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [message]",
		Short: "Send one message and print the simulated reply",
		Long: `Sends a single message without the interactive interface.

The message is taken from the arguments, or read from stdin when none are
given. Press Ctrl+C to cancel while waiting for the reply.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = string(data)
			}
			sess := ui.NewSessionFromConfig(a.cfg, a.logger)
			return ask(cmd.Context(), sess, text, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// ask runs one headless turn on sess. Rejected input is reported on stderr
// with the same notice the interactive widget shows.
func ask(ctx context.Context, sess *chat.Session, text string, stdout, stderr io.Writer) error {
	turn, err := sess.Submit(text)
	if err != nil {
		fmt.Fprintln(stderr, chat.UserNotice(err))
		return errReported
	}
	fmt.Fprintf(stdout, "You: %s\n", turn.User.Text)

	reply, err := sess.Await(ctx, turn)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "Cancelled.")
			return errReported
		}
		return fmt.Errorf("waiting for reply: %w", err)
	}
	fmt.Fprintf(stdout, "Assistant: %s\n", reply.Text)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// version must work even with a broken config file.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Details())
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	cfgCmd.AddCommand(&cobra.Command{
		Use:               "path",
		Short:             "Print the config file location",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.configPath)
		},
	})
	return cfgCmd
}
