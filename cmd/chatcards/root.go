package main

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatcards"
	bt "github.com/fwojciec/chatcards/bubbletea"
	ccjson "github.com/fwojciec/chatcards/json"
	ccyaml "github.com/fwojciec/chatcards/yaml"
	"github.com/spf13/cobra"
)

const defaultLogPath = "chatcards-debug.log"

// Environment variables consulted when the matching flag is not set.
const (
	envMessages = "CHATCARDS_MESSAGES"
	envTheme    = "CHATCARDS_THEME"
	envMode     = "CHATCARDS_MODE"
)

type options struct {
	messagesPath string
	themePath    string
	mode         string
	noAnimation  bool
	retain       int
	debug        bool
	logPath      string
}

// newRootCmd builds the command tree. getenv supplies environment fallbacks.
func newRootCmd(getenv func(string) string) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "chatcards",
		Short: "Browse a conversation as expandable message cards",
		Long: `chatcards shows a conversation as a scrollable list of message cards.
Select a card and press enter, or click it, to expand or collapse its body.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyEnv(&opts, cmd.Flags().Changed, getenv)
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.messagesPath, "messages", "", "path to a JSON message fixture (default: built-in sample)")
	f.StringVar(&opts.themePath, "theme", "", "path to a YAML theme override file")
	f.StringVar(&opts.mode, "mode", string(chatcards.ModeAuto), "display mode: auto, light, dark")
	f.BoolVar(&opts.noAnimation, "no-animation", false, "switch card colors without easing")
	f.IntVar(&opts.retain, "retain", 2, "cards kept realized beyond the screen on each side")
	f.BoolVar(&opts.debug, "debug", false, "write debug logs to --log-file")
	f.StringVar(&opts.logPath, "log-file", defaultLogPath, "debug log path")

	cmd.AddCommand(newSeedCmd())
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [path]",
		Short: "Write the built-in sample conversation as a JSON fixture",
		Long: `seed writes the built-in sample conversation as a JSON fixture, to stdout
or to path. Edit the result and pass it back with --messages.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs := chatcards.SampleMessages()
			if len(args) == 0 {
				return ccjson.Write(cmd.OutOrStdout(), msgs)
			}
			if err := ccjson.Save(args[0], msgs); err != nil {
				return fmt.Errorf("save fixture: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d messages to %s\n", len(msgs), args[0])
			return nil
		},
	}
}

// applyEnv fills options whose flags were not given on the command line
// from the environment. Flags always win.
func applyEnv(opts *options, changed func(string) bool, getenv func(string) string) {
	fallbacks := []struct {
		flag string
		env  string
		dst  *string
	}{
		{"messages", envMessages, &opts.messagesPath},
		{"theme", envTheme, &opts.themePath},
		{"mode", envMode, &opts.mode},
	}
	for _, fb := range fallbacks {
		if changed(fb.flag) {
			continue
		}
		if v := getenv(fb.env); v != "" {
			*fb.dst = v
		}
	}
}

func run(ctx context.Context, opts options) error {
	mode, err := chatcards.ParseDisplayMode(opts.mode)
	if err != nil {
		return err
	}

	msgs, err := loadMessages(opts.messagesPath)
	if err != nil {
		return err
	}

	theme, err := loadTheme(opts.themePath)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(opts.debug, opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	dark := mode.Resolve(lipgloss.HasDarkBackground)
	logger.Info("starting", "messages", len(msgs), "mode", mode, "dark", dark)

	m := bt.New(msgs, theme, bt.Config{
		Dark:        dark,
		NoAnimation: opts.noAnimation,
		Retain:      opts.retain,
		Logger:      logger,
	})
	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

func loadMessages(path string) ([]chatcards.Message, error) {
	if path == "" {
		return chatcards.SampleMessages(), nil
	}
	msgs, err := ccjson.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	return msgs, nil
}

func loadTheme(path string) (chatcards.Theme, error) {
	if path == "" {
		return chatcards.DefaultTheme(), nil
	}
	theme, err := ccyaml.LoadTheme(path, chatcards.DefaultTheme())
	if err != nil {
		return chatcards.Theme{}, fmt.Errorf("load theme: %w", err)
	}
	return theme, nil
}

// openLogger returns a debug logger writing to path when enabled, and a
// discarding logger otherwise. The TUI owns the terminal, so logs never go
// to stderr.
func openLogger(enabled bool, path string) (*slog.Logger, func(), error) {
	if !enabled {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := tea.LogToFile(path, "chatcards")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
