// Package main provides the CLI entrypoint for wordrush.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordrush/internal/config"
	"github.com/verte-zerg/wordrush/internal/feedback"
	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/generator"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/stats"
	"github.com/verte-zerg/wordrush/internal/store"
	"github.com/verte-zerg/wordrush/internal/tui"
	"github.com/verte-zerg/wordrush/internal/wordlist"
)

const (
	defaultSound    = true
	defaultHistory  = true
	defaultLogLevel = "warn"
)

var (
	gameSound     bool
	gameHistory   bool
	gameWordsFile string
	logLevel      string

	statsSince string
	statsLast  int

	fileCfg config.FileConfig
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "wordrush",
		Short:             "Type the word before the clock runs out",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: loadSettings,
		RunE:              runGameCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("WORDRUSH_LOG_LEVEL", defaultLogLevel), "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&gameSound, "sound", defaultSound, "ring the terminal bell on keystrokes")
	rootCmd.Flags().BoolVar(&gameHistory, "history", defaultHistory, "save finished games")
	rootCmd.Flags().StringVar(&gameWordsFile, "words-file", "", "custom word list, one word per line")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// loadSettings reads the config file once per invocation and sets the log level.
func loadSettings(cmd *cobra.Command, _ []string) error {
	loaded, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg = loaded
	if !cmd.Flags().Changed("log-level") && os.Getenv("WORDRUSH_LOG_LEVEL") == "" && fileCfg.Game.LogLevel != nil {
		logLevel = *fileCfg.Game.LogLevel
	}
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level value: %w", err)
	}
	logger = logger.Level(lvl)
	return nil
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	applyBoolConfig(cmd, "sound", &gameSound, fileCfg.Game.Sound)
	applyBoolConfig(cmd, "history", &gameHistory, fileCfg.Game.History)
	applyStringConfig(cmd, "words-file", &gameWordsFile, fileCfg.Game.WordsFile)

	cfg := model.Config{
		Sound:     gameSound,
		History:   gameHistory,
		WordsFile: gameWordsFile,
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("wordrush needs an interactive terminal")
	}

	words, err := resolveWords(cfg)
	if err != nil {
		return err
	}

	var history tui.HistoryStore
	if cfg.History {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logger.Error().Err(cerr).Msg("failed to close db")
			}
		}()
		history = st
	}

	var beeper feedback.Beeper = feedback.Nop{}
	if cfg.Sound {
		beeper = feedback.NewBell(os.Stderr)
	}

	gameLog, closeLog := openGameLog(config.DefaultLogPath(), logger)
	defer closeLog()

	session := game.NewSession(words, generator.New())
	m := tui.NewModel(cfg, session, history, beeper, clockwork.NewRealClock(), gameLog)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// openGameLog redirects base to a file for as long as the game screen is up.
// Logs are discarded when the file cannot be opened.
func openGameLog(path string, base zerolog.Logger) (zerolog.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return base.Output(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return base.Output(io.Discard), func() {}
	}
	return base.Output(f), func() {
		if cerr := f.Close(); cerr != nil {
			logger.Error().Err(cerr).Msg("failed to close game log")
		}
	}
}

func resolveWords(cfg model.Config) ([]string, error) {
	if cfg.WordsFile == "" {
		return wordlist.Default(), nil
	}
	words, err := wordlist.LoadWords(cfg.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", cfg.WordsFile, err)
	}
	logger.Debug().Str("path", cfg.WordsFile).Int("words", len(words)).Msg("loaded custom word list")
	return words, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show game history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N games")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Error().Err(cerr).Msg("failed to close db")
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, model.HistoryConfig{Since: sinceTime, Last: statsLast})
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderHistoryTable(out, report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordrush configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# sound = %t              # Ring the terminal bell on keystrokes
# history = %t            # Save finished games
# words-file = ""         # Custom word list, one word per line (a-z only)
# log-level = %q        # debug, info, warn, error
`,
		defaultSound,
		defaultHistory,
		defaultLogLevel,
	)
}
