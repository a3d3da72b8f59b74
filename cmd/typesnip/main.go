// Package main provides the CLI entrypoint for typesnip.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typesnip/internal/config"
	"github.com/verte-zerg/typesnip/internal/corpus"
	"github.com/verte-zerg/typesnip/internal/model"
	"github.com/verte-zerg/typesnip/internal/session"
	"github.com/verte-zerg/typesnip/internal/store"
	"github.com/verte-zerg/typesnip/internal/tui"
)

const (
	defaultCategory = string(corpus.English)
	defaultTick     = 100 * time.Millisecond
	minTick         = 10 * time.Millisecond
)

var (
	practiceCategory string
	practiceTick     time.Duration
	dbPath           string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typesnip",
		Short:         "TUI typing trainer for prose and code snippets",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceCategory, "category", defaultCategory, "category preselected in the menu")
	rootCmd.Flags().DurationVar(&practiceTick, "tick", defaultTick, "live stats refresh interval")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "snippet database path (default: XDG data dir)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSnippetsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "category", &practiceCategory, fileCfg.Practice.Category)
	if fileCfg.Practice.TickMs != nil && !cmd.Flags().Changed("tick") {
		practiceTick = time.Duration(*fileCfg.Practice.TickMs) * time.Millisecond
	}

	cfg := model.Config{
		Category:     practiceCategory,
		TickInterval: practiceTick,
		DBPath:       dbPath,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typesnip requires an interactive terminal")
	}

	var source corpus.Source
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logErrf("failed to open snippet db, using built-in snippets: %v\n", err)
	} else {
		source = st
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	reportErr := func(err error) {
		logErrf("failed to load user snippets: %v\n", err)
	}
	lib := corpus.NewLibrary(source, corpus.NewPicker(), reportErr)
	categories := lib.Categories(context.Background())
	engine := session.New(lib, session.SystemClock{}, categories)
	if !engine.Select(model.Category(cfg.Category)) {
		return unknownCategoryError(cfg.Category, categories)
	}

	program := tea.NewProgram(tui.NewModel(engine, cfg.TickInterval), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create the config file if needed and open it in $EDITOR",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	created, err := ensureConfigFile(path)
	if err != nil {
		return err
	}
	if created {
		logErrf("created %s\n", path)
	}

	name, args := editorCommand()
	editor := exec.CommandContext(cmd.Context(), name, append(args, path)...)
	editor.Stdin, editor.Stdout, editor.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := editor.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

// ensureConfigFile writes the default template to path unless a file exists.
func ensureConfigFile(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create config: %w", err)
	}
	if _, err := file.WriteString(defaultConfigTemplate()); err != nil {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close after a failed write.
			_ = cerr
		}
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	if err := file.Close(); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}

// editorCommand splits $VISUAL or $EDITOR into a program and its arguments.
func editorCommand() (string, []string) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if parts := strings.Fields(os.Getenv(env)); len(parts) > 0 {
			return parts[0], parts[1:]
		}
	}
	return "vi", nil
}

// loadFileConfig reads the config file and resolves the database path shared
// by all commands.
func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	if fileCfg.Storage.DB != nil && !cmd.Flags().Changed("db") {
		dbPath = *fileCfg.Storage.DB
	}
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	return fileCfg, nil
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typesnip configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# category = %q       # Category preselected in the menu
# tick-ms = %d            # Live stats refresh interval in milliseconds

[storage]
# db = %q
`,
		defaultCategory,
		defaultTick.Milliseconds(),
		config.DefaultDBPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.Category) == "" {
		return fmt.Errorf("--category must not be empty")
	}
	if cfg.TickInterval < minTick {
		return fmt.Errorf("--tick must be at least %s", minTick)
	}
	if cfg.DBPath == "" {
		return fmt.Errorf("--db must not be empty")
	}
	return nil
}

func unknownCategoryError(category string, available []model.Category) error {
	names := make([]string, 0, len(available))
	for _, c := range available {
		names = append(names, string(c))
	}
	lines := []string{
		fmt.Sprintf("category %q not found", category),
		fmt.Sprintf("available: %s", strings.Join(names, ", ")),
		"Run: typesnip snippets list",
		fmt.Sprintf("Import: typesnip snippets add --category %q FILE", category),
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
