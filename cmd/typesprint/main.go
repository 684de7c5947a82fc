// Package main provides the CLI entrypoint for typesprint.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typesprint/internal/config"
	"github.com/verte-zerg/typesprint/internal/logging"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/phrases"
	"github.com/verte-zerg/typesprint/internal/round"
	"github.com/verte-zerg/typesprint/internal/stats"
	"github.com/verte-zerg/typesprint/internal/store"
	"github.com/verte-zerg/typesprint/internal/tui"
)

const (
	defaultLang     = "en"
	defaultDuration = 60
)

var (
	practiceLang     string
	practiceDuration int
	practicePhrases  string
	practiceBank     string

	logLevel string
	logFile  string

	importLang string

	scoreChars   int
	scoreCorrect int
	scoreTyped   int
	scoreTarget  int
	scoreMinutes float64
	scoreRussian bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "typesprint",
		Short:             "Timed typing sprint",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: loadSettings,
		RunE:              runPracticeCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&practiceBank, "bank", "", "phrase bank database path")
	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "language code")
	rootCmd.Flags().IntVar(&practiceDuration, "duration", defaultDuration, "round length in seconds")
	rootCmd.Flags().StringVar(&practicePhrases, "phrases", "", "phrase file, one phrase per line")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newPhrasesCmd())
	rootCmd.AddCommand(newScoreCmd())

	return rootCmd
}

// loadSettings layers the TOML file and TYPESPRINT_* variables under any
// flag set explicitly on the command line.
func loadSettings(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	fileCfg = config.Merge(fileCfg, envCfg)

	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyIntConfig(cmd, "duration", &practiceDuration, fileCfg.Practice.Duration)
	applyStringConfig(cmd, "phrases", &practicePhrases, fileCfg.Practice.Phrases)
	applyStringConfig(cmd, "bank", &practiceBank, fileCfg.Practice.Bank)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	if fileCfg.Log.File != nil {
		logFile = *fileCfg.Log.File
	}
	if practiceBank == "" {
		practiceBank = config.DefaultBankPath()
	}
	if logFile == "" {
		logFile = config.DefaultLogPath()
	}
	return nil
}

func runPracticeCmd(_ *cobra.Command, _ []string) error {
	cfg := model.Config{
		Lang:        strings.ToLower(strings.TrimSpace(practiceLang)),
		Duration:    practiceDuration,
		PhrasesPath: practicePhrases,
		BankPath:    practiceBank,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; run typesprint in an interactive terminal")
	}

	lvl, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log, closer, err := logging.File(logFile, lvl)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErr().Err(cerr).Msg("failed to close log file")
		}
	}()

	list, err := resolvePhrases(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	picker, err := phrases.NewPicker(list)
	if err != nil {
		return fmt.Errorf("failed to pick phrase: %w", err)
	}
	log.Debug().Int("phrases", picker.Len()).Msg("picker ready")

	r, err := round.New(picker.Next(), cfg.Duration, round.WithLogger(log))
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}
	defer r.Close()

	m := tui.NewModel(r, picker, cfg.Duration, log)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolvePhrases prefers an explicit phrase file, then the phrase bank, then
// the built-in list for the language.
func resolvePhrases(ctx context.Context, cfg model.Config, log zerolog.Logger) ([]string, error) {
	if cfg.PhrasesPath != "" {
		list, err := phrases.LoadPhrases(cfg.PhrasesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load phrases from %s: %w", cfg.PhrasesPath, err)
		}
		log.Info().Str("source", cfg.PhrasesPath).Int("count", len(list)).Msg("phrases loaded")
		return list, nil
	}

	if _, err := os.Stat(cfg.BankPath); err == nil {
		st, err := store.Open(cfg.BankPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open phrase bank: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				log.Warn().Err(cerr).Msg("failed to close phrase bank")
			}
		}()
		count, err := st.CountPhrases(ctx, cfg.Lang)
		if err != nil {
			return nil, fmt.Errorf("failed to count phrases: %w", err)
		}
		if count > 0 {
			stored, err := st.ListPhrases(ctx, cfg.Lang)
			if err != nil {
				return nil, fmt.Errorf("failed to read phrase bank: %w", err)
			}
			log.Info().Str("source", cfg.BankPath).Str("lang", cfg.Lang).Int("count", len(stored)).Msg("phrases loaded")
			return store.Texts(stored), nil
		}
	}

	list, err := phrases.Default(cfg.Lang)
	if err != nil {
		return nil, fmt.Errorf("%w\nImport phrases with: typesprint phrases import --lang %s FILE", err, cfg.Lang)
	}
	log.Info().Str("source", "builtin").Str("lang", cfg.Lang).Int("count", len(list)).Msg("phrases loaded")
	return list, nil
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
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
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

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available phrase languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	counts := map[string]string{}
	for _, lang := range phrases.DefaultLangs() {
		counts[lang] = "builtin"
	}

	if _, err := os.Stat(practiceBank); err == nil {
		st, err := store.Open(practiceBank)
		if err != nil {
			return fmt.Errorf("failed to open phrase bank: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErr().Err(cerr).Msg("failed to close phrase bank")
			}
		}()
		stored, err := st.ListLangs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list languages: %w", err)
		}
		for lang, n := range stored {
			counts[lang] = fmt.Sprintf("%d phrases", n)
		}
	}

	return writeLangs(cmd.OutOrStdout(), counts)
}

func writeLangs(w io.Writer, counts map[string]string) error {
	langs := make([]string, 0, len(counts))
	for lang := range counts {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", lang, counts[lang]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newPhrasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phrases",
		Short: "Manage the phrase bank",
	}
	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a phrase file into the phrase bank",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
	importCmd.Flags().StringVar(&importLang, "lang", defaultLang, "language code of the phrases")
	cmd.AddCommand(importCmd)
	return cmd
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	log := cliLogger(cmd.ErrOrStderr())
	lang := strings.ToLower(strings.TrimSpace(importLang))
	if lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}

	list, err := phrases.LoadPhrases(args[0])
	if err != nil {
		return fmt.Errorf("failed to load phrases: %w", err)
	}
	kept := phrases.Filter(list, phrases.FilterForLang(lang))
	if skipped := len(list) - len(kept); skipped > 0 {
		log.Warn().Int("skipped", skipped).Str("lang", lang).Msg("phrases do not match language")
	}
	if len(kept) == 0 {
		return fmt.Errorf("no %s phrases in %s", lang, args[0])
	}

	st, err := store.Open(practiceBank)
	if err != nil {
		return fmt.Errorf("failed to open phrase bank: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("failed to close phrase bank")
		}
	}()

	n, err := st.ImportPhrases(cmd.Context(), lang, kept)
	if err != nil {
		return fmt.Errorf("failed to import phrases: %w", err)
	}
	log.Info().Int("inserted", n).Int("duplicates", len(kept)-n).Str("lang", lang).Str("bank", practiceBank).Msg("phrases imported")
	return nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute typing speed and accuracy from counts",
		Args:  cobra.NoArgs,
		RunE:  runScoreCmd,
	}
	cmd.Flags().IntVar(&scoreCorrect, "correct", 0, "characters typed correctly")
	cmd.Flags().IntVar(&scoreTyped, "typed", 0, "characters typed in total")
	cmd.Flags().IntVar(&scoreTarget, "target", 0, "length of the target phrase")
	cmd.Flags().IntVar(&scoreChars, "chars", -1, "characters counted for speed (default: --correct)")
	cmd.Flags().Float64Var(&scoreMinutes, "minutes", 1, "time spent in minutes")
	cmd.Flags().BoolVar(&scoreRussian, "russian", false, "score as Cyrillic text (characters per minute)")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	chars := scoreChars
	if chars < 0 {
		chars = scoreCorrect
	}
	speed, err := stats.TypingSpeed(chars, scoreMinutes, scoreRussian)
	if err != nil {
		return err
	}
	res := stats.Result{
		Speed:    speed,
		Unit:     stats.UnitFor(scoreRussian),
		Accuracy: stats.Accuracy(scoreCorrect, scoreTyped, scoreTarget),
	}
	return stats.RenderResult(cmd.OutOrStdout(), res)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typesprint configuration
# Uncomment a value to enable it. TYPESPRINT_* environment variables override
# the file, CLI flags override both.

[practice]
# lang = %q              # Language code
# duration = %d           # Round length in seconds
# phrases = ""            # Phrase file, one phrase per line
# bank = ""               # Phrase bank database path

[log]
# level = %q           # debug, info, warn, error
# file = ""               # Log file used while the TUI runs
`,
		defaultLang,
		defaultDuration,
		logging.DefaultLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	return nil
}

func cliLogger(w io.Writer) zerolog.Logger {
	lvl, err := logging.ParseLevel(logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return logging.Console(w, lvl)
}

func logErr() *zerolog.Event {
	log := cliLogger(os.Stderr)
	return log.Error()
}
