// Package main provides the CLI entrypoint for tuicards.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuicards/internal/classify"
	"github.com/verte-zerg/tuicards/internal/config"
	"github.com/verte-zerg/tuicards/internal/model"
)

const (
	defaultSquares    = 10
	defaultClassifier = classify.DefaultName
)

var (
	studyDeck       string
	studyTag        string
	studyClassifier string
	studyShuffle    bool
	studySeed       int64
	studyPlain      bool

	squaresCount int

	importName  string
	importForce bool

	verbose bool
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuicards",
		Short:         "Terminal flashcard trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
		RunE: runMenuCmd,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")
	rootCmd.Flags().StringVar(&studyClassifier, "classifier", defaultClassifier, "answer classifier (ml, simple)")
	rootCmd.Flags().IntVar(&squaresCount, "squares", defaultSquares, "questions in the perfect-squares drill")
	rootCmd.Flags().BoolVar(&studyPlain, "plain", false, "use the line-based console instead of the TUI")
	rootCmd.Flags().StringVar(&studyTag, "tag", "", "only study stored-deck cards carrying this tag")
	rootCmd.Flags().BoolVar(&studyShuffle, "shuffle", false, "shuffle stored-deck cards before studying")
	rootCmd.Flags().Int64Var(&studySeed, "seed", 0, "shuffle seed (0 picks one from the clock)")

	rootCmd.AddCommand(newStudyCmd())
	rootCmd.AddCommand(newSquaresCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newDecksCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadStudyConfig merges the config file into flag values the user did not set.
func loadStudyConfig(cmd *cobra.Command) (model.StudyConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.StudyConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "classifier", &studyClassifier, fileCfg.Study.Classifier)
	applyStringConfig(cmd, "tag", &studyTag, fileCfg.Study.Tag)
	applyBoolConfig(cmd, "shuffle", &studyShuffle, fileCfg.Study.Shuffle)
	applyBoolConfig(cmd, "plain", &studyPlain, fileCfg.Study.Plain)
	applyIntConfig(cmd, "count", &squaresCount, fileCfg.Study.Squares)
	applyIntConfig(cmd, "squares", &squaresCount, fileCfg.Study.Squares)

	cfg := model.StudyConfig{
		Classifier: studyClassifier,
		Tag:        studyTag,
		Shuffle:    studyShuffle,
		Seed:       studySeed,
		Plain:      studyPlain,
		Squares:    squaresCount,
	}
	if err := validateConfig(cfg); err != nil {
		return model.StudyConfig{}, err
	}
	logger.Debug("study config", "classifier", cfg.Classifier, "tag", cfg.Tag, "shuffle", cfg.Shuffle, "plain", cfg.Plain, "squares", cfg.Squares)
	return cfg, nil
}

func validateConfig(cfg model.StudyConfig) error {
	if _, err := classify.ByName(cfg.Classifier); err != nil {
		return fmt.Errorf("--classifier: %w", err)
	}
	if cfg.Squares < 0 {
		return fmt.Errorf("squares count must be >= 0")
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || !hasFlag(cmd, name) {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || !hasFlag(cmd, name) {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || !hasFlag(cmd, name) {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func hasFlag(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Lookup(name) != nil
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
