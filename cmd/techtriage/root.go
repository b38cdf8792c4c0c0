package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mrhapile/techtriage/pkg/config"
	"github.com/mrhapile/techtriage/pkg/kb"
)

var (
	cfgFile   string
	flagLang  string
	flagRules string
	verbose   bool

	cfg    *config.Config
	logger *zap.Logger
	store  *kb.Store
)

var rootCmd = &cobra.Command{
	Use:   "techtriage",
	Short: "Bilingual troubleshooting assistant for computers and mobile devices",
	Long: `techtriage diagnoses computer and mobile problems with a rule-based
expert system: describe the problem, answer a few symptom questions, and
get ranked probable causes with remediation steps in English or Arabic.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./techtriage.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "conversation language: en or ar")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules-dir", "", "directory with rule catalog files (default: embedded catalogs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(diagnoseCmd, verifyCmd, chatCmd, rulesCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	if flagLang != "" {
		cfg.Language = flagLang
	}
	if flagRules != "" {
		cfg.RulesDir = flagRules
	}

	logger, err = buildLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	if cfg.RulesDir != "" {
		store, err = kb.LoadDir(cfg.RulesDir)
	} else {
		store, err = kb.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("loading rule catalog: %w", err)
	}
	logger.Debug("rule catalog loaded",
		zap.Int("rules", store.Len()),
		zap.Strings("categories", store.Categories()))
	return nil
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
