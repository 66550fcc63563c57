package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hadron43/pgn-manager/internal/config"
)

const programVersion = "0.1.0"

// app carries the configuration and logger shared by all commands.
type app struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop().Sugar()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "pgn-manager",
		Short:         "Check, normalize, and inspect PGN game files",
		Version:       programVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	root.PersistentFlags().Int("workers", 0, "number of games processed concurrently")
	root.PersistentFlags().String("format", "", "output format: text or json")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().Bool("strict", false, "require standard algebraic notation")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("workers") {
			cfg.Workers, _ = flags.GetInt("workers")
		}
		if flags.Changed("format") {
			cfg.Format, _ = flags.GetString("format")
		}
		if flags.Changed("log-level") {
			cfg.LogLevel, _ = flags.GetString("log-level")
		}
		if flags.Changed("strict") {
			cfg.Strict, _ = flags.GetBool("strict")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log = log
		return nil
	}

	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newDumpCmd(a))
	return root
}

func newLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
