// Package root contains the root command for the application.
package root

import (
	"time"

	"statement-extract/internal/accounts"
	"statement-extract/internal/common"
	"statement-extract/internal/config"
	"statement-extract/internal/currency"
	"statement-extract/internal/engine"
	"statement-extract/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by the convert commands.
type CommonFlags struct {
	Input    string
	Output   string
	JSONOut  string
	Currency bool
}

var (
	// Log is the shared logger instance for commands.
	Log = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags holds the common flag values.
	SharedFlags = CommonFlags{}

	// Batch command flags.
	InputDir  string
	OutputDir string

	eng *engine.Engine

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "statement-extract",
		Short: "Extract account summaries and transactions from flattened bank statements.",
		Long: `statement-extract converts a bank or credit-union monthly statement that
an upstream document converter has already flattened to plain text or a
CSV-like table into a transaction ledger and per-account summaries.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-extract!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}

			Log = logging.NewLogrusAdapter(Cfg.Log.Level, Cfg.Log.Format)
			logging.SetDefaultLogger(Log)
			common.SetLogger(Log)
			common.SetDelimiter(Cfg.DelimiterRune())

			eng = engine.New(buildRegistry(), buildNormalizer(), Log)
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.JSONOut, "json", "", "Optional JSON envelope output file")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Currency, "currency", false, "Apply currency normalization to all monetary values")
}

// Engine returns the engine configured during PersistentPreRun.
func Engine() *engine.Engine {
	return eng
}

func buildRegistry() *accounts.Registry {
	if Cfg.Accounts.File != "" {
		registry, err := accounts.LoadRegistry(Cfg.Accounts.File)
		if err != nil {
			Log.Fatalf("Error loading accounts file: %v", err)
		}
		return registry
	}
	placeholder := accounts.Account{
		Number: Cfg.Accounts.Placeholder.Number,
		Name:   Cfg.Accounts.Placeholder.Name,
	}
	registry := accounts.NewRegistry(Cfg.Accounts.Names, nil, placeholder)
	registry.SetUnknownName(Cfg.Accounts.UnknownName)
	return registry
}

func buildNormalizer() *currency.Normalizer {
	if !SharedFlags.Currency && !Cfg.Currency.Enabled {
		return nil
	}
	source := currency.NewHTTPSource(
		Cfg.Currency.Endpoint,
		Cfg.Currency.Target,
		time.Duration(Cfg.Currency.TimeoutSeconds)*time.Second,
	)
	return currency.NewNormalizer(source, Cfg.DefaultRate(), Cfg.Currency.Target, Log)
}
