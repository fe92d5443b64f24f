package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jrh3k5/checkwriter/bank"
	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/config"
	"github.com/jrh3k5/checkwriter/logging"
	"github.com/jrh3k5/checkwriter/store"
)

// app carries what every command needs, built once the flags are parsed.
type app struct {
	config *config.Config
	logger *zap.Logger
	store  *store.FileStore
	checks *check.Service
	caps   check.Capabilities
}

type rootFlags struct {
	configFile string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	root := &cobra.Command{
		Use:           "checkwriter",
		Short:         "Write, preview and print checks for a small business",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "checkwriter.yaml", "the location of the file to be read in as configuration")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "the log level (debug, info, warn, error); overrides the configuration")

	root.AddCommand(
		newWordsCommand(),
		newAccountsCommand(a),
		newVendorsCommand(a),
		newComposeCommand(a),
		newListCommand(a),
		newShowCommand(a),
		newPrintCommand(a),
		newStatusCommand(a),
		newVoidCommand(a),
		newDeleteCommand(a),
		newTotalsCommand(a),
		newYNABExportCommand(a),
	)

	return root
}

func (a *app) init(flags *rootFlags) error {
	cfg, err := config.Read(flags.configFile)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}

	logLevel := flags.logLevel
	if logLevel == "" {
		logLevel = cfg.GetLogLevel()
	}

	logger, err := logging.New(logLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	a.config = cfg
	a.logger = logger
	a.store = store.NewFileStore(cfg.GetDataFile())
	a.checks = check.NewService(a.store, logger)
	a.caps = cfg.Capabilities()

	logger.Debug("initialized", zap.String("dataFile", cfg.GetDataFile()), zap.Bool("canWrite", a.caps.CanWrite))

	return nil
}

// resolveAccount finds a bank account by ID or name. An empty reference selects the only account, if there is just one.
func (a *app) resolveAccount(ctx context.Context, ref string) (*bank.Account, error) {
	if ref != "" {
		return a.store.FindAccount(ctx, ref)
	}

	accounts, err := a.store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}

	if len(accounts) != 1 {
		return nil, fmt.Errorf("%d bank accounts exist; choose one with --account", len(accounts))
	}

	return accounts[0], nil
}

// resolveCheck finds a check by its ID, or by its number on the given (or only) bank account.
func (a *app) resolveCheck(ctx context.Context, ref string, accountRef string) (*check.Check, error) {
	number, err := strconv.Atoi(ref)
	if err != nil {
		return a.checks.Get(ctx, ref)
	}

	account, err := a.resolveAccount(ctx, accountRef)
	if err != nil {
		return nil, err
	}

	return a.checks.GetByNumber(ctx, account.ID, number)
}
