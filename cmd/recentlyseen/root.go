package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AntonStoeckl/recently-seen-dragons/shell/config"
)

const (
	flagConfig    = "config"
	flagDSN       = "dsn"
	flagDriver    = "driver"
	flagLogLevel  = "log-level"
	flagRealm     = "realm"
	flagThreshold = "threshold"
	flagAt        = "at"
	flagJSON      = "json"
)

// flagBindings maps command line flags to the config keys they override.
var flagBindings = map[string]string{
	flagDSN:       config.KeyDatabaseDSN,
	flagDriver:    config.KeyDatabaseDriver,
	flagLogLevel:  config.KeyLogLevel,
	flagThreshold: config.KeyRecencyThreshold,
}

type rootOptions struct {
	configFile string
	cfg        config.Config
	logger     *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "recentlyseen",
		Short: "Find the dragons of a realm that were sighted recently",
		Long: `recentlyseen keeps dragons and sightings of dragons in Postgres and answers
which dragons of a realm were sighted within a recency threshold.

Configuration is read from recentlyseen.yaml (or --config), RECENTLYSEEN_* environment
variables, and the flags below.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, flagConfig, "", "config file (default ./recentlyseen.yaml if present)")
	cmd.PersistentFlags().String(flagDSN, "", "Postgres DSN")
	cmd.PersistentFlags().String(flagDriver, "", "database driver: pgx, sqlx, or sql")
	cmd.PersistentFlags().String(flagLogLevel, "", "log level: DEBUG, INFO, WARN, ERROR")

	cmd.AddCommand(
		newInitSchemaCommand(opts),
		newAddDragonCommand(opts),
		newSightCommand(opts),
		newFindCommand(opts),
		newSeedCommand(opts),
	)

	return cmd
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	v, err := config.NewViper(o.configFile)
	if err != nil {
		return err
	}

	if err = bindFlags(v, cmd); err != nil {
		return err
	}

	if o.cfg, err = config.FromViper(v); err != nil {
		return err
	}

	o.logger, err = o.cfg.Log.NewLogger(cmd.ErrOrStderr())

	return err
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flagName, key := range flagBindings {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}

	return nil
}
