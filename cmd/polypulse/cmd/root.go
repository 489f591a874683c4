package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/polypuls3/polypulse/app"
	"github.com/polypuls3/polypulse/config"
	"github.com/polypuls3/polypulse/query"
)

// persistent flags
const (
	FlagConfig    = "config"
	FlagEnvFile   = "env-file"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagSource    = "source"
	FlagChainID   = "chain-id"
	FlagVoter     = "voter"
)

// config keys the persistent flags are bound to
var flagKeys = map[string]string{
	FlagLogLevel:  "log_level",
	FlagLogFormat: "log_format",
	FlagSource:    "data_source.source",
	FlagChainID:   "default_chain_id",
	FlagVoter:     "voter",
}

type clientCtxKey struct{}

type clientCtx struct {
	viper   *viper.Viper
	config  config.Config
	logger  log.Logger
	appOpts []app.Option
}

// NewRootCmd creates the polypulse command tree. The given options are passed on to every App the commands create.
func NewRootCmd(appOpts ...app.Option) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "polypulse",
		Short:         "Read polls from the PolyPulse contract or its index",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			cfg, err := config.Load(v, v.GetString(FlagConfig), v.GetString(FlagEnvFile))
			if err != nil {
				return err
			}

			logger, err := app.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			cmd.SetContext(context.WithValue(cmd.Context(), clientCtxKey{}, &clientCtx{
				viper:   v,
				config:  cfg,
				logger:  logger,
				appOpts: appOpts,
			}))

			return nil
		},
	}
	rootCmd.SetContext(context.Background())

	setPersistentFlags(rootCmd)
	rootCmd.AddCommand(
		getPollCommand(),
		getVotesCommand(),
		getServeCommand(),
		getConfigCommand(),
	)

	return rootCmd
}

func setPersistentFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig()

	cmd.PersistentFlags().String(FlagConfig, "", "path to a TOML config file")
	cmd.PersistentFlags().String(FlagEnvFile, ".env", "path to a .env file, ignored if it does not exist")
	cmd.PersistentFlags().String(FlagLogLevel, defaults.LogLevel, "log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().String(FlagLogFormat, defaults.LogFormat, "log format (plain|json)")
	cmd.PersistentFlags().String(FlagSource, string(defaults.DataSource.Source), "data source (contract|index|auto)")
	cmd.PersistentFlags().Uint64(FlagChainID, defaults.DefaultChainID, "chain to read from")
	cmd.PersistentFlags().String(FlagVoter, "", "address used when a command does not name a voter")
}

// bindFlags binds the persistent flags to viper. Flags set on the command line take precedence over
// the environment and the config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, name := range []string{FlagConfig, FlagEnvFile} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return err
		}
	}

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}

	return nil
}

func getClientCtx(cmd *cobra.Command) (*clientCtx, error) {
	ctx, ok := cmd.Context().Value(clientCtxKey{}).(*clientCtx)
	if !ok {
		return nil, fmt.Errorf("command %s was not initialized", cmd.Name())
	}

	return ctx, nil
}

// runWithApp connects to the configured backends, runs fn and releases the connections afterwards
func runWithApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	clientCtx, err := getClientCtx(cmd)
	if err != nil {
		return err
	}

	a, err := app.New(cmd.Context(), clientCtx.logger, clientCtx.config, clientCtx.appOpts...)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(cmd.Context(), a)
}

// printEnvelope writes the envelope as indented JSON and returns its error, if any, so the exit code reflects it
func printEnvelope[T any](cmd *cobra.Command, env query.Envelope[T]) error {
	bz, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(bz)); err != nil {
		return err
	}

	if env.IsError {
		return env.Err
	}

	return nil
}
