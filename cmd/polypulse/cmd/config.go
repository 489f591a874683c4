package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/polypuls3/polypulse/config"
)

// RW grants -rw------- file permissions
const RW = 0600

// FlagForce allows overwriting an existing config file
const FlagForce = "force"

func getConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration",
	}

	configCmd.AddCommand(getCmdConfigInit(), getCmdConfigShow())

	return configCmd
}

func getCmdConfigInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Writes the effective configuration as TOML to the given file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := getClientCtx(cmd)
			if err != nil {
				return err
			}

			force, err := cmd.Flags().GetBool(FlagForce)
			if err != nil {
				return err
			}

			flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
			if force {
				flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			}

			f, err := os.OpenFile(args[0], flag, RW)
			if err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
			defer f.Close()

			if err := config.WriteTOML(f, clientCtx.config); err != nil {
				return err
			}

			clientCtx.logger.Info("wrote config file", "path", args[0])
			return nil
		},
	}
	cmd.Flags().Bool(FlagForce, false, "overwrite the file if it exists")

	return cmd
}

func getCmdConfigShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Prints the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := getClientCtx(cmd)
			if err != nil {
				return err
			}

			return config.WriteTOML(cmd.OutOrStdout(), clientCtx.config)
		},
	}
}
