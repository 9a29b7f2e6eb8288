package cmd

import (
	"github.com/bnema/tabboard/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	return newRootCmdFor(app, err)
}

func newRootCmdFor(app *app, wireErr error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tabboard",
		Short:         "tabboard: a message board, chat room and profile in your terminal",
		Long:          "tabboard keeps a per-session message board and chat room in memory and shows them as tabs next to your profile. Nothing is stored once the session ends.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if wireErr != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return wireErr
		}
		return rootCmd
	}

	bindPersistentFlags(rootCmd, app.config)

	rootCmd.AddCommand(
		newVersionCmd(),
		newUICmd(app),
		newReplayCmd(app),
		newViewsCmd(app),
	)

	return rootCmd
}

func bindPersistentFlags(cmd *cobra.Command, cfg *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.String("name", "", "Display name used as the author of new messages")
	flags.String("view", "", "Initial view (board, chat or profile)")
	flags.String("locale", "", "Label language (en or zh)")
	flags.String("log-file", "", "Write debug logs to this file")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	_ = cfg.BindPFlag(config.DisplayNameKey, flags.Lookup("name"))
	_ = cfg.BindPFlag(config.InitialViewKey, flags.Lookup("view"))
	_ = cfg.BindPFlag(config.LocaleKey, flags.Lookup("locale"))
	_ = cfg.BindPFlag(config.LogFileKey, flags.Lookup("log-file"))
	_ = cfg.BindPFlag(config.LogLevelKey, flags.Lookup("log-level"))
}
