package cmd

import (
	"fmt"

	tomlscript "github.com/bnema/tabboard/internal/adapters/script/toml"
	"github.com/spf13/cobra"
)

func newUICmd(app *app) *cobra.Command {
	var recordPath string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive board, chat and profile tabs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := app.start()
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			model, err := app.runUI(cmd.Context(), rt.service, rt.locale, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("run ui: %w", err)
			}

			if recordPath == "" {
				return nil
			}

			script, err := tomlscript.NewScript(recordPath)
			if err != nil {
				return fmt.Errorf("record events: %w", err)
			}

			events := model.Recorded()
			if err := script.Save(cmd.Context(), events); err != nil {
				return fmt.Errorf("record events: %w", err)
			}

			rt.logger.Info("events recorded", "count", len(events), "path", script.Path())
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Recorded %d events to %s\n", len(events), script.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&recordPath, "record", "", "Write the session's events to a replayable script file")

	return cmd
}
