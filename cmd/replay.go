package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/tabboard/internal/adapters/render/tabs"
	tomlscript "github.com/bnema/tabboard/internal/adapters/script/toml"
	"github.com/spf13/cobra"
)

func newReplayCmd(app *app) *cobra.Command {
	var scriptPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Apply a script of UI events to a fresh session and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := app.start()
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			script, err := tomlscript.NewScript(scriptPath)
			if err != nil {
				return err
			}

			snapshot, err := rt.service.Replay(cmd.Context(), script)
			if err != nil {
				return fmt.Errorf("replay %s: %w", script.Path(), err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snapshot)
			}

			rendered, err := app.renderer(snapshot, tabs.RenderOptions{Locale: rt.locale})
			if err != nil {
				return fmt.Errorf("render session: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", "", "Path to a TOML event script")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the final session as JSON")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}
