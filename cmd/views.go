package cmd

import (
	"fmt"

	"github.com/bnema/tabboard/internal/adapters/render/tabs"
	"github.com/bnema/tabboard/internal/domain"
	"github.com/spf13/cobra"
)

func newViewsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the available views",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := app.start()
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			labels, err := tabs.LabelsFor(rt.locale)
			if err != nil {
				return err
			}

			for _, view := range domain.Views() {
				marker := " "
				if view == rt.settings.InitialView {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, view, labels.ViewTitle(view))
			}

			return nil
		},
	}
}
