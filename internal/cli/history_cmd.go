package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved diagnoses",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.History.List(context.Background(), newHistoryRequest(limit))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(records))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of diagnoses to show")

	cmd.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: "Show a saved diagnosis (an id prefix is enough)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.History.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecord(rec))
			return nil
		},
	})

	return cmd
}

func newHistoryRequest(limit int) app.HistoryRequest {
	req := app.NewHistoryRequest()
	if limit > 0 {
		req.Limit = limit
	}
	return req
}
