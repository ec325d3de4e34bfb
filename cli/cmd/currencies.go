package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func currenciesCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "currencies",
		Aliases: []string{"list"},
		Short:   "List the currency codes curr knows about",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTable("Code", "Name", "Symbol")

			for _, code := range s.config.Catalog.Codes() {
				cur, _ := s.config.Catalog.Lookup(code)
				t.Row(cur.Code, cur.Name, cur.Symbol)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())

			return err
		},
	}
}
