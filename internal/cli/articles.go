package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newArticlesCommand(opts *rootOptions) *cobra.Command {
	var (
		asJSON      bool
		sourceNames []string
	)

	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Parse submissions and list them in publication order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := opts.app.Articles(cmd.Context(), sourceNames)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(opts.stdout)
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(articles)
			}

			t := newTable(opts.stdout, []string{"DEPT", "FILE", "SIZE(KB)", "MODIFIED", "PREVIEW"})
			for _, a := range articles {
				t.addRow(a.Department, a.Filename, fmt.Sprintf("%.1f", a.SizeKB), a.ModifiedLabel(), a.Preview)
			}
			t.render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().StringSliceVar(&sourceNames, "source", nil, "sources to read: local, share or all (default from config)")
	return cmd
}
