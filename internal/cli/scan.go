package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newScanCommand(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List files in the local submissions folder by department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listing := opts.app.ScanFolder()

			if asJSON {
				enc := json.NewEncoder(opts.stdout)
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(listing.Groups())
			}

			if listing.Len() == 0 {
				fmt.Fprintln(opts.stdout, "提出ファイルはありません")
				return nil
			}

			t := newTable(opts.stdout, []string{"DEPT", "FILE", "SIZE(KB)", "MODIFIED"})
			for _, group := range listing.Groups() {
				for _, f := range group.Files {
					t.addRow(group.Department, f.Filename, fmt.Sprintf("%.1f", f.SizeKB), f.ModifiedLabel())
				}
			}
			t.render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
