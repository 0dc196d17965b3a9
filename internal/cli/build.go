package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"NewsletterDesk/internal/domain"
)

func newBuildCommand(opts *rootOptions) *cobra.Command {
	var (
		header      domain.Header
		sourceNames []string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the plain-text issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if header.Month < 1 || header.Month > 12 {
				return fmt.Errorf("--month must be between 1 and 12, got %d", header.Month)
			}
			if header.Volume <= 0 {
				return fmt.Errorf("--volume must be positive")
			}

			if _, err := opts.app.Build(cmd.Context(), sourceNames, header); err != nil {
				return err
			}

			if path := opts.app.Config().Output.Path; path != "" {
				color.New(color.FgGreen).Fprintf(opts.stderr, "vol.%d を %s に書き出しました\n", header.Volume, path)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&header.Volume, "volume", 0, "issue volume number")
	flags.IntVar(&header.Year, "year", 0, "publication year")
	flags.IntVar(&header.Month, "month", 0, "publication month (1-12)")
	flags.IntVar(&header.Day, "day", 15, "publication day")
	flags.StringVar(&header.IntroFallback, "intro", "", "introduction text used when no はじめに article was submitted")
	flags.StringSliceVar(&sourceNames, "source", nil, "sources to read: local, share or all (default from config)")
	flags.StringVar(&opts.out, "out", "", "write the issue to this file instead of stdout")
	_ = cmd.MarkFlagRequired("volume")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}
