// Package cli contains the newsletterdesk commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"NewsletterDesk/internal/app"
	"NewsletterDesk/internal/config"
	"NewsletterDesk/internal/infrastructure/share"
	"NewsletterDesk/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	folder     string
	shareURL   string
	password   string
	out        string

	stdout io.Writer
	stderr io.Writer
	app    *app.Application
}

// NewRootCommand builds the command tree writing to the given streams.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "newsletterdesk",
		Short: "Collect newsletter submissions and assemble the issue",
		Long: `newsletterdesk gathers article submissions for メルマガいたしん from a local
folder and/or a password-protected cloud share, orders them by department and
renders the plain-text issue.

Example usage:
  newsletterdesk scan --folder ./原稿提出
  newsletterdesk articles --source all
  newsletterdesk build --volume 30 --year 2024 --month 7 --out vol30.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (default $NEWSLETTER_CONFIG)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	flags.StringVar(&opts.folder, "folder", "", "local submissions folder")
	flags.StringVar(&opts.shareURL, "share-url", "", "public share link (…/index.php/s/<token>)")
	flags.StringVar(&opts.password, "password", "", "share password")

	root.AddCommand(newScanCommand(opts), newArticlesCommand(opts), newBuildCommand(opts))
	return root
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	var cfg config.Config
	if o.configPath != "" {
		cfg = config.LoadFrom(o.configPath)
	} else {
		cfg = config.Load()
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = o.logFormat
	}
	if flags.Changed("folder") {
		cfg.Submissions.Folder = o.folder
	}
	if flags.Changed("share-url") {
		cfg.Share.URL = o.shareURL
	}
	if flags.Changed("password") {
		cfg.Share.Password = o.password
	}
	if o.out != "" {
		cfg.Output.Path = o.out
	}

	logger := logging.NewWithWriter(o.stderr, cfg.Logging.Level, cfg.Logging.Format)
	application, err := app.New(cfg, logger, o.stdout)
	if err != nil {
		return err
	}
	o.app = application
	return nil
}

// Execute runs the CLI against the process streams and returns the exit code.
func Execute() int {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "エラー: %s\n", userMessage(err))
		return 1
	}
	return 0
}

// userMessage strips wrapping context from share failures, which already carry
// a complete sentence for the user.
func userMessage(err error) string {
	var shareErr *share.Error
	if errors.As(err, &shareErr) {
		return shareErr.Message
	}
	return fmt.Sprint(err)
}
