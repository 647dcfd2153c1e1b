package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/agentx-labs/appscaffold/internal/branding"
	"github.com/agentx-labs/appscaffold/internal/config"
	"github.com/agentx-labs/appscaffold/internal/layout"
	"github.com/agentx-labs/appscaffold/internal/scaffold"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log each created directory and file to stderr")
	if err := config.BindFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the app/ folder layout for a new web application
(API auth routes, admin pages and components, middleware, utilities) in the
current directory, filling each file with a one-line placeholder comment.

Running it again resets every generated file to its placeholder.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		l, err := layout.Default()
		if err != nil {
			return err
		}

		s := scaffold.New(osfs.New(cwd), l, scaffold.WithLogger(progressLogger(cmd)))
		if _, err := s.Run(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), scaffold.SuccessMessage)
		return nil
	},
}

// progressLogger returns a stderr logger when verbose output is enabled.
func progressLogger(cmd *cobra.Command) *log.Logger {
	if !config.GetBool(config.KeyVerbose) {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), branding.CLIName()+": ", 0)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
