package cli

import (
	"fmt"
	"os"

	"github.com/agentx-labs/appscaffold/internal/branding"
	"github.com/agentx-labs/appscaffold/internal/layout"
	"github.com/agentx-labs/appscaffold/internal/scaffold"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the generated layout in the current directory",
	Long: `Compare the app/ tree in the current directory against the built-in layout.
Nothing is created or modified.

Each entry is reported as:
  [ OK ]  present with placeholder content
  [MISS]  missing
  [DIFF]  file content differs from its placeholder
  [FAIL]  exists with the wrong kind, or could not be read`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		l, err := layout.Default()
		if err != nil {
			return err
		}

		report := scaffold.Check(osfs.New(cwd), l)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Layout check:")
		report.Print(out)

		p := message.NewPrinter(language.English)
		ok, total := report.Count(scaffold.StatusOK), len(report.Findings)
		p.Fprintf(out, "\n%d of %d entries OK\n", ok, total)

		if !report.Healthy() {
			return fmt.Errorf("%d entries need attention; run '%s' to regenerate them", total-ok, branding.CLIName())
		}
		return nil
	},
}
