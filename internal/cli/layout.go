package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/agentx-labs/appscaffold/internal/layout"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var layoutYAML bool

func init() {
	layoutCmd.Flags().BoolVar(&layoutYAML, "yaml", false, "Print the layout document as YAML")
	rootCmd.AddCommand(layoutCmd)
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the folders and files that will be generated",
	Long:  `Print the built-in layout without touching the filesystem.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := layout.Default()
		if err != nil {
			return err
		}
		if layoutYAML {
			return printLayoutYAML(cmd, l)
		}
		return printLayoutTable(cmd, l)
	},
}

func printLayoutTable(cmd *cobra.Command, l *layout.Layout) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Layout %s under %s\n\n", l.Version, l.Base)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KIND\tPATH\tCONTENT")
	for _, folder := range l.Folders {
		fmt.Fprintf(w, "dir\t%s\t-\n", folder)
	}
	for _, f := range l.Files {
		content := f.Content
		if content == "" {
			content = "-"
		}
		fmt.Fprintf(w, "file\t%s\t%s\n", f.Path, content)
	}
	return w.Flush()
}

func printLayoutYAML(cmd *cobra.Command, l *layout.Layout) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	return enc.Close()
}
