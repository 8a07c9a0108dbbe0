package cmd

import (
	"github.com/spf13/cobra"

	"ledit/internal/changelog"
	"ledit/internal/tui"
)

func newChangelogCmd(o *options) *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "changelog <filename>",
		Short: "Replay the changelog recorded for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			entries, err := o.editor.Changelog(filename)
			if err != nil {
				return err
			}
			if interactive {
				return tui.Run(filename, entries)
			}
			return changelog.Format(o.printer.Out(), filename, entries)
		},
	}
	cmd.Flags().BoolVar(&interactive, "tui", false, "browse the changelog interactively")
	return cmd
}
