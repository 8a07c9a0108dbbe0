package cmd

import (
	"github.com/spf13/cobra"

	"ledit/internal/render"
)

func newCreateFileCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "create-file <filename>",
		Short: "Create an empty file, truncating any existing content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			_, err := o.editor.CreateFile(filename)
			return o.report(err, "File '%s' created successfully.", filename)
		},
	}
}

func newCopyFileCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "copy-file <source> <destination>",
		Short: "Copy a file; the copy is recorded in the destination's changelog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, destination := args[0], args[1]
			_, err := o.editor.CopyFile(source, destination)
			return o.report(err, "File copied from '%s' to '%s'.", source, destination)
		},
	}
}

func newDeleteFileCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-file <filename>",
		Short: "Delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if err := o.editor.DeleteFile(filename); err != nil {
				return err
			}
			o.printer.Success("File '%s' deleted successfully.", filename)
			return nil
		},
	}
}

func newShowFileCmd(o *options) *cobra.Command {
	var highlight, html bool
	cmd := &cobra.Command{
		Use:   "show-file <filename>",
		Short: "Print a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if !highlight && !html {
				return o.editor.ShowFile(o.printer.Out(), filename)
			}
			data, err := o.editor.ReadFile(filename)
			if err != nil {
				return err
			}
			if html {
				return render.MarkdownHTML(o.printer.Out(), data)
			}
			return render.Highlight(o.printer.Out(), filename, string(data), o.cfg.Output.HighlightStyle)
		},
	}
	cmd.Flags().BoolVar(&highlight, "highlight", false, "syntax-highlight the file for the terminal")
	cmd.Flags().BoolVar(&html, "html", false, "render the file as Markdown to HTML")
	cmd.MarkFlagsMutuallyExclusive("highlight", "html")
	return cmd
}
