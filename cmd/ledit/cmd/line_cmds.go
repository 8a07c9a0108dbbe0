package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"ledit/internal/editor"
)

// report prints the confirmation for a mutating operation. A *LogError still
// means the file was changed, so the confirmation is printed before the
// error is returned.
func (o *options) report(err error, format string, a ...any) error {
	var logErr *editor.LogError
	if err != nil && !errors.As(err, &logErr) {
		return err
	}
	o.printer.Success(format, a...)
	return err
}

func newAppendLineCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "append-line <filename> <line_content>",
		Short: "Append a line to the end of a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			_, err := o.editor.AppendLine(filename, args[1])
			return o.report(err, "Appended line to '%s' successfully.", filename)
		},
	}
}

func newInsertLineCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "insert-line <filename> <line_number> <line_content>",
		Short: "Insert a line so it becomes line_number (1 to lines+1)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			n, err := editor.ParseLineNumber(args[1])
			if err != nil {
				return err
			}
			_, err = o.editor.InsertLine(filename, n, args[2])
			return o.report(err, "Inserted line at %d in '%s' successfully.", n, filename)
		},
	}
}

func newDeleteLineCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-line <filename> <line_number>",
		Short: "Delete line line_number (1 to lines)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			n, err := editor.ParseLineNumber(args[1])
			if err != nil {
				return err
			}
			_, err = o.editor.DeleteLine(filename, n)
			return o.report(err, "Deleted line %d from '%s' successfully.", n, filename)
		},
	}
}

func newShowLineCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show-line <filename> <line_number>",
		Short: "Print a single line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := editor.ParseLineNumber(args[1])
			if err != nil {
				return err
			}
			line, err := o.editor.ShowLine(args[0], n)
			if err != nil {
				return err
			}
			o.printer.Line("Line %d: %s", n, line)
			return nil
		},
	}
}

func newLineCountCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "line-count <filename>",
		Short: "Print the number of lines in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			count, err := o.editor.LineCount(filename)
			if err != nil {
				return err
			}
			o.printer.Line("File '%s' has %d line(s).", filename, count)
			return nil
		},
	}
}

func newTrimCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "trim <filename>",
		Short: "Remove trailing whitespace from every line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if _, err := o.editor.Trim(filename); err != nil {
				return err
			}
			o.printer.Success("Trimmed trailing whitespace from '%s' successfully.", filename)
			return nil
		},
	}
}

func newFindCmd(o *options) *cobra.Command {
	var fuzzy bool
	cmd := &cobra.Command{
		Use:   "find <filename> <search_string>",
		Short: "Print the lines containing search_string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, query := args[0], args[1]
			matches, err := o.editor.Find(filename, query, fuzzy)
			if err != nil {
				return err
			}
			for _, m := range matches {
				o.printer.Line("Line %d: %s", m.Line, m.Text)
			}
			if len(matches) == 0 {
				o.printer.Header("No matches found for '%s' in '%s'.", query, filename)
			} else {
				o.printer.Header("Found %d matching line(s) for '%s' in '%s'.", len(matches), query, filename)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "match search_string as a fuzzy subsequence, best matches first")
	return cmd
}
