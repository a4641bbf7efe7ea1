package cli

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgo/sorm/internal/codegen"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	Output string
	Types  []string
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen <file.go>",
		Short: "Generate TableName and Identity methods",
		Long: `Generate the sorm.Entity implementation for every struct in a Go file
that has an ID field of type *sorm.RecordID.

The table name is the struct name in lower case. Output defaults to
<file>_sorm.go next to the input, so the command works from go:generate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default <file>_sorm.go)")
	cmd.Flags().StringSliceVarP(&opts.Types, "types", "t", nil, "only generate for these types")

	return cmd
}

func runGen(opts *GenOptions, input string) error {
	file, err := codegen.ParseFile(input, nil, opts.Types)
	if err != nil {
		return opts.errorf("parse models", err)
	}

	var buf bytes.Buffer
	if err := codegen.Generate(&buf, file); err != nil {
		return opts.errorf("generate", err)
	}

	output := opts.Output
	if output == "" {
		output = codegen.OutputPath(input)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return opts.errorf("write output", err)
	}

	names := make([]string, 0, len(file.Models))
	for _, m := range file.Models {
		names = append(names, m.Name)
	}
	opts.Logger.Info("generated entity code",
		slog.String("output", output),
		slog.Any("types", names),
	)
	return nil
}
