package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kylebrw/slang"
	"github.com/kylebrw/slang/formatter"
)

var (
	macroFiles []string
	inPath     string
	outPath    string
)

var expandCmd = &cobra.Command{
	Use:   "expand [paths...]",
	Short: "Expand macros in the given input",
	Long: `Expands macros from the definition files over the input.

Without positional paths the input file (or stdin) is expanded to the output
file (or stdout). With positional paths every named file or directory is
expanded and each result is written next to its source with a .out suffix.
Example) slang expand -m macros.slang -i input.txt -o output.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(macroFiles) == 0 {
			fmt.Println("error: Please provide at least one macro definition file")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		store, err := slang.LoadMacroFiles(macroFiles...)
		if err != nil {
			fmt.Print(formatter.FormatBuildError(err))
			os.Exit(1)
		}

		if len(args) == 0 {
			return expandStream(store, inPath, outPath)
		}
		return expandPaths(ctx, logger, store, args)
	},
}

func init() {
	expandCmd.Flags().StringSliceVarP(&macroFiles, "macros", "m", nil, "Macro definition files (text or YAML)")
	expandCmd.Flags().StringVarP(&inPath, "input", "i", "", "The input file to macro expand (default stdin)")
	expandCmd.Flags().StringVarP(&outPath, "output", "o", "", "The file to write the expanded input to (default stdout)")
}

// expandStream runs the single-input form: one file or stdin, one file or
// stdout.
func expandStream(store *slang.MacroStore, in, out string) error {
	var data []byte
	var err error
	if in == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(in)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	output := slang.Expand(string(data), store)

	if out == "" {
		_, err = os.Stdout.WriteString(output)
		return err
	}
	return os.WriteFile(out, []byte(output), 0o644)
}

// expandPaths runs the multi-file form and writes each result next to its
// source.
func expandPaths(ctx context.Context, logger *zap.Logger, store *slang.MacroStore, paths []string) error {
	results, err := slang.ExpandFiles(ctx, logger, store, paths)
	if err != nil {
		logger.Error("Error expanding files", zap.Error(err))
		os.Exit(1)
	}

	for _, res := range results {
		if err := os.WriteFile(res.Path+".out", []byte(res.Output), 0o644); err != nil {
			logger.Error("Error writing result", zap.String("file", res.Path), zap.Error(err))
			os.Exit(1)
		}
	}
	return nil
}
