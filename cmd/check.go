package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kylebrw/slang"
	"github.com/kylebrw/slang/formatter"
)

var checkCmd = &cobra.Command{
	Use:   "check [macrofiles...]",
	Short: "Validate macro definition files without expanding anything",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide macro definition files")
			os.Exit(1)
		}

		failed := false
		for _, path := range args {
			store, err := slang.LoadMacroFiles(path)
			if err != nil {
				fmt.Printf("%s:\n%s", path, formatter.FormatBuildError(err))
				failed = true
				continue
			}
			fmt.Printf("%s: %d macros ok\n", path, store.Len())
		}
		if failed {
			os.Exit(1)
		}
	},
}
