package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kylebrw/slang/internal/macro"
)

var initPath string

// initCmd: slang init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a starter macro set file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initMacroFile(initPath); err != nil {
			logger.Error("Error initializing macro file", zap.Error(err))
			return
		}
		fmt.Printf("Macro set file created: %s\n", initPath)
	},
}

func init() {
	initCmd.Flags().StringVarP(&initPath, "output", "o", ".slang.yaml", "Path of the macro set file to create")
}

func initMacroFile(path string) error {
	set := macro.SetFile{
		Macros: []macro.SetEntry{
			{
				Name:     "greet",
				Pattern:  "greet(name)",
				Template: "hello, :[name]!",
			},
			{
				Name:     "unless",
				Pattern:  "unless { ... }",
				Template: "if not :[body]",
			},
		},
	}
	d, err := yaml.Marshal(set)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
