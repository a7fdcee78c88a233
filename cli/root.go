package cli

import (
	"os"

	"github.com/optkit/optkit/logger"
	"github.com/spf13/cobra"
)

var debug bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	cobra.OnInitialize(func() {
		if debug {
			logger.SetDebug(true)
		}
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "optkit",
	Short: "Optkit inspects and exercises declarative option registries",
	Long:  `A companion tool for the optkit library: load an optfile, run its scanner against an argument vector, render its help or version text, or create a new optfile interactively.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}
