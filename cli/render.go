package cli

import (
	"os"

	"github.com/optkit/optkit"
	"github.com/optkit/optkit/logger"
	"github.com/optkit/optkit/optfile"
	"github.com/spf13/cobra"
)

func init() {
	renderCmd.AddCommand(renderUsageCmd)
	renderCmd.AddCommand(renderVersionCmd)
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the help or version text of an optfile",
}

var renderUsageCmd = &cobra.Command{
	Use:   "usage <optfile>",
	Short: "Render the --help output",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := loadApp(args[0])
		optkit.WriteHelp(os.Stdout, app.Info, app.Registry().Snapshot())
	},
}

var renderVersionCmd = &cobra.Command{
	Use:   "version <optfile>",
	Short: "Render the --version output",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := loadApp(args[0])
		optkit.WriteVersion(os.Stdout, app.Info)
	},
}

func loadApp(path string) *optkit.App {
	file, err := optfile.LoadFile(path)
	if err != nil {
		logger.Fatal(err)
	}

	app, err := file.App(optkit.ModeShortArg)
	if err != nil {
		logger.Fatal(err)
	}

	return app
}
