package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/optkit/optkit"
	"github.com/optkit/optkit/logger"
	"github.com/optkit/optkit/optfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkMode string

func init() {
	checkCmd.Flags().StringVarP(&checkMode, "mode", "m", "short", "Short option handling: short or multi")
	rootCmd.AddCommand(checkCmd)
}

var errColor = color.New(color.FgRed, color.Bold)

var checkCmd = &cobra.Command{
	Use:   "check <optfile> [-- args...]",
	Short: "Scan an argument vector against an optfile",
	Long:  `Load an optfile and run its scanner against the given argument vector, reporting matched options, bound values and positional arguments.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode, err := parseMode(checkMode)
		if err != nil {
			logger.Fatal(err)
		}

		file, err := optfile.LoadFile(args[0])
		if err != nil {
			logger.Fatal(err)
		}

		app, err := file.App(mode)
		if err != nil {
			logger.Fatal(err)
		}

		zap.S().Infof("* %s *", color.CyanString("optkit check"))

		res, err := app.Parse(append([]string{file.Program}, args[1:]...))
		if err != nil {
			var scanErr *optkit.ScanError
			if errors.As(err, &scanErr) {
				fmt.Fprintf(os.Stderr, "%s %s\n", errColor.Sprint("error:"), scanErr)
				os.Exit(1)
			}

			logger.Fatal(err)
		}

		if res.HelpShown() || res.VersionShown() {
			return
		}

		for _, opt := range app.Registry().Snapshot() {
			if !opt.Seen() {
				logger.Debugf("%s not seen", opt.String())
				continue
			}

			if value, ok := opt.Arg(); ok {
				logger.Infof("%s = %q", opt.String(), value)
			} else {
				logger.Infof("%s set", opt.String())
			}
		}

		if len(res.Args()) > 0 {
			logger.Infof("positional: %v", res.Args())
		}
	},
}

func parseMode(s string) (optkit.Mode, error) {
	switch s {
	case "short":
		return optkit.ModeShortArg, nil
	case "multi":
		return optkit.ModeMultiFlag, nil
	}

	return 0, fmt.Errorf("unknown mode %q, expected short or multi", s)
}
