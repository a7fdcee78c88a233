package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/optkit/optkit"
	"github.com/optkit/optkit/cli/ui"
	"github.com/optkit/optkit/logger"
	"github.com/optkit/optkit/optfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a new optfile interactively",
	Long:  `Create a new optfile interactively`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "optfile.yaml"
		if len(args) > 0 {
			path = args[0]
		}

		zap.S().Infof("* %s *", color.BlueString("optkit init"))

		if _, err := os.Stat(path); err == nil {
			logger.Fatal("optfile already exists")
		}

		file := &optfile.File{
			Program:     ui.Prompt("Program name", "", notEmpty),
			Version:     ui.Prompt("Version", "1.0.0", nil),
			Author:      ui.Prompt("Author", "", nil),
			Description: ui.Prompt("Description", "", nil),
		}
		file.Year, _ = strconv.Atoi(ui.Prompt("Year", strconv.Itoa(time.Now().Year()), validYear))

		for ui.Confirm("Add an option", len(file.Options) == 0) {
			def := optfile.Definition{
				Short: ui.Prompt("Short name (empty for none)", "", validShort),
				Long:  ui.Prompt("Long name (empty for none)", "", nil),
			}
			if def.Short == "" && def.Long == "" {
				logger.Warn("an option needs a short or a long name")
				continue
			}

			def.TakesArg = ui.Confirm("Takes an argument", false)
			def.Description = ui.Prompt("Description", "", nil)

			file.Options = append(file.Options, def)
		}

		// building the app catches duplicate names before writing
		if _, err := file.App(optkit.ModeShortArg); err != nil {
			logger.Fatal(err)
		}

		data, err := file.Marshal()
		if err != nil {
			logger.Fatal(err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			logger.Fatal("failed to write optfile, ", err)
		}

		logger.Infof("wrote %s", path)
	},
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("cannot be empty")
	}

	return nil
}

func validShort(s string) error {
	if len(s) > 1 {
		return fmt.Errorf("must be a single character")
	}

	return nil
}

func validYear(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be a number")
	}

	return nil
}
