package ui

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/optkit/optkit/logger"
)

// Prompt asks for a single line of input. validate may be nil. An
// aborted prompt returns the empty string.
func Prompt(label string, defaultValue string, validate func(string) error) string {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  defaultValue,
		Validate: validate,
	}

	result, err := prompt.Run()
	if err == promptui.ErrAbort || err == promptui.ErrInterrupt {
		logger.Fatal("aborted")
	} else if err != nil {
		logger.Fatal(err)
	}

	return result
}

// Confirm asks a yes/no question and reports the answer.
func Confirm(label string, defaultValue bool) bool {
	d := "y/N"
	dv := "n"
	if defaultValue {
		d = "Y/n"
		dv = "y"
	}

	prompt := promptui.Prompt{
		Label:       label,
		IsConfirm:   true,
		Default:     dv,
		HideEntered: true,
		Templates: &promptui.PromptTemplates{
			Confirm: fmt.Sprintf("{{ . }}? [%s]: ", d),
		},
	}

	_, err := prompt.Run()
	if err == promptui.ErrInterrupt {
		logger.Fatal("aborted")
	}

	return err == nil
}
