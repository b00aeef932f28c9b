package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/habitual/internal/constants"
)

// ErrNotInteractive is returned when a value is missing and there is no
// terminal to ask for it.
var ErrNotInteractive = errors.New("missing input and no terminal to prompt on")

// IsTerminal reports whether both stdin and stdout are attached to a terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// Ask returns value if set, otherwise prompts for it. secret hides the
// typed characters.
func (c *Context) Ask(value, title string, secret bool) (string, error) {
	if value != "" {
		return value, nil
	}
	if !c.Interactive {
		return "", fmt.Errorf("%w: %s", ErrNotInteractive, strings.ToLower(title))
	}
	input := huh.NewInput().Title(title).Value(&value)
	if secret {
		input = input.EchoMode(huh.EchoModePassword)
	}
	if err := input.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm asks a yes/no question. Without a terminal it returns assume.
func (c *Context) Confirm(title string, assume bool) (bool, error) {
	if !c.Interactive {
		return assume, nil
	}
	ok := assume
	if err := huh.NewConfirm().Title(title).Value(&ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// ChooseFrequency parses value or, when empty and interactive, offers a picker.
func (c *Context) ChooseFrequency(value string) (constants.Frequency, error) {
	if value != "" {
		f, ok := constants.ParseFrequency(value)
		if !ok {
			return "", fmt.Errorf("unknown frequency %q (daily, weekly or monthly)", value)
		}
		return f, nil
	}
	if !c.Interactive {
		return constants.FrequencyDaily, nil
	}

	f := constants.FrequencyDaily
	opts := make([]huh.Option[constants.Frequency], len(constants.Frequencies))
	for i, freq := range constants.Frequencies {
		opts[i] = huh.NewOption(string(freq), freq)
	}
	if err := huh.NewSelect[constants.Frequency]().Title("Frequency").Options(opts...).Value(&f).Run(); err != nil {
		return "", err
	}
	return f, nil
}

// Choose returns value if set, otherwise offers options in a picker.
func (c *Context) Choose(value, title string, options []string) (string, error) {
	if value != "" {
		return value, nil
	}
	if !c.Interactive {
		return "", fmt.Errorf("%w: %s", ErrNotInteractive, strings.ToLower(title))
	}
	if err := huh.NewSelect[string]().Title(title).Options(huh.NewOptions(options...)...).Value(&value).Run(); err != nil {
		return "", err
	}
	return value, nil
}
