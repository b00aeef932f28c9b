package settings

import (
	"errors"
	"time"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/tracker"
)

type AccountCmd struct {
	Set  AccountSetCmd  `cmd:"" help:"Create or update your profile."`
	Show AccountShowCmd `cmd:"" default:"1" help:"Show your profile."`
}

type AccountSetCmd struct {
	Name string `short:"n" help:"Your name."`
	Age  string `short:"a" help:"Your age (optional)."`
}

func (c *AccountSetCmd) Run(ctx *cli.Context) error {
	bg := ctx.Background()
	name := c.Name
	if name == "" {
		if current, err := ctx.Tracker.Account.Get(bg); err == nil {
			name = current.Name
		}
	}
	name, err := ctx.Ask(name, "Name", false)
	if err != nil {
		return err
	}

	acct, err := ctx.Tracker.Account.Save(bg, name, c.Age)
	if err != nil {
		return err
	}
	ctx.Printf("Saved profile for %s\n", acct.Name)
	return nil
}

type AccountShowCmd struct{}

func (c *AccountShowCmd) Run(ctx *cli.Context) error {
	acct, err := ctx.Tracker.Account.Get(ctx.Background())
	if errors.Is(err, tracker.ErrNotFound) {
		ctx.Println("No profile yet. Run 'habitual account set --name <name>'.")
		return nil
	}
	if err != nil {
		return err
	}

	ctx.Println(cli.TitleStyle.Render(acct.Name))
	if acct.Age != nil {
		ctx.Printf("Age:    %s\n", *acct.Age)
	}
	joined := acct.DateJoined
	if t, err := time.Parse(time.RFC3339, joined); err == nil {
		joined = t.Format("January 2, 2006")
	}
	ctx.Printf("Joined: %s\n", joined)
	return nil
}

type ThemeCmd struct {
	Show   ThemeShowCmd   `cmd:"" default:"1" help:"Show the current theme."`
	Toggle ThemeToggleCmd `cmd:"" help:"Switch between light and dark."`
	Set    ThemeSetCmd    `cmd:"" help:"Set the theme."`
}

type ThemeShowCmd struct{}

func (c *ThemeShowCmd) Run(ctx *cli.Context) error {
	ctx.Printf("Theme: %s\n", session(ctx).Theme())
	return nil
}

type ThemeToggleCmd struct{}

func (c *ThemeToggleCmd) Run(ctx *cli.Context) error {
	theme, err := session(ctx).ToggleTheme(ctx.Background())
	if err != nil {
		return err
	}
	ctx.Printf("Theme: %s\n", theme)
	return nil
}

type ThemeSetCmd struct {
	Theme string `arg:"" enum:"light,dark" help:"light or dark."`
}

func (c *ThemeSetCmd) Run(ctx *cli.Context) error {
	if err := session(ctx).SetTheme(ctx.Background(), constants.Theme(c.Theme)); err != nil {
		return err
	}
	ctx.Printf("Theme: %s\n", c.Theme)
	return nil
}

func session(ctx *cli.Context) *tracker.Session {
	if ctx.Session == nil {
		ctx.StartSession()
	}
	return ctx.Session
}
