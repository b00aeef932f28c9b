package journal

import (
	"fmt"
	"os"
	"sort"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/export"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tracker"
)

// Auth is the password flag shared by the note commands.
type Auth struct {
	Password string `help:"Journal password (prompted for when omitted)." env:"HABITUAL_JOURNAL_PASSWORD"`
}

// unlock opens the journal for this session. A journal without a password
// is always open.
func (a Auth) unlock(ctx *cli.Context) error {
	has, err := ctx.Tracker.Journal.HasPassword(ctx.Background())
	if err != nil {
		return err
	}
	if !has {
		return nil
	}
	if ctx.Session == nil {
		ctx.StartSession()
	}
	if ctx.Session.Unlocked() {
		return nil
	}
	pw, err := ctx.Ask(a.Password, "Journal password", true)
	if err != nil {
		return err
	}
	return ctx.Session.Unlock(ctx.Background(), pw)
}

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Write a journal entry."`
	Edit   NoteEditCmd   `cmd:"" help:"Edit a journal entry."`
	List   NoteListCmd   `cmd:"" help:"List journal entries."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete a journal entry."`
	Export NoteExportCmd `cmd:"" help:"Export the journal as an HTML page."`
}

type NoteAddCmd struct {
	Auth `embed:""`

	Body    string `arg:"" optional:"" help:"Entry text (Markdown)."`
	Heading string `short:"t" help:"Heading."`
	Date    string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	if err := c.unlock(ctx); err != nil {
		return err
	}
	body, err := ctx.Ask(c.Body, "Entry", false)
	if err != nil {
		return err
	}
	note, err := ctx.Tracker.Notes.Add(ctx.Background(), tracker.NoteInput{Heading: c.Heading, Body: body, Date: c.Date})
	if err != nil {
		return err
	}
	ctx.Printf("Added note %s for %s\n", note.ID, note.Date)
	return nil
}

type NoteEditCmd struct {
	Auth `embed:""`

	ID      string `arg:"" help:"Note id."`
	Body    string `short:"b" help:"New entry text."`
	Heading string `short:"t" help:"New heading."`
	Date    string `help:"Move the entry to another date."`
}

func (c *NoteEditCmd) Run(ctx *cli.Context) error {
	if err := c.unlock(ctx); err != nil {
		return err
	}
	current, err := ctx.Tracker.Notes.Get(ctx.Background(), c.ID)
	if err != nil {
		return err
	}
	in := tracker.NoteInput{Heading: current.Heading, Body: current.Body, Date: c.Date}
	if c.Heading != "" {
		in.Heading = c.Heading
	}
	if c.Body != "" {
		in.Body = c.Body
	}

	note, err := ctx.Tracker.Notes.Edit(ctx.Background(), c.ID, in)
	if err != nil {
		return err
	}
	ctx.Printf("Updated note %s for %s\n", note.ID, note.Date)
	return nil
}

type NoteListCmd struct {
	Auth `embed:""`

	Date string `help:"Show entries for a day within the last 30 days (default: today)."`
	All  bool   `help:"Show every entry instead of one day."`
	Days bool   `help:"Show the number of entries per day instead."`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	if err := c.unlock(ctx); err != nil {
		return err
	}
	counts := ctx.Tracker.Notes.CountByDate(ctx.Background())
	if c.Days {
		dates := make([]string, 0, len(counts))
		for d := range counts {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			ctx.Printf("%s  %d\n", d, counts[d])
		}
		return nil
	}

	var notes []models.Note
	if c.All {
		notes = ctx.Tracker.Notes.All(ctx.Background())
	} else {
		day, window, err := ctx.SelectDate(c.Date, constants.JournalWindow)
		if err != nil {
			return err
		}
		ctx.Printf("%s\n\n", cli.DayStrip(window, day, func(d string) bool { return counts[d] > 0 }))
		notes = ctx.Tracker.Notes.ForDate(ctx.Background(), day)
	}
	if len(notes) == 0 {
		ctx.Println("No journal entries found.")
		return nil
	}
	for _, n := range notes {
		heading := n.Heading
		if heading == "" {
			heading = "(untitled)"
		}
		ctx.Printf("%s  %s  %s\n", n.Date, cli.TitleStyle.Render(heading), n.ID)
		ctx.Printf("    %s\n", cli.Truncate(n.Body, 72))
	}
	return nil
}

type NoteDeleteCmd struct {
	Auth `embed:""`

	ID string `arg:"" help:"Note id."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	if err := c.unlock(ctx); err != nil {
		return err
	}
	if err := ctx.Tracker.Notes.Delete(ctx.Background(), c.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted note %s\n", c.ID)
	return nil
}

type NoteExportCmd struct {
	Auth `embed:""`

	Output string `arg:"" help:"Output HTML file." type:"path"`
	Title  string `help:"Page title." default:"Journal"`
}

func (c *NoteExportCmd) Run(ctx *cli.Context) error {
	if err := c.unlock(ctx); err != nil {
		return err
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	defer f.Close()

	notes := ctx.Tracker.Notes.All(ctx.Background())
	if err := export.JournalHTML(f, c.Title, notes); err != nil {
		return err
	}
	ctx.Printf("Exported %d entries to %s\n", len(notes), c.Output)
	return nil
}

type PasswordCmd struct {
	Set    PasswordSetCmd    `cmd:"" help:"Set the journal password."`
	Change PasswordChangeCmd `cmd:"" help:"Change the journal password."`
	Check  PasswordCheckCmd  `cmd:"" help:"Check a password against the journal."`
}

type PasswordSetCmd struct {
	Password string `arg:"" optional:"" help:"New password (prompted for when omitted)."`
}

func (c *PasswordSetCmd) Run(ctx *cli.Context) error {
	pw, err := ctx.Ask(c.Password, "New password", true)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.Journal.SetPassword(ctx.Background(), pw); err != nil {
		return err
	}
	ctx.Println("Journal password set.")
	return nil
}

type PasswordChangeCmd struct {
	Current string `help:"Current password."`
	New     string `help:"New password."`
	Confirm string `help:"New password again."`
}

func (c *PasswordChangeCmd) Run(ctx *cli.Context) error {
	current, err := ctx.Ask(c.Current, "Current password", true)
	if err != nil {
		return err
	}
	next, err := ctx.Ask(c.New, "New password", true)
	if err != nil {
		return err
	}
	confirm, err := ctx.Ask(c.Confirm, "Confirm new password", true)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.Journal.ChangePassword(ctx.Background(), current, next, confirm); err != nil {
		return err
	}
	ctx.Println("Journal password changed.")
	return nil
}

type PasswordCheckCmd struct {
	Password string `arg:"" optional:"" help:"Password to check."`
}

func (c *PasswordCheckCmd) Run(ctx *cli.Context) error {
	pw, err := ctx.Ask(c.Password, "Password", true)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.Journal.Unlock(ctx.Background(), pw); err != nil {
		return err
	}
	ctx.Println("Password is correct.")
	return nil
}
