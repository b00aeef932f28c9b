package tracker

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

type Notes struct {
	env *env
	col *storage.Collection[models.Note]
}

// NoteInput is the editable part of a note. An empty Date means today.
type NoteInput struct {
	Heading string
	Body    string
	Date    string
}

func (n *Notes) normalize(in NoteInput) (NoteInput, error) {
	if strings.TrimSpace(in.Body) == "" {
		return in, invalid("body", "Note content cannot be empty")
	}
	in.Heading = strings.TrimSpace(in.Heading)
	in.Date = strings.TrimSpace(in.Date)
	if in.Date == "" {
		in.Date = n.env.today()
	} else if _, err := time.Parse(constants.DateFormat, in.Date); err != nil {
		return in, invalid("date", "Date must be in YYYY-MM-DD format")
	}
	if in.Date < n.env.today() {
		return in, ErrPastDate
	}
	return in, nil
}

// Add appends a journal entry.
func (n *Notes) Add(ctx context.Context, in NoteInput) (models.Note, error) {
	in, err := n.normalize(in)
	if err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		ID:      n.env.newID(),
		Heading: in.Heading,
		Body:    in.Body,
		Date:    in.Date,
	}
	all := n.col.LoadAll(ctx)
	if err := n.col.SaveAll(ctx, append(all, note)); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// Edit replaces the heading and body of note id. The date is kept unless
// the input names one. Entries for past days are read-only.
func (n *Notes) Edit(ctx context.Context, id string, in NoteInput) (models.Note, error) {
	all := n.col.LoadAll(ctx)
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if all[i].Date < n.env.today() {
			return models.Note{}, ErrPastDate
		}
		if in.Date == "" {
			in.Date = all[i].Date
		}
		norm, err := n.normalize(in)
		if err != nil {
			return models.Note{}, err
		}
		all[i].Heading = norm.Heading
		all[i].Body = norm.Body
		all[i].Date = norm.Date
		if err := n.col.SaveAll(ctx, all); err != nil {
			return models.Note{}, err
		}
		return all[i], nil
	}
	return models.Note{}, &NotFoundError{Kind: "note", Ref: id}
}

func (n *Notes) Get(ctx context.Context, id string) (models.Note, error) {
	for _, note := range n.col.LoadAll(ctx) {
		if note.ID == id {
			return note, nil
		}
	}
	return models.Note{}, &NotFoundError{Kind: "note", Ref: id}
}

// All returns every note ordered by date, oldest first.
func (n *Notes) All(ctx context.Context) []models.Note {
	notes := n.col.LoadAll(ctx)
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Date < notes[j].Date
	})
	return notes
}

// ForDate returns the notes written for date in insertion order.
func (n *Notes) ForDate(ctx context.Context, date string) []models.Note {
	var out []models.Note
	for _, note := range n.col.LoadAll(ctx) {
		if note.Date == date {
			out = append(out, note)
		}
	}
	return out
}

// CountByDate returns how many notes exist per date.
func (n *Notes) CountByDate(ctx context.Context) map[string]int {
	counts := make(map[string]int)
	for _, note := range n.col.LoadAll(ctx) {
		counts[note.Date]++
	}
	return counts
}

// Delete removes note id. Entries for past days cannot be deleted.
func (n *Notes) Delete(ctx context.Context, id string) error {
	all := n.col.LoadAll(ctx)
	kept := make([]models.Note, 0, len(all))
	for _, note := range all {
		if note.ID != id {
			kept = append(kept, note)
		} else if note.Date < n.env.today() {
			return ErrPastDate
		}
	}
	if len(kept) == len(all) {
		return &NotFoundError{Kind: "note", Ref: id}
	}
	return n.col.SaveAll(ctx, kept)
}
