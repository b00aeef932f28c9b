package tracker

import (
	"context"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/storage"
)

// Session is the per-launch application context: the active theme and
// whether the journal has been unlocked. It is loaded once and written
// only when something toggles.
type Session struct {
	theme    constants.Theme
	themeDoc *storage.Document[constants.Theme]
	journal  *Journal
	unlocked bool
}

// NewSession reads the persisted theme, defaulting to light.
func NewSession(ctx context.Context, t *Tracker) *Session {
	doc := storage.NewDocument[constants.Theme](t.store, constants.KeyAppTheme)
	theme := doc.LoadOr(ctx, constants.ThemeLight)
	if !theme.Valid() {
		theme = constants.ThemeLight
	}
	return &Session{
		theme:    theme,
		themeDoc: doc,
		journal:  t.Journal,
	}
}

func (s *Session) Theme() constants.Theme {
	return s.theme
}

// SetTheme persists theme before making it current.
func (s *Session) SetTheme(ctx context.Context, theme constants.Theme) error {
	if !theme.Valid() {
		return invalid("theme", "Theme must be light or dark")
	}
	if err := s.themeDoc.Save(ctx, theme); err != nil {
		return err
	}
	s.theme = theme
	return nil
}

// ToggleTheme switches between light and dark.
func (s *Session) ToggleTheme(ctx context.Context) (constants.Theme, error) {
	next := constants.ThemeDark
	if s.theme == constants.ThemeDark {
		next = constants.ThemeLight
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return s.theme, err
	}
	return next, nil
}

// Unlock opens the journal for the rest of the session.
func (s *Session) Unlock(ctx context.Context, password string) error {
	if err := s.journal.Unlock(ctx, password); err != nil {
		return err
	}
	s.unlocked = true
	return nil
}

func (s *Session) Lock() {
	s.unlocked = false
}

func (s *Session) Unlocked() bool {
	return s.unlocked
}
