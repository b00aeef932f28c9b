package tracker

import (
	"context"
	"errors"
	"strings"

	"github.com/julianstephens/habitual/internal/storage"
)

// Journal guards the notes behind a plaintext password stored alongside
// the data. It is a privacy gate, not encryption.
type Journal struct {
	doc *storage.Document[string]
}

func (j *Journal) stored(ctx context.Context) (string, bool, error) {
	pw, err := j.doc.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pw, pw != "", nil
}

// HasPassword reports whether a password has been set.
func (j *Journal) HasPassword(ctx context.Context) (bool, error) {
	_, ok, err := j.stored(ctx)
	return ok, err
}

// SetPassword stores the first password.
func (j *Journal) SetPassword(ctx context.Context, password string) error {
	if strings.TrimSpace(password) == "" {
		return invalid("password", "Password cannot be empty")
	}
	_, ok, err := j.stored(ctx)
	if err != nil {
		return err
	}
	if ok {
		return ErrPasswordSet
	}
	return j.doc.Save(ctx, password)
}

// Unlock checks password against the stored one.
func (j *Journal) Unlock(ctx context.Context, password string) error {
	pw, ok, err := j.stored(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoPassword
	}
	if password != pw {
		return ErrWrongPassword
	}
	return nil
}

// ChangePassword replaces the password after verifying the current one.
func (j *Journal) ChangePassword(ctx context.Context, current, next, confirm string) error {
	pw, ok, err := j.stored(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoPassword
	}
	if strings.TrimSpace(current) != pw {
		return ErrWrongPassword
	}
	if strings.TrimSpace(next) == "" {
		return invalid("password", "New password cannot be empty")
	}
	if next != confirm {
		return invalid("confirm", "New passwords do not match")
	}
	return j.doc.Save(ctx, next)
}
