package tracker

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

type Account struct {
	env *env
	doc *storage.Document[models.UserAccount]
}

// Save creates or updates the profile. The join date is set once.
func (a *Account) Save(ctx context.Context, name, age string) (models.UserAccount, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UserAccount{}, invalid("name", "Please enter your name")
	}

	var agePtr *string
	if age = strings.TrimSpace(age); age != "" {
		n, err := strconv.Atoi(age)
		if err != nil || n < 0 {
			return models.UserAccount{}, invalid("age", "Age must be a whole number")
		}
		agePtr = &age
	}

	joined := a.env.now().Format(time.RFC3339)
	if existing, err := a.doc.Load(ctx); err == nil && existing.DateJoined != "" {
		joined = existing.DateJoined
	}

	acct := models.UserAccount{Name: name, Age: agePtr, DateJoined: joined}
	if err := a.doc.Save(ctx, acct); err != nil {
		return models.UserAccount{}, err
	}
	return acct, nil
}

// Get returns the stored profile or ErrNotFound.
func (a *Account) Get(ctx context.Context) (models.UserAccount, error) {
	acct, err := a.doc.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return models.UserAccount{}, &NotFoundError{Kind: "account", Ref: "userAccount"}
	}
	return acct, err
}

func (a *Account) Exists(ctx context.Context) bool {
	_, err := a.doc.Load(ctx)
	return err == nil
}
