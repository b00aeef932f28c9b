// Package keyring keeps the PostgreSQL connection string in the OS keyring so
// it never has to appear on the command line or in a config file.
package keyring

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/habitual/internal/constants"
)

var (
	ErrNotFound           = errors.New("credentials not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

const probeUser = "probe-availability"

// Entry is one secret addressed by service and user.
type Entry struct {
	Service string
	User    string
}

// Connection is the entry holding the database connection string.
func Connection() Entry {
	return Entry{Service: constants.AppName, User: constants.DefaultKeyringUser}
}

func (e Entry) Get() (string, error) {
	secret, err := keyring.Get(e.Service, e.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

func (e Entry) Set(secret string) error {
	if strings.TrimSpace(secret) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(e.Service, e.User, secret); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func (e Entry) Delete() error {
	err := keyring.Delete(e.Service, e.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable probes the keyring with a read. A not-found answer still
// means the backend is reachable.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, probeUser)
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// Mask hides the password of a URL or key=value connection string.
func Mask(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil || u.User == nil {
			return connStr
		}
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "****")
			// url.String escapes the asterisks
			return strings.Replace(u.String(), "%2A%2A%2A%2A", "****", 1)
		}
		return connStr
	}

	fields := strings.Fields(connStr)
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=****"
		}
	}
	return strings.Join(fields, " ")
}
