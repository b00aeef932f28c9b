package storage

import (
	"net/url"
	"strings"
)

// IsPostgres reports whether target looks like a PostgreSQL connection URL.
func IsPostgres(target string) bool {
	return strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://")
}

// IsJSONFile reports whether target names a JSON document store.
func IsJSONFile(target string) bool {
	return strings.HasSuffix(strings.ToLower(target), ".json")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password, either in URL user info or as a DSN key.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgres(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		_, set := u.User.Password()
		return set
	}
	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}
