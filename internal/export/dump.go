package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/storage"
)

// Format is the encoding of a dump.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file name, defaulting to JSON.
func FormatFor(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Snapshot is every known key of a store with its decoded value.
type Snapshot struct {
	Version  string                 `json:"version" yaml:"version"`
	Exported string                 `json:"exported" yaml:"exported"`
	Data     map[string]interface{} `json:"data" yaml:"data"`
}

// Dump reads every known key from store and encodes it in format. Keys
// never written are left out.
func Dump(ctx context.Context, store storage.Provider, format Format, now time.Time) ([]byte, error) {
	snap := Snapshot{
		Version:  constants.Version,
		Exported: now.Format(time.RFC3339),
		Data:     map[string]interface{}{},
	}
	for _, key := range constants.AllKeys {
		raw, err := store.Get(ctx, key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		var v interface{}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("stored %s is not valid JSON: %w", key, err)
		}
		snap.Data[key] = v
	}

	if format == FormatYAML {
		return yaml.Marshal(snap)
	}
	return json.MarshalIndent(snap, "", "  ")
}

// Restore writes every key of a dump back to store. With replace set the
// store is cleared first; otherwise keys missing from the dump are kept.
// Unknown keys fail the whole restore before anything is written.
func Restore(ctx context.Context, store storage.Provider, data []byte, format Format, replace bool) ([]string, error) {
	var snap Snapshot
	var err error
	if format == FormatYAML {
		err = yaml.Unmarshal(data, &snap)
	} else {
		err = json.Unmarshal(data, &snap)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse dump: %w", err)
	}

	encoded := make(map[string][]byte, len(snap.Data))
	keys := make([]string, 0, len(snap.Data))
	for key, v := range snap.Data {
		if !slices.Contains(constants.AllKeys, key) {
			return nil, fmt.Errorf("unknown key %q in dump", key)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		encoded[key] = raw
		keys = append(keys, key)
	}
	slices.Sort(keys)

	if replace {
		if err := store.Clear(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear store: %w", err)
		}
	}
	for _, key := range keys {
		if err := store.Set(ctx, key, encoded[key]); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", key, err)
		}
	}
	return keys, nil
}
