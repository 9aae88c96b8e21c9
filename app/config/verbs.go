package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"thicket/app/debug"

	"github.com/tailscale/hujson"
)

//go:embed verbs.json
var defaultVerbs []byte

// VerbEntry is one verb definition as written in verbs.json
type VerbEntry struct {
	Invocation string `json:"invocation"`
	Name       string `json:"name"`
	Execution  string `json:"execution"`
}

// UnmarshalJSON accepts either an object or a short array form
// ["invocation", "execution"] with an optional name as third element.
func (v *VerbEntry) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		switch len(list) {
		case 2:
			*v = VerbEntry{Invocation: list[0], Name: list[1], Execution: list[1]}
		case 3:
			*v = VerbEntry{Invocation: list[0], Execution: list[1], Name: list[2]}
		default:
			return fmt.Errorf("verb array needs 2 or 3 elements, got %d", len(list))
		}
		return nil
	}

	type plain VerbEntry
	var entry plain
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}

	if entry.Name == "" {
		entry.Name = entry.Execution
	}

	*v = VerbEntry(entry)
	return nil
}

type verbsFile struct {
	Verbs []VerbEntry `json:"verbs"`
}

// ParseVerbs reads HuJSON verb definitions.
// Comments and trailing commas are allowed. Entries without an
// invocation are skipped, execution patterns are taken as they are.
func ParseVerbs(data []byte) ([]VerbEntry, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}

	var file verbsFile
	if err := json.Unmarshal(std, &file); err != nil {
		return nil, err
	}

	verbs := make([]VerbEntry, 0, len(file.Verbs))
	for i, entry := range file.Verbs {
		if entry.Invocation == "" {
			debug.LogWarn(fmt.Sprintf("skipping verb %d without invocation", i))
			continue
		}
		verbs = append(verbs, entry)
	}

	return verbs, nil
}

// LoadVerbs returns the built-in verbs followed by the verbs of the
// file at path. A missing file isn't an error. If the file can't be
// parsed the built-in verbs are returned together with the error.
func LoadVerbs(path string) ([]VerbEntry, error) {
	verbs, err := ParseVerbs(defaultVerbs)
	if err != nil {
		return nil, fmt.Errorf("default verbs: %w", err)
	}

	if path == "" {
		return verbs, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return verbs, nil
	}
	if err != nil {
		return verbs, err
	}

	userVerbs, err := ParseVerbs(data)
	if err != nil {
		return verbs, fmt.Errorf("%s: %w", path, err)
	}

	return append(verbs, userVerbs...), nil
}
