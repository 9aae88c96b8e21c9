package state

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"time"

	"thicket/app"
	"thicket/app/debug"
	"thicket/app/utils"
)

// maxEntries is the number of entries per type kept in the state file
const maxEntries = 100

type HistoryType int

const (
	Command HistoryType = iota
	Filter
)

var historyTypes = map[HistoryType]string{
	Command: "CMD",
	Filter:  "FILTER",
}

func (t HistoryType) String() string {
	return historyTypes[t]
}

func parseHistoryType(s string) (HistoryType, bool) {
	for hisType, str := range historyTypes {
		if s == str {
			return hisType, true
		}
	}
	return 0, false
}

type StateEntry struct {
	historyType HistoryType
	timestamp   string
	content     string
}

func (e StateEntry) Content() string {
	return e.content
}

func (e StateEntry) Type() HistoryType {
	return e.historyType
}

func NewEntry(stateType HistoryType, content string) StateEntry {
	return StateEntry{
		historyType: stateType,
		timestamp:   time.Now().Format(time.RFC3339),
		content:     content,
	}
}

// State is the prompt history. Every history type has its own cursor
// used to cycle through previous inputs.
type State struct {
	filePath string
	entries  []StateEntry
	cursors  map[HistoryType]int
}

// New returns the history stored in the config directory.
// The file is created if it doesn't exist yet.
func New() *State {
	filePath, err := app.StateFile()
	if err != nil {
		debug.LogErr(err)
		return NewWithFile("")
	}

	if _, err := os.Stat(filePath); err != nil {
		if f, err := utils.CreateFile(filePath, false); err != nil {
			debug.LogErr(err)
		} else {
			f.Close()
		}
	}

	return NewWithFile(filePath)
}

// NewWithFile returns an empty history backed by filePath.
// An empty path keeps the history in memory only.
func NewWithFile(filePath string) *State {
	return &State{
		filePath: filePath,
		entries:  []StateEntry{},
		cursors:  make(map[HistoryType]int),
	}
}

func (s *State) removeLastOccurence(st HistoryType, c string) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].historyType == st && s.entries[i].content == c {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Entries returns all entries of a type, oldest first
func (s *State) Entries(st HistoryType) []StateEntry {
	entries := []StateEntry{}

	for _, entry := range s.entries {
		if entry.historyType == st {
			entries = append(entries, entry)
		}
	}

	return entries
}

// Append adds entry as the newest of its type. An earlier entry with
// the same content is removed and the cursor of the type is reset.
func (s *State) Append(entry StateEntry) {
	// one entry per line in the state file
	entry.content = strings.TrimSpace(strings.ReplaceAll(entry.content, "\n", " "))

	if entry.content == "" {
		return
	}

	s.removeLastOccurence(entry.historyType, entry.content)
	s.entries = append(s.entries, entry)
	s.ResetCursor(entry.historyType)
}

// Read loads the history file. Malformed lines are skipped.
func (s *State) Read() error {
	if s.filePath == "" {
		return nil
	}

	file, err := os.Open(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		ln := strings.SplitN(scanner.Text(), "|", 3)
		if len(ln) != 3 || ln[2] == "" {
			continue
		}

		historyType, ok := parseHistoryType(ln[0])
		if !ok {
			debug.LogDebug("skipping history line of unknown type", ln[0])
			continue
		}

		s.removeLastOccurence(historyType, ln[2])
		s.entries = append(s.entries, StateEntry{
			historyType: historyType,
			timestamp:   ln[1],
			content:     ln[2],
		})
	}

	for t := range historyTypes {
		s.ResetCursor(t)
	}

	return scanner.Err()
}

// Write saves the newest entries of every type
func (s *State) Write() error {
	if s.filePath == "" {
		return nil
	}

	f, err := os.OpenFile(s.filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		debug.LogErr(err)
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	counts := make(map[HistoryType]int)

	for i := len(s.entries) - 1; i >= 0; i-- {
		counts[s.entries[i].historyType]++
	}

	for _, entry := range s.entries {
		// drop the oldest entries above the limit
		if counts[entry.historyType] > maxEntries {
			counts[entry.historyType]--
			continue
		}

		w.WriteString(entry.historyType.String())
		w.WriteRune('|')
		w.WriteString(entry.timestamp)
		w.WriteRune('|')
		w.WriteString(entry.content)
		w.WriteRune('\n')
	}

	return w.Flush()
}

// Cycle moves the cursor of a history type and returns the entry
// under it. Moving newer than the newest entry returns false so the
// caller can clear its prompt.
func (s *State) Cycle(st HistoryType, older bool) (StateEntry, bool) {
	entries := s.Entries(st)
	if len(entries) == 0 {
		return StateEntry{}, false
	}

	cursor := s.cursors[st]
	if older {
		cursor--
	} else {
		cursor++
	}

	cursor = utils.Clamp(cursor, 0, len(entries))
	s.cursors[st] = cursor

	if cursor == len(entries) {
		return StateEntry{}, false
	}

	return entries[cursor], true
}

// ResetCursor puts the cursor of a type past its newest entry
func (s *State) ResetCursor(st HistoryType) {
	s.cursors[st] = len(s.Entries(st))
}
