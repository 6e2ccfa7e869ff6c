package repl

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"
)

const baseHistory = "history.utf8"

// defaultHistoryLimit is the number of entries kept when no limit is set.
const defaultHistoryLimit = 100

// HistoryEntry is a single input line and the mode it was entered in.
type HistoryEntry struct {
	Line string
	Mode inputMode
}

// History holds input lines, oldest first, persisted to a file when it has
// a path. Only the newest limit entries are kept.
type History struct {
	path    string
	limit   int
	entries []HistoryEntry
	mu      sync.RWMutex
}

// NewHistory returns an empty History persisted at path, or kept only in
// memory if path is empty. A limit below 1 selects the default.
func NewHistory(path string, limit int) *History {
	if limit < 1 {
		limit = defaultHistoryLimit
	}

	return &History{path: path, limit: limit}
}

// Load replaces the entries with those in the history file. A missing file
// is not an error.
func (h *History) Load() error {
	if h.path == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}
	defer file.Close()

	h.entries = nil

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if entry, ok := decodeEntry(scanner.Text()); ok {
			h.entries = append(h.entries, entry)
		}
	}

	h.trim()

	return scanner.Err()
}

// Add appends line entered in mode, moving an earlier identical entry to the
// end rather than repeating it.
func (h *History) Add(line string, mode inputMode) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entry := HistoryEntry{Line: line, Mode: mode}

	h.entries = slices.DeleteFunc(h.entries, func(e HistoryEntry) bool {
		return e == entry
	})
	h.entries = append(h.entries, entry)
	h.trim()

	return h.save()
}

// Entry returns the entry at index i, where 0 is the oldest.
func (h *History) Entry(i int) (HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, ErrOutOfBounds
	}

	return h.entries[i], nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.entries)
}

// trim must be called with h.mu held.
func (h *History) trim() {
	if n := len(h.entries) - h.limit; n > 0 {
		h.entries = slices.Delete(h.entries, 0, n)
	}
}

// save rewrites the history file. It must be called with h.mu held.
func (h *History) save() error {
	if h.path == "" {
		return nil
	}

	var sb strings.Builder

	for _, e := range h.entries {
		sb.WriteString(encodeEntry(e))
		sb.WriteByte('\n')
	}

	return os.WriteFile(h.path, []byte(sb.String()), 0o600)
}

// Entries are stored one per line with a mode prefix: "L:" for lex input,
// "C:" for commands.
func encodeEntry(e HistoryEntry) string {
	if e.Mode == modeCtrl {
		return "C:" + e.Line
	}

	return "L:" + e.Line
}

func decodeEntry(line string) (HistoryEntry, bool) {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return HistoryEntry{}, false
	case strings.HasPrefix(line, "C:"):
		return HistoryEntry{Line: line[2:], Mode: modeCtrl}, true
	case strings.HasPrefix(line, "L:"):
		return HistoryEntry{Line: line[2:], Mode: modeLex}, true
	default:
		return HistoryEntry{Line: line, Mode: modeLex}, true
	}
}
