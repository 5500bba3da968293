package history

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/malonaz/spendchat/internal/file"
)

const maxEntries = 500

// History recalls previously sent drafts. Entries are persisted to a file when a
// path is given, otherwise they only live for the session.
type History struct {
	mu      sync.Mutex
	path    string
	entries []string
	// cursor is the position while navigating, -1 when editing a fresh draft.
	cursor int
	// pending holds the draft that was being typed before navigation started.
	pending string
}

// New returns a History backed by the file at path. An empty path keeps entries in memory.
func New(path string) *History {
	h := &History{path: path, cursor: -1}
	if path != "" {
		h.entries = readEntries(path)
	}
	return h
}

func readEntries(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if entry := unescape(scanner.Text()); entry != "" {
			entries = append(entries, entry)
		}
	}
	return trim(entries)
}

func (h *History) persist() {
	if h.path == "" {
		return
	}
	if err := file.EnsureDir(h.path); err != nil {
		return
	}
	f, err := os.Create(h.path)
	if err != nil {
		return
	}
	defer f.Close()
	writer := bufio.NewWriter(f)
	for _, entry := range h.entries {
		writer.WriteString(escape(entry) + "\n")
	}
	writer.Flush()
}

// Add records a sent draft. Blank drafts and repeats of the last entry are skipped.
func (h *History) Add(entry string) {
	entry = strings.TrimSpace(entry)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursor, h.pending = -1, ""
	if entry == "" || (len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry) {
		return
	}
	h.entries = trim(append(h.entries, entry))
	h.persist()
}

// Previous steps back in time. The current draft is remembered on the first step.
func (h *History) Previous(draft string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	switch {
	case len(h.entries) == 0:
		return "", false
	case h.cursor == -1:
		h.pending = draft
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	default:
		return h.entries[0], false
	}
	return h.entries[h.cursor], true
}

// Next steps forward in time, ending on the draft remembered by Previous.
func (h *History) Next() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return h.pending, true
	}
	return h.entries[h.cursor], true
}

// Reset stops navigating.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursor, h.pending = -1, ""
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func trim(entries []string) []string {
	if len(entries) > maxEntries {
		return entries[len(entries)-maxEntries:]
	}
	return entries
}

var (
	escaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`)
	unescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n")
)

func escape(entry string) string   { return escaper.Replace(entry) }
func unescape(line string) string { return unescaper.Replace(line) }
