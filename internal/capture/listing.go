package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultListLimit is the number of entries a listing returns when the
// caller does not supply a limit.
const DefaultListLimit = 10

type listEntry struct {
	name string
	size int64
	mod  time.Time
}

// List returns the most recent captures in the screenshot directory, newest
// first, at most limit entries. An empty result is the sentinel text
// "No screenshots found", not an error. The order is deterministic for a
// given directory snapshot: modification time descending, then name.
func (a *Adapter) List(limit int) (string, error) {
	if limit < 0 {
		limit = 0
	}
	entries, err := os.ReadDir(a.cfg.Dir)
	if err != nil {
		return "", fmt.Errorf("read screenshot dir: %w", err)
	}

	shots := make([]listEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// File vanished between enumeration and stat; skip it.
			continue
		}
		shots = append(shots, listEntry{name: e.Name(), size: info.Size(), mod: info.ModTime()})
	}

	sort.Slice(shots, func(i, j int) bool {
		if !shots[i].mod.Equal(shots[j].mod) {
			return shots[i].mod.After(shots[j].mod)
		}
		return shots[i].name < shots[j].name
	})
	if limit < len(shots) {
		shots = shots[:limit]
	}

	if len(shots) == 0 {
		return "No screenshots found", nil
	}

	var b strings.Builder
	b.WriteString("Recent screenshots:")
	for i, s := range shots {
		fmt.Fprintf(&b, "\n%d. %s (%s, %s)", i+1, s.name, formatKB(s.size), s.mod.Format("2006-01-02 15:04:05"))
	}
	return b.String(), nil
}
