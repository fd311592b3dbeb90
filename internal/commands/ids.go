package commands

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/balkashynov/dialr/internal/models"
)

// minIDLen is the shortest ID prefix the tables print
const minIDLen = 8

// shortIDs maps each ID to its shortest prefix of at least minIDLen that
// no other ID in ids starts with. IDs that are a prefix of another keep their full length.
func shortIDs(ids []string) map[string]string {
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		n := min(minIDLen, len(id))
		for n < len(id) && sharedPrefix(ids, id, id[:n]) {
			n++
		}
		out[id] = id[:n]
	}
	return out
}

func sharedPrefix(ids []string, self, prefix string) bool {
	for _, other := range ids {
		if other != self && strings.HasPrefix(other, prefix) {
			return true
		}
	}
	return false
}

// resolveID matches ref against full IDs first, then unique prefixes
func resolveID(ids []string, ref, kind string) (string, error) {
	ref = strings.TrimSpace(ref)
	var matches []string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if ref != "" && strings.HasPrefix(id, ref) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %s: %w", kind, ref, models.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID %q is ambiguous (%d matches)", kind, ref, len(matches))
	}
}

// truncate cuts s to at most width terminal cells
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
