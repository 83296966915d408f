/*
Package announce reads the server announcement from a local text source.

The announcement is the one piece of state living outside the in-memory chat
core; it is re-read on every request so operators can edit the file without
restarting the server.
*/
package announce

import (
	"os"
	"strings"
)

// Reader serves the announcement text backing file.
type Reader struct {
	path string
}

// NewReader returns a Reader for the given file path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Read returns the trimmed announcement text. Any failure (missing or
// unreadable file) is returned as-is; callers surface it as a generic
// failure without leaking the underlying detail to clients.
func (a *Reader) Read() (string, error) {
	content, err := os.ReadFile(a.path)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}
