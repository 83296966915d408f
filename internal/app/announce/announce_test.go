package announce

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader_Read_TrimsContent(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "announcement.txt")
	req.NoError(os.WriteFile(path, []byte("  Welcome to the relay!\n\n"), 0o644))

	text, err := NewReader(path).Read()
	req.NoError(err)
	req.Equal("Welcome to the relay!", text)
}

func TestReader_Read_MissingFileFails(t *testing.T) {
	req := require.New(t)

	_, err := NewReader(filepath.Join(t.TempDir(), "absent.txt")).Read()
	req.Error(err)
}
