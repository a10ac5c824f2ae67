package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportToFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	require.NoError(t, Init(InitOptions{Name: "Ada Example", NonInteractive: true}))

	out := filepath.Join(t.TempDir(), "page.txt")
	require.NoError(t, Export(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	page := string(data)
	assert.Contains(t, page, "Ada Example")
	assert.Contains(t, page, "Your Most Recent Role", "starter timeline renders")
	assert.Contains(t, page, "Experience")
	assert.Contains(t, page, "Contact")
}

func TestExportBadOutputPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	require.NoError(t, Init(InitOptions{Name: "Ada", NonInteractive: true}))

	err := Export(filepath.Join("no", "such", "dir", "page.txt"))
	require.Error(t, err)
}
