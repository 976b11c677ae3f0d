package snippet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInlineCode(t *testing.T) {
	p := NewProvider()

	text, err := p.Load("for i in 0..<n {", "")
	require.NoError(t, err)
	assert.Equal(t, "for i in 0..<n {", text)
}

func TestLoadInlineCodeWinsOverFile(t *testing.T) {
	p := NewProvider()

	text, err := p.Load("let x = 1", "does-not-exist.txt")
	require.NoError(t, err)
	assert.Equal(t, "let x = 1", text)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippet.txt")
	require.NoError(t, os.WriteFile(path, []byte("while i < n {\n"), 0644))

	p := NewProvider()
	text, err := p.Load("", path)
	require.NoError(t, err)
	assert.Equal(t, "while i < n {\n", text)
}

func TestLoadFromMissingFile(t *testing.T) {
	p := NewProvider()

	_, err := p.Load("", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadFromStdin(t *testing.T) {
	p := NewProviderWithStdin(strings.NewReader("func sortAll() {\n"))

	text, err := p.Load("", "-")
	require.NoError(t, err)
	assert.Equal(t, "func sortAll() {\n", text)
}

func TestLoadNoSource(t *testing.T) {
	p := NewProvider()

	_, err := p.Load("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no snippet provided")
}
