package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmdRejectsUnsupportedFormat(t *testing.T) {
	h := New()
	h.rootCmd.SetArgs([]string{"analyze", "--code", "let x = 1", "--format", "csv"})

	err := h.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestAnalyzeCmdAcceptsSupportedFormat(t *testing.T) {
	h := New()
	h.rootCmd.SetArgs([]string{"analyze", "--code", "for i in 0..<n {", "--format", "text", "--size", "10"})

	assert.NoError(t, h.Execute())
}
