package snippet

import (
	"fmt"
	"io"
	"os"

	"bigo-sim/src/util"
)

// Provider acquires the snippet text to analyze. Sources, in precedence
// order: an inline code argument, stdin (path "-"), or a file path.
type Provider struct {
	stdin io.Reader
}

// NewProvider creates a provider reading stdin from os.Stdin
func NewProvider() *Provider {
	return &Provider{stdin: os.Stdin}
}

// NewProviderWithStdin creates a provider with a custom stdin reader
func NewProviderWithStdin(stdin io.Reader) *Provider {
	return &Provider{stdin: stdin}
}

// Load resolves the snippet text from the given sources
func (p *Provider) Load(code, filePath string) (string, error) {
	if code != "" {
		return code, nil
	}

	if filePath == "-" {
		util.Debug("Reading snippet from stdin")
		data, err := io.ReadAll(p.stdin)
		if err != nil {
			return "", fmt.Errorf("reading snippet from stdin: %w", err)
		}
		return string(data), nil
	}

	if filePath != "" {
		util.Debug("Reading snippet from file: %s", filePath)
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("reading snippet file: %w", err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("no snippet provided: use --code or --file (- for stdin)")
}
