package context

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// CompilerOptions holds compiler configuration.
// Passed to the context at creation time and remains immutable.
type CompilerOptions struct {
	Debug        bool `toml:"debug"`         // Trace phases and tokens to stderr
	DropTrailing bool `toml:"drop_trailing"` // Discard text pending at end of input
	NoColor      bool `toml:"no_color"`      // Never style diagnostics
}

// LoadOptions reads options from a TOML file. An empty path yields the
// defaults. Unknown keys are rejected.
func LoadOptions(path string) (*CompilerOptions, error) {
	options := &CompilerOptions{}
	if path == "" {
		return options, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(options); err != nil {
		return nil, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}

	return options, nil
}
