package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/randgraph"
	"github.com/katalvlaran/randgraph/internal/config"
)

// render writes s to w in the given format.
func render(w io.Writer, format string, s *randgraph.Snapshot) error {
	switch format {
	case config.FormatText:
		return renderText(w, s)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: format %q", config.ErrInvalidConfig, format)
	}
}
