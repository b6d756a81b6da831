package pointio

import (
	"strings"

	"github.com/pkg/errors"
)

// Format selects an encoding.
type Format int

const (
	// FormatText is the whitespace-separated plain text format.
	FormatText Format = iota

	// FormatYAML is a YAML document.
	FormatYAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat maps "text"/"txt" and "yaml"/"yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}
