package pointio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pointmatch/completion"
)

// DefaultPrecision is the number of decimals printed for the total.
const DefaultPrecision = 9

// Write encodes p in the given format with prec decimals for the total.
func Write(w io.Writer, p completion.Pairing, f Format, prec int) error {
	switch f {
	case FormatText:
		return WriteText(w, p, prec)
	case FormatYAML:
		return WriteYAML(w, p, prec)
	default:
		return errors.Wrapf(ErrUnknownFormat, "format %d", int(f))
	}
}

// WriteText writes the plain text format:
//
//	<count>
//	<u> <v>   (one line per pair)
//	<total>   (fixed point, prec decimals)
func WriteText(w io.Writer, p completion.Pairing, prec int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	buf = strconv.AppendInt(buf[:0], int64(len(p.Pairs)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "writing pair count")
	}
	for _, pr := range p.Pairs {
		buf = strconv.AppendInt(buf[:0], int64(pr.From), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(pr.To), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "writing pair %d-%d", pr.From, pr.To)
		}
	}
	buf = strconv.AppendFloat(buf[:0], p.Total, 'f', prec, 64)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "writing total")
	}

	return errors.Wrap(bw.Flush(), "flushing output")
}

// yamlPairing is the YAML shape of a pairing. Total is a pre-formatted float
// node so the document keeps the requested number of decimals.
type yamlPairing struct {
	Count int        `yaml:"count"`
	Pairs [][2]int   `yaml:"pairs,flow"`
	Total *yaml.Node `yaml:"total"`
}

// WriteYAML writes
//
//	count: 2
//	pairs: [[0, 2], [1, 3]]
//	total: 2.000000000
func WriteYAML(w io.Writer, p completion.Pairing, prec int) error {
	doc := yamlPairing{
		Count: len(p.Pairs),
		Pairs: make([][2]int, len(p.Pairs)),
		Total: &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!float",
			Value: strconv.FormatFloat(p.Total, 'f', prec, 64),
		},
	}
	for k, pr := range p.Pairs {
		doc.Pairs[k] = [2]int{int(pr.From), int(pr.To)}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}

	return errors.Wrap(enc.Close(), "closing yaml encoder")
}
