package pointio

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pointmatch/geometry"
)

// Read decodes an instance in the given format.
func Read(r io.Reader, f Format) (geometry.Instance, error) {
	switch f {
	case FormatText:
		return ReadText(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return geometry.Instance{}, errors.Wrapf(ErrUnknownFormat, "format %d", int(f))
	}
}

// tokens walks whitespace-separated words and remembers their ordinal for
// error messages.
type tokens struct {
	sc *bufio.Scanner
	n  int
}

func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", errors.Wrapf(err, "reading %s", what)
		}
		return "", errors.Wrapf(ErrShortInput, "missing %s (token %d)", what, t.n+1)
	}
	t.n++

	return t.sc.Text(), nil
}

func (t *tokens) count(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "%s: token %d %q", what, t.n, tok)
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrBadCount, "%s=%d", what, v)
	}

	return v, nil
}

func (t *tokens) coord(what string, v int) (float64, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, errors.WithMessagef(err, "point %d", v)
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errors.Wrapf(ErrMalformed, "point %d %s: token %d %q", v, what, t.n, tok)
	}

	return x, nil
}

// ReadText decodes the plain text format.
// Complexity: O(a+b).
func ReadText(r io.Reader) (geometry.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	t := &tokens{sc: sc}

	a, err := t.count("source count")
	if err != nil {
		return geometry.Instance{}, err
	}
	b, err := t.count("target count")
	if err != nil {
		return geometry.Instance{}, err
	}
	if b > math.MaxInt-a {
		return geometry.Instance{}, errors.Wrapf(ErrBadCount, "a=%d b=%d overflows the vertex count", a, b)
	}

	// grow as coordinates arrive so a bogus header cannot force a huge allocation
	points := make([]geometry.Point, 0, min(a+b, 4096))
	var (
		v    int
		x, y float64
	)
	for v = 0; v < a+b; v++ {
		if x, err = t.coord("x", v); err != nil {
			return geometry.Instance{}, err
		}
		if y, err = t.coord("y", v); err != nil {
			return geometry.Instance{}, err
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}

	return geometry.NewInstance(a, points), nil
}

// yamlInstance is the YAML shape of an instance:
//
//	sources: [[0, 0], [10, 10]]
//	targets: [[0, 1], [10, 11]]
type yamlInstance struct {
	Sources [][2]float64 `yaml:"sources"`
	Targets [][2]float64 `yaml:"targets"`
}

// ReadYAML decodes an instance from a YAML document.
func ReadYAML(r io.Reader) (geometry.Instance, error) {
	var doc yamlInstance
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return geometry.Instance{}, errors.Wrap(ErrShortInput, "empty YAML document")
		}
		return geometry.Instance{}, errors.Wrapf(ErrMalformed, "yaml: %v", err)
	}

	in := geometry.Instance{
		Sources: make([]geometry.Point, len(doc.Sources)),
		Targets: make([]geometry.Point, len(doc.Targets)),
	}
	for i, p := range doc.Sources {
		in.Sources[i] = geometry.Point{X: p[0], Y: p[1]}
	}
	for j, p := range doc.Targets {
		in.Targets[j] = geometry.Point{X: p[0], Y: p[1]}
	}
	if err := in.Validate(); err != nil {
		return geometry.Instance{}, errors.Wrap(ErrMalformed, err.Error())
	}

	return in, nil
}
