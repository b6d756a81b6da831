package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pointmatch"
	"github.com/katalvlaran/pointmatch/completion"
	"github.com/katalvlaran/pointmatch/config"
	"github.com/katalvlaran/pointmatch/geometry"
	"github.com/katalvlaran/pointmatch/hungarian"
	"github.com/katalvlaran/pointmatch/pointio"
)

// Exit statuses.
const (
	exitOK        = 0
	exitFailure   = 1
	exitInput     = 2
	exitInvariant = 3
)

// errUsage marks command-line mistakes (bad flags, extra arguments).
var errUsage = errors.New("usage error")

// flags holds the raw command-line values; only those the user set
// override the configuration.
type flags struct {
	configPath      string
	tolerance       float64
	fixedTolerance  bool
	precision       int
	format          string
	inputFormat     string
	verbose         bool
	checkInvariants bool
	output          string
}

// app is one invocation of the command.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	flags  flags
	cfg    *config.Config
	logger *zap.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "pointmatch: %v\n", err)
	}

	return exitCode(err)
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	ap := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "pointmatch [input-file]",
		Short: "Pair two planar point sets at minimum total distance",
		Long: `pointmatch reads "a b" followed by a source points and b target points
(one "x y" per point) and prints the pairs of a minimum-distance pairing:
the number of pairs, one "u v" line per pair using flat vertex indices
(sources 0..a-1, targets a..a+b-1), and the total distance.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.Wrapf(errUsage, "accepts at most 1 input file, received %d", len(args))
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: ap.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if ap.logger != nil {
				_ = ap.logger.Sync()
			}
		},
		RunE: ap.runMatch,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(errUsage, err.Error())
	})

	f := cmd.Flags()
	f.StringVarP(&ap.flags.configPath, "config", "c", "", "path to a YAML configuration file")
	f.Float64Var(&ap.flags.tolerance, "tolerance", float64(hungarian.DefaultTolerance), "zero threshold for slacks and potentials")
	f.BoolVar(&ap.flags.fixedTolerance, "fixed-tolerance", false, "use --tolerance as-is instead of scaling it to the coordinates")
	f.IntVarP(&ap.flags.precision, "precision", "p", pointio.DefaultPrecision, "decimal digits of the printed total")
	f.StringVarP(&ap.flags.format, "format", "f", "text", "output format: text or yaml")
	f.StringVar(&ap.flags.inputFormat, "input-format", "text", "input format: text or yaml")
	f.BoolVarP(&ap.flags.verbose, "verbose", "v", false, "log solver progress at debug level")
	f.BoolVar(&ap.flags.checkInvariants, "check-invariants", false, "verify dual feasibility after every step (slow)")
	f.StringVarP(&ap.flags.output, "output", "o", "", "write the pairing to this file instead of stdout")

	return cmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (ap *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := ap.loadConfig(cmd)
	if err != nil {
		return err
	}
	ap.cfg = cfg
	ap.logger = newLogger(ap.stderr, cfg.Level(), ap.flags.verbose)

	return nil
}

func (ap *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(ap.flags.configPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("tolerance") {
		cfg.Tolerance = ap.flags.tolerance
	}
	if f.Changed("fixed-tolerance") {
		cfg.FixedTolerance = ap.flags.fixedTolerance
	}
	if f.Changed("precision") {
		cfg.Precision = ap.flags.precision
	}
	if f.Changed("format") {
		cfg.Format = ap.flags.format
	}
	if f.Changed("check-invariants") {
		cfg.CheckInvariants = ap.flags.checkInvariants
	}
	if ap.flags.verbose {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger writes JSON records to w, or human-readable ones when verbose.
func newLogger(w io.Writer, lvl zapcore.Level, verbose bool) *zap.Logger {
	var enc zapcore.Encoder
	if verbose {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
}

func (ap *app) runMatch(_ *cobra.Command, args []string) error {
	cfg := ap.cfg

	in, err := ap.readInstance(args)
	if err != nil {
		return err
	}
	ap.logger.Debug("instance loaded", zap.Int("a", in.A()), zap.Int("b", in.B()))

	start := time.Now()
	rep, err := pointmatch.Match(in, cfg.SolverOptions(ap.logger)...)
	if err != nil {
		return errors.WithMessage(err, "match")
	}
	st := rep.Result.Stats
	ap.logger.Debug("pairing computed",
		zap.Int("a", in.A()),
		zap.Int("b", in.B()),
		zap.Int("pairs", len(rep.Pairing.Pairs)),
		zap.Float64("total", rep.Pairing.Total),
		zap.Int("outer_iterations", st.OuterIterations),
		zap.Duration("elapsed", time.Since(start)),
	)

	return ap.writePairing(rep.Pairing, cfg)
}

func (ap *app) readInstance(args []string) (geometry.Instance, error) {
	f, err := pointio.ParseFormat(ap.flags.inputFormat)
	if err != nil {
		return geometry.Instance{}, err
	}

	r := ap.stdin
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		fh, err := os.Open(args[0])
		if err != nil {
			return geometry.Instance{}, errors.Wrap(err, "open input")
		}
		defer fh.Close()
		r, name = fh, args[0]
	}

	in, err := pointio.Read(r, f)
	if err != nil {
		return geometry.Instance{}, errors.WithMessage(err, name)
	}

	return in, nil
}

func (ap *app) writePairing(p completion.Pairing, cfg *config.Config) (err error) {
	w := ap.stdout
	if ap.flags.output != "" {
		var fh *os.File
		if fh, err = os.Create(ap.flags.output); err != nil {
			return errors.Wrap(err, "create output")
		}
		defer func() {
			if cerr := fh.Close(); cerr != nil && err == nil {
				err = errors.Wrap(cerr, "close output")
			}
		}()
		w = fh
	}

	return pointio.Write(w, p, cfg.OutputFormat(), cfg.Precision)
}

// exitCode maps an error returned by the command to the process status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, hungarian.ErrNoProgress),
		errors.Is(err, hungarian.ErrInfeasible),
		errors.Is(err, hungarian.ErrAsymmetric),
		errors.Is(err, hungarian.ErrCorruptTree),
		errors.Is(err, completion.ErrNoNeighbour):
		return exitInvariant
	case errors.Is(err, errUsage),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, pointio.ErrMalformed),
		errors.Is(err, pointio.ErrShortInput),
		errors.Is(err, pointio.ErrBadCount),
		errors.Is(err, pointio.ErrUnknownFormat),
		errors.Is(err, geometry.ErrNonFinite),
		errors.Is(err, hungarian.ErrEmptySide),
		errors.Is(err, hungarian.ErrMoreSources),
		errors.Is(err, hungarian.ErrBadTolerance),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission):
		return exitInput
	default:
		return exitFailure
	}
}
