// Package cli implements the ned2enu command line: it parses the strategy
// name and quaternion components, runs the conversion and prints the result.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/signalsfoundry/frame-converter/core"
	"github.com/signalsfoundry/frame-converter/internal/logging"
	"github.com/signalsfoundry/frame-converter/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Exit codes.
const (
	ExitOK                    = 0
	ExitUnknownImplementation = 1
	ExitFailure               = 1
	ExitMalformedInput        = 2
)

var (
	ErrMalformedInput        = errors.New("malformed input")
	ErrUnknownImplementation = errors.New("unknown implementation")
)

// Direction labels used in output and metrics.
const (
	DirectionNEDToENU = "ned_to_enu"
	DirectionENUToNED = "enu_to_ned"
)

// Config is the parsed command line.
type Config struct {
	Implementation string
	Input          core.Quaternion
	Inverse        bool
	Output         string
	MetricsFile    string
}

// Direction reports which frame conversion the config asks for.
func (c Config) Direction() string {
	if c.Inverse {
		return DirectionENUToNED
	}
	return DirectionNEDToENU
}

// Env carries the process collaborators so tests can substitute them.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    logging.Logger
}

// ParseArgs parses `[flags] <impl> <w> <x> <y> <z>`. Errors wrap
// ErrMalformedInput. The implementation name is not resolved here.
func ParseArgs(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("ned2enu", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: ned2enu [flags] <%s> <w> <x> <y> <z>\n", strings.Join(core.Names(), "|"))
		fs.PrintDefaults()
	}

	var cfg Config
	fs.BoolVar(&cfg.Inverse, "inverse", false, "convert from ENU to NED instead of NED to ENU")
	fs.StringVar(&cfg.Output, "output", formatText, "output format: text, json or yaml")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "write Prometheus metrics in text format to this path")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if !validFormat(cfg.Output) {
		return Config{}, fmt.Errorf("%w: unsupported output format %q", ErrMalformedInput, cfg.Output)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, fmt.Errorf("%w: expected implementation type", ErrMalformedInput)
	}
	cfg.Implementation = rest[0]
	rest = rest[1:]

	var comps [4]float64
	for i := range comps {
		if i >= len(rest) {
			return Config{}, fmt.Errorf("%w: missing quaternion component %d", ErrMalformedInput, i)
		}
		v, err := strconv.ParseFloat(rest[i], 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: invalid float %q for quaternion component %d", ErrMalformedInput, rest[i], i)
		}
		comps[i] = v
	}
	cfg.Input = core.Quaternion{W: comps[0], X: comps[1], Y: comps[2], Z: comps[3]}

	return cfg, nil
}

// Run executes one conversion for args and returns the process exit code.
func Run(ctx context.Context, args []string, env Env) int {
	log := env.Log
	if log == nil {
		log = logging.Noop()
	}

	cfg, err := ParseArgs(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		return reportError(env.Stderr, err)
	}

	strategy, ok := core.Lookup(cfg.Implementation)
	if !ok {
		return reportError(env.Stderr, fmt.Errorf("%w: %s", ErrUnknownImplementation, cfg.Implementation))
	}

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Warn(ctx, "tracing unavailable", logging.Error(err))
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	var collector *observability.ConversionCollector
	if cfg.MetricsFile != "" {
		collector, err = observability.NewConversionCollector(prometheus.NewRegistry())
		if err != nil {
			log.Error(ctx, "failed to initialise metrics collector", logging.Error(err))
			return ExitFailure
		}
	}

	result := convert(ctx, strategy, cfg, collector, log)

	if err := writeResult(env.Stdout, cfg, strategy, result); err != nil {
		log.Error(ctx, "failed to write result", logging.Error(err))
		return ExitFailure
	}

	if collector != nil {
		if err := collector.WriteTextfile(cfg.MetricsFile); err != nil {
			fmt.Fprintf(env.Stderr, "ned2enu: %v\n", err)
			return ExitFailure
		}
	}
	return ExitOK
}

func convert(ctx context.Context, s core.Strategy, cfg Config, collector *observability.ConversionCollector, log logging.Logger) core.Quaternion {
	_, span := otel.Tracer("github.com/signalsfoundry/frame-converter").Start(ctx, cfg.Direction())
	defer span.End()

	start := time.Now()
	result := s.Converter(cfg.Inverse)(cfg.Input)
	took := time.Since(start)

	collector.ObserveConversion(s.Name, cfg.Direction(), took)
	in := cfg.Input.Components()
	span.SetAttributes(
		attribute.String("strategy", s.Name),
		attribute.Float64Slice("input", in[:]),
	)

	log.Debug(ctx, "converted quaternion",
		logging.String("strategy", s.Name),
		logging.String("direction", cfg.Direction()),
		logging.Any("input", in),
		logging.Any("output", result.Components()),
	)
	return result
}

// reportError prints err to stderr and maps it to an exit code.
func reportError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "ned2enu: %v\n", err)
	switch {
	case errors.Is(err, ErrUnknownImplementation):
		return ExitUnknownImplementation
	case errors.Is(err, ErrMalformedInput):
		return ExitMalformedInput
	default:
		return ExitFailure
	}
}
