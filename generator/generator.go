// Package generator builds random passwords from fixed character groups.
//
// Two shapes are offered. Generator takes a total length and toggles for
// uppercase letters, numbers and special characters, backfilling disabled
// groups with lowercase letters. CountedGenerator takes an explicit count
// per group.
package generator

import (
	"bytes"
	"log/slog"

	"github.com/ordinateio/password-go/internal/config"
	"github.com/ordinateio/password-go/random"
)

type options struct {
	src    random.Source
	logger *slog.Logger
}

// Option configures a generator.
type Option func(*options)

// WithSource sets the random source, random.Crypto() by default. The
// generator is safe for concurrent use only if src is.
func WithSource(src random.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithLogger sets the logger used for diagnostics. Passwords are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{
		src:    random.Crypto(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Generator creates passwords of a fixed total length.
type Generator struct {
	props Properties
	opts  options
}

// New creates a Generator using DefaultProperties with overrides applied.
func New(overrides PropertiesOverrides, opts ...Option) *Generator {
	g := &Generator{
		props: DefaultProperties().Merge(overrides),
		opts:  newOptions(opts),
	}

	if g.props.Length < MinLength {
		g.opts.logger.Debug("password length below minimum, some groups may be missing",
			"length", g.props.Length, "min", MinLength)
	}

	return g
}

// NewFromEnv is like New with overrides read from the PASSWORD_* environment
// variables and an optional .env file in the working directory. Variables
// found only in the .env file are exported into the process environment.
func NewFromEnv(opts ...Option) (*Generator, error) {
	cfg, err := config.Load(newOptions(opts).logger)
	if err != nil {
		return nil, err
	}
	return New(propertiesOverrides(cfg), opts...), nil
}

// NewFromEnvFile is like NewFromEnv but requires the dotenv file at path.
// Its variables are exported into the process environment unless already set.
func NewFromEnvFile(path string, opts ...Option) (*Generator, error) {
	cfg, err := config.LoadFile(path, newOptions(opts).logger)
	if err != nil {
		return nil, err
	}
	return New(propertiesOverrides(cfg), opts...), nil
}

func propertiesOverrides(cfg config.Config) PropertiesOverrides {
	return PropertiesOverrides{
		Uppercase: cfg.Uppercase,
		Numbers:   cfg.Numbers,
		Special:   cfg.Special,
		Length:    cfg.Length,
	}
}

// Properties returns the resolved composition.
func (g *Generator) Properties() Properties {
	return g.props
}

// Create returns a new password. A non-positive length yields an empty string.
func (g *Generator) Create() string {
	return assemble(g.opts.src, g.props.parts())
}

// CountedGenerator creates passwords from per-group character counts.
type CountedGenerator struct {
	counts Counts
	opts   options
}

// NewCounted creates a CountedGenerator using DefaultCounts with overrides applied.
func NewCounted(overrides CountsOverrides, opts ...Option) *CountedGenerator {
	return &CountedGenerator{
		counts: DefaultCounts().Merge(overrides),
		opts:   newOptions(opts),
	}
}

// NewCountedFromEnv is like NewCounted with overrides read from the
// PASSWORD_*_COUNT environment variables and an optional .env file in the
// working directory. Variables found only in the .env file are exported into
// the process environment.
func NewCountedFromEnv(opts ...Option) (*CountedGenerator, error) {
	cfg, err := config.Load(newOptions(opts).logger)
	if err != nil {
		return nil, err
	}
	return NewCounted(countsOverrides(cfg), opts...), nil
}

// NewCountedFromEnvFile is like NewCountedFromEnv but requires the dotenv file at path.
func NewCountedFromEnvFile(path string, opts ...Option) (*CountedGenerator, error) {
	cfg, err := config.LoadFile(path, newOptions(opts).logger)
	if err != nil {
		return nil, err
	}
	return NewCounted(countsOverrides(cfg), opts...), nil
}

func countsOverrides(cfg config.Config) CountsOverrides {
	return CountsOverrides{
		Letters:   cfg.LettersCount,
		Uppercase: cfg.UppercaseCount,
		Numbers:   cfg.NumbersCount,
		Special:   cfg.SpecialCount,
	}
}

// Counts returns the instance default composition.
func (g *CountedGenerator) Counts() Counts {
	return g.counts
}

// Create returns a new password. Overrides apply to this call only.
// It fails with ErrInvalidComposition when every count resolves to zero.
func (g *CountedGenerator) Create(overrides CountsOverrides) (string, error) {
	counts := g.counts.Merge(overrides)
	if err := counts.Validate(); err != nil {
		g.opts.logger.Debug("password composition rejected", "counts", counts, "error", err)
		return "", err
	}

	return assemble(g.opts.src, counts.parts()), nil
}

// part is a run of length characters drawn from charset.
type part struct {
	charset string
	length  int
	upper   bool
}

func assemble(src random.Source, parts []part) string {
	buf := draw(src, parts)
	shuffle(src, buf)
	return string(buf)
}

// draw concatenates the parts in order, each character picked uniformly from its charset.
func draw(src random.Source, parts []part) []byte {
	size := 0
	for _, p := range parts {
		size = addLength(size, p.length)
	}

	buf := make([]byte, 0, size)
	for _, p := range parts {
		if p.length <= 0 {
			continue
		}

		chunk := make([]byte, p.length)
		for i := range chunk {
			chunk[i] = p.charset[src.IntN(len(p.charset))]
		}
		if p.upper {
			chunk = bytes.ToUpper(chunk)
		}
		buf = append(buf, chunk...)
	}

	return buf
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(src random.Source, data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
