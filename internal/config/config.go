package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvUppercase      = "PASSWORD_UPPERCASE"
	EnvNumbers        = "PASSWORD_NUMBERS"
	EnvSpecial        = "PASSWORD_SPECIAL"
	EnvLength         = "PASSWORD_LENGTH"
	EnvLettersCount   = "PASSWORD_LETTERS_COUNT"
	EnvUppercaseCount = "PASSWORD_UPPERCASE_COUNT"
	EnvNumbersCount   = "PASSWORD_NUMBERS_COUNT"
	EnvSpecialCount   = "PASSWORD_SPECIAL_COUNT"
)

var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds composition overrides read from the environment.
// A nil field means the variable was not set.
type Config struct {
	Uppercase *bool
	Numbers   *bool
	Special   *bool
	Length    *int

	LettersCount   *int
	UppercaseCount *int
	NumbersCount   *int
	SpecialCount   *int
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win; the ones
// found only in the file are exported into the process environment.
// A nil logger means slog.Default().
func Load(logger *slog.Logger) (Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using environment variables")
	}
	return fromEnv(logger)
}

// LoadFile is like Load but requires the dotenv file at path.
func LoadFile(path string, logger *slog.Logger) (Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := godotenv.Load(path); err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("dotenv file loaded", "path", path)
	return fromEnv(logger)
}

func fromEnv(logger *slog.Logger) (Config, error) {
	var (
		cfg Config
		err error
	)

	if cfg.Uppercase, err = getBool(logger, EnvUppercase); err != nil {
		return Config{}, err
	}
	if cfg.Numbers, err = getBool(logger, EnvNumbers); err != nil {
		return Config{}, err
	}
	if cfg.Special, err = getBool(logger, EnvSpecial); err != nil {
		return Config{}, err
	}
	if cfg.Length, err = getInt(logger, EnvLength); err != nil {
		return Config{}, err
	}
	if cfg.LettersCount, err = getInt(logger, EnvLettersCount); err != nil {
		return Config{}, err
	}
	if cfg.UppercaseCount, err = getInt(logger, EnvUppercaseCount); err != nil {
		return Config{}, err
	}
	if cfg.NumbersCount, err = getInt(logger, EnvNumbersCount); err != nil {
		return Config{}, err
	}
	if cfg.SpecialCount, err = getInt(logger, EnvSpecialCount); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getBool(logger *slog.Logger, key string) (*bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	logger.Debug("password config loaded", "key", key, "value", b)
	return &b, nil
}

func getInt(logger *slog.Logger, key string) (*int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	logger.Debug("password config loaded", "key", key, "value", n)
	return &n, nil
}
