package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/vaultpass/passgen-go/internal/charset"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/random"
)

const (
	SourceCrypto  = "crypto"
	SourceChaCha8 = "chacha8"
	SourceSeeded  = "seeded"
)

var ErrInvalidCount = errors.New("count must be at least 1")

type Config struct {
	Length      int      `short:"l" long:"length" env:"PASSGEN_LENGTH" default:"12" description:"Password length"`
	Classes     []string `short:"c" long:"class" env:"PASSGEN_CLASSES" env-delim:"," default:"lower" default:"upper" default:"digits" default:"special" description:"Character class to include (lower, upper, digits, special); repeatable"`
	Count       int      `short:"n" long:"count" env:"PASSGEN_COUNT" default:"1" description:"Number of passwords to generate"`
	Interactive bool     `short:"i" long:"interactive" description:"Start the interactive menu"`
	JSON        bool     `long:"json" description:"Print one JSON object per password"`
	Hash        bool     `long:"hash" env:"PASSGEN_HASH" description:"Also print an Argon2id hash of each password"`

	HashMemory      uint32 `long:"hash-memory" env:"PASSGEN_HASH_MEMORY" default:"65536" description:"Argon2id memory in KiB"`
	HashIterations  uint32 `long:"hash-iterations" env:"PASSGEN_HASH_ITERATIONS" default:"3" description:"Argon2id iterations"`
	HashParallelism uint8  `long:"hash-parallelism" env:"PASSGEN_HASH_PARALLELISM" default:"2" description:"Argon2id parallelism"`

	Source   string `long:"source" env:"PASSGEN_SOURCE" default:"crypto" choice:"crypto" choice:"chacha8" choice:"seeded" description:"Random source"`
	Seed     uint64 `long:"seed" env:"PASSGEN_SEED" description:"Seed for the seeded source (not for real credentials)"`
	LogLevel string `long:"log-level" env:"PASSGEN_LOG_LEVEL" default:"warn" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Log level"`
}

// Parse reads flags from args, falling back to PASSGEN_* environment variables.
// A --help request is returned as a *flags.Error of type flags.ErrHelp.
func Parse(args []string) (Config, error) {
	var cfg Config
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "passgen"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return Config{}, err
	}
	if len(rest) > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	return cfg, cfg.Validate()
}

// IsHelp reports whether err is a --help request.
func IsHelp(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

// Validate checks option combinations that struct tags cannot express.
func (c Config) Validate() error {
	if c.Length < 1 {
		return fmt.Errorf("%w: --length must be at least 1, got %d", crypto.ErrInvalidLength, c.Length)
	}
	if c.Count < 1 {
		return ErrInvalidCount
	}
	if _, err := c.CharacterClasses(); err != nil {
		return err
	}
	return nil
}

// CharacterClasses resolves the configured class names.
func (c Config) CharacterClasses() ([]charset.Class, error) {
	return charset.ParseClasses(c.Classes)
}

// HashParams returns the Argon2id parameters with salt and key sizes left at their defaults.
func (c Config) HashParams() crypto.HashParams {
	p := crypto.DefaultHashParams()
	p.Memory = c.HashMemory
	p.Iterations = c.HashIterations
	p.Parallelism = c.HashParallelism
	return p
}

// RandomSource builds the configured source.
func (c Config) RandomSource() (random.Source, error) {
	switch c.Source {
	case SourceCrypto, "":
		return random.Crypto(), nil
	case SourceChaCha8:
		return random.CryptoSeeded()
	case SourceSeeded:
		slog.Warn("seeded random source is deterministic; do not use the output as real credentials", "seed", c.Seed)
		return random.Seeded(c.Seed), nil
	}
	return nil, fmt.Errorf("unknown random source %q", c.Source)
}

// SlogLevel maps LogLevel onto slog, defaulting to warn.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
