// Package apikeygen mints random API keys for the credential gate.
package apikeygen

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
)

// Output formats.
const (
	FormatEnv  = "env"
	FormatFile = "file"
)

// Config holds configuration for API key generation.
type Config struct {
	Bytes  int
	Format string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Bytes: 24, Format: FormatEnv}
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "number of random bytes (default: 24)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: env or file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates a key and writes it to out, either as an environment
// assignment or as a key-file entry.
func Run(cfg Config, out io.Writer, reader io.Reader) error {
	if cfg.Bytes <= 0 {
		return errors.New("bytes must be greater than zero")
	}
	if out == nil {
		return errors.New("output is required")
	}
	var line string
	switch cfg.Format {
	case FormatEnv, "":
		line = "CALORIE_SPACE_API_KEYS=%s\n"
	case FormatFile:
		line = "API_KEY=%s\n"
	default:
		return fmt.Errorf("format %q is not supported", cfg.Format)
	}
	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, cfg.Bytes)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return fmt.Errorf("generate random bytes: %w", err)
	}
	_, err := fmt.Fprintf(out, line, hex.EncodeToString(buf))
	return err
}
