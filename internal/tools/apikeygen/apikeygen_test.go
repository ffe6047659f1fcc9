package apikeygen

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/calorie.space/internal/platform/apikey"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("apikeygen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Bytes != 24 {
		t.Fatalf("expected default bytes 24, got %d", cfg.Bytes)
	}
	if cfg.Format != FormatEnv {
		t.Fatalf("expected default format env, got %q", cfg.Format)
	}
}

func TestParseConfigOverride(t *testing.T) {
	fs := flag.NewFlagSet("apikeygen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-bytes", "16", "-format", "file"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Bytes != 16 || cfg.Format != FormatFile {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	if err := Run(Config{Bytes: 0}, &bytes.Buffer{}, bytes.NewReader(nil)); err == nil {
		t.Fatal("expected error for non-positive bytes")
	}
	if err := Run(Config{Bytes: 4, Format: "yaml"}, &bytes.Buffer{}, bytes.NewReader(nil)); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if err := Run(Config{Bytes: 4}, nil, nil); err == nil {
		t.Fatal("expected error for nil output")
	}
}

func TestRunWritesEnv(t *testing.T) {
	buf := &bytes.Buffer{}
	reader := bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	if err := Run(Config{Bytes: 4, Format: FormatEnv}, buf, reader); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "CALORIE_SPACE_API_KEYS=01020304" {
		t.Fatalf("expected env output, got %q", got)
	}
}

func TestRunWritesLoadableKeyFile(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Run(Config{Bytes: 8, Format: FormatFile}, buf, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	path := filepath.Join(t.TempDir(), "api.env")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	keys, err := apikey.Load(apikey.Config{KeysFile: path})
	if err != nil {
		t.Fatalf("load keys: %v", err)
	}
	key := strings.TrimPrefix(strings.TrimSpace(buf.String()), "API_KEY=")
	if len(key) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", key)
	}
	if !keys.Contains(key) {
		t.Fatalf("generated key %q not accepted by loaded set", key)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, fmt.Errorf("read error") }

func TestRunReaderError(t *testing.T) {
	if err := Run(Config{Bytes: 4}, &bytes.Buffer{}, errReader{}); err == nil {
		t.Fatal("expected reader error")
	}
}
