// Package apikey loads the shared-secret credentials accepted by the
// calorie.space services.
//
// A Set is built once at process start and only read afterwards, so it is
// shared across concurrent calls without locking.
package apikey

import (
	"crypto/subtle"
	"fmt"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/louisbranch/calorie.space/internal/platform/config"
)

// DefaultKey is the baseline credential every service accepts and every
// front-end sends when nothing else is configured.
const DefaultKey = "calorie-service-key-2024"

// Key file entries. Both dotenv and properties spellings are accepted.
var fileSingleKeys = []string{"API_KEY", "api.key"}
var fileListKeys = []string{"API_KEYS", "api.keys"}

// Config names the external credential sources.
type Config struct {
	Keys     []string `env:"CALORIE_SPACE_API_KEYS" envSeparator:","`
	KeysFile string   `env:"CALORIE_SPACE_API_KEYS_FILE"`
}

// Set is an immutable set of accepted credentials.
type Set struct {
	keys []string
}

// NewSet returns a Set holding the non-empty, trimmed keys.
func NewSet(keys ...string) Set {
	seen := make(map[string]struct{}, len(keys))
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, key)
	}
	sort.Strings(normalized)
	return Set{keys: normalized}
}

// Contains reports whether key is accepted. Every candidate is compared in
// constant time.
func (s Set) Contains(key string) bool {
	if key == "" {
		return false
	}
	found := 0
	for _, candidate := range s.keys {
		found |= subtle.ConstantTimeCompare([]byte(candidate), []byte(key))
	}
	return found == 1
}

// Len returns the number of accepted credentials.
func (s Set) Len() int {
	return len(s.keys)
}

// Load builds the Set from DefaultKey plus cfg's sources. A configured key
// file that cannot be read is an error.
func Load(cfg Config) (Set, error) {
	keys := []string{DefaultKey}
	keys = append(keys, cfg.Keys...)

	if path := strings.TrimSpace(cfg.KeysFile); path != "" {
		fileKeys, err := readKeyFile(path)
		if err != nil {
			return Set{}, err
		}
		keys = append(keys, fileKeys...)
	}
	return NewSet(keys...), nil
}

// LoadFromEnv parses Config from the environment and loads the Set.
func LoadFromEnv() (Set, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Set{}, err
	}
	return Load(cfg)
}

func readKeyFile(path string) ([]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read api key file %s: %w", path, err)
	}
	var keys []string
	for _, name := range fileSingleKeys {
		if value, ok := values[name]; ok {
			keys = append(keys, value)
		}
	}
	for _, name := range fileListKeys {
		if value, ok := values[name]; ok {
			keys = append(keys, strings.Split(value, ",")...)
		}
	}
	return keys, nil
}
