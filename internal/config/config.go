package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the optional configuration file.
const FileName = "pqtool.yaml"

// ErrNotFound is returned by Load when no configuration file exists in any
// of the standard locations.
var ErrNotFound = errors.New("no config file found in standard locations")

// Type holds the parsed configuration file. Source is the path it was read
// from and is what the flag value sources read again.
type Type struct {
	Source string
	Data   map[string]any
}

// Load reads the configuration file. When path is empty the standard
// locations are searched.
func Load(path ...string) (Type, error) {
	var source string
	if len(path) > 0 && path[0] != "" {
		source = path[0]
	} else {
		found, err := findConfig()
		if err != nil {
			return Type{}, err
		}
		source = found
	}

	b, err := os.ReadFile(source)
	if err != nil {
		return Type{}, fmt.Errorf("failed to read config: %w", err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(b, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}

	return Type{Source: source, Data: data}, nil
}

// Get traverses the data using a dotted key path.
func (cfg Type) Get(key string) (any, bool) {
	var current any = cfg.Data
	for _, k := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[k]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetString returns the string at key, or defaultValue when the key is
// missing or not a string.
func (cfg Type) GetString(key string, defaultValue string) string {
	v, ok := cfg.Get(key)
	if !ok {
		return defaultValue
	}
	s, ok := v.(string)
	if !ok {
		return defaultValue
	}
	return s
}

func findConfig() (string, error) {
	candidates := []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
			log.Debugf("using config file: %s", file)
			return file, nil
		}
	}
	return "", ErrNotFound
}
