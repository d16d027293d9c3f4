// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

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

// FileName is the config file looked up in the user configuration directory.
const FileName = "difftree.yaml"

// EnvFile overrides the config file location when set.
const EnvFile = "DIFFTREE_CFG_FILE"

// Type is the in-memory representation of the loaded configuration.
//
// Fields:
//   - Source: absolute path of the YAML file loaded, empty if none was found.
//   - Namespace: optional dot-prefixed keyspace tried before the bare key
//     (e.g. "navigator.pager" before "pager").
//   - Data: raw key/value tree unmarshaled from YAML.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Settings are the list-valued settings with defaults applied. pager and diff
// are single strings and reach the command through its flag sources instead.
type Settings struct {
	DiffArgs []string
	Exclude  []string
}

// Defaults mirror the classic "diff -up | less" pipeline.
const (
	DefaultPager    = "less"
	DefaultDiff     = "diff"
	DefaultDiffArgs = "-up"
)

// Config holds the global, lazily-initialized configuration instance.
var Config Type

// init attempts to load configuration at process start. A missing file is not
// an error for difftree; getters fall back to their defaults.
func init() {
	_, _ = Load()
}

// GetStringSlice returns the string slice value for the given dotted key path.
// A scalar string is accepted and split on whitespace, so "diff-args: -u -p"
// and a YAML list are equivalent.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case string:
		return strings.Fields(v), nil
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("slice element is not a string")
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, errors.New("value is not a slice")
	}
}

// Resolve returns Settings from the loaded config with defaults for anything
// missing or of the wrong shape.
func Resolve() Settings {
	s := Settings{}
	s.DiffArgs, _ = GetStringSlice("diff-args", strings.Fields(DefaultDiffArgs))
	s.Exclude, _ = GetStringSlice("exclude", []string{})
	return s
}

// Load reads the YAML configuration file and populates the global Config.
// Namespace survives a reload; data from a previous load does not.
func Load() (Type, error) {
	ns := Config.Namespace

	Config = Type{Namespace: ns}

	path, err := getConfigFile()
	if err != nil {
		return Config, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{
		Source:    path,
		Namespace: ns,
		Data:      data,
	}

	return Config, nil
}

// get traverses the configuration tree using a dotted key path. If Namespace
// is set, Namespace + "." + kspec is attempted first, then the bare key.
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		var current interface{} = cfg.Data

		success := true
		for _, part := range strings.Split(key, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[part]
			if !ok {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// getConfigFile returns the absolute path to the YAML config file. EnvFile
// wins when set; otherwise FileName in os.UserConfigDir is used. The file must
// exist and not be a directory.
func getConfigFile() (string, error) {
	if cfgPath := os.Getenv(EnvFile); cfgPath != "" {
		if fileInfo, err := os.Stat(cfgPath); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file from %s: %s", EnvFile, cfgPath)
				return cfgPath, nil
			}
			return "", fmt.Errorf("%s points to a directory: %s", EnvFile, cfgPath)
		}
		return "", fmt.Errorf("config file not found at %s path: %s", EnvFile, cfgPath)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, FileName)
	if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}

	return "", fmt.Errorf("no config file found in standard locations")
}
