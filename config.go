package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a run can take from a YAML file.
// Command-line flags override it.
type Config struct {
	Inputs  []string
	Output  bool
	Trace   bool
	Verbose bool
	History string
}

type configFile struct {
	Inputs  stringList `yaml:"inputs"`
	Output  *bool      `yaml:"output"`
	Trace   *bool      `yaml:"trace"`
	Verbose bool       `yaml:"verbose"`
	History string     `yaml:"history"`
}

func defaultConfig() *Config {
	return &Config{Output: true, Trace: true, History: ".pumpkin_history"}
}

// loadConfig reads the YAML config at path.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	return decodeConfig(file, path)
}

func decodeConfig(r io.Reader, name string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: %s is empty", name)
		}
		return nil, fmt.Errorf("config: parse %s: %w", name, err)
	}

	cfg := defaultConfig()
	cfg.Inputs = []string(raw.Inputs)
	if raw.Output != nil {
		cfg.Output = *raw.Output
	}
	if raw.Trace != nil {
		cfg.Trace = *raw.Trace
	}
	cfg.Verbose = raw.Verbose
	if raw.History != "" {
		cfg.History = raw.History
	}
	return cfg, nil
}

// stringList accepts either a sequence of strings or a single
// comma-separated string, which is split the same way -inputs is.
type stringList []string

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = splitInputs(value.Value)
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			items = append(items, strings.TrimSpace(str))
		}
		*l = stringList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("config: expected string or sequence for inputs but found %s", value.ShortTag())
	}
}
