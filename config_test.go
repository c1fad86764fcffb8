package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var configTests = []struct {
	yaml string
	want Config
}{
	{"inputs: [42, Ada]\n", Config{Inputs: []string{"42", "Ada"}, Output: true, Trace: true, History: ".pumpkin_history"}},
	{"inputs: 42, Ada ,\n", Config{Inputs: []string{"42", "Ada"}, Output: true, Trace: true, History: ".pumpkin_history"}},
	{"inputs: ~\ntrace: false\n", Config{Output: true, Trace: false, History: ".pumpkin_history"}},
	{"output: false\nverbose: true\nhistory: /tmp/h\n", Config{Output: false, Trace: true, Verbose: true, History: "/tmp/h"}},
	{"inputs:\n  - ' spaced '\n  - ''\n", Config{Inputs: []string{"spaced", ""}, Output: true, Trace: true, History: ".pumpkin_history"}},
}

func TestDecodeConfig(t *testing.T) {
	for _, tt := range configTests {
		cfg, err := decodeConfig(strings.NewReader(tt.yaml), "test.yaml")
		if err != nil {
			t.Errorf("decodeConfig(%q): unexpected error: %v", tt.yaml, err)
			continue
		}
		if !reflect.DeepEqual(*cfg, tt.want) {
			t.Errorf("decodeConfig(%q) = %+v, want %+v", tt.yaml, *cfg, tt.want)
		}
	}
}

var configErrorTests = []struct {
	yaml  string
	error string
}{
	{"", "is empty"},
	{"input: [1]\n", "field input not found"},
	{"inputs: {a: 1}\n", "expected string or sequence"},
	{"trace: maybe\n", "parse test.yaml"},
}

func TestDecodeConfigErrors(t *testing.T) {
	for _, tt := range configErrorTests {
		_, err := decodeConfig(strings.NewReader(tt.yaml), "test.yaml")
		if err == nil {
			t.Errorf("decodeConfig(%q): expected an error but found none", tt.yaml)
			continue
		}
		if !strings.Contains(err.Error(), tt.error) {
			t.Errorf("decodeConfig(%q) = %v, want error containing %q", tt.yaml, err, tt.error)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pumpkin.yaml")
	if err := os.WriteFile(path, []byte("inputs: [1, 2]\ntrace: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.Inputs, []string{"1", "2"}) || cfg.Trace {
		t.Errorf("loadConfig = %+v", cfg)
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("loadConfig of a missing file succeeded")
	}
	if _, err := loadConfig(""); err == nil {
		t.Errorf("loadConfig(\"\") succeeded")
	}
}
