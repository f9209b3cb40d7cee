package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/lbarbosa/ctdose/internal/model"
)

// Config holds all runtime configuration for a ctdose run.
type Config struct {
	DSN           string
	InputFolder   string // folder scanned for *.pdf
	OutputFolder  string // folder receiving per-report and aggregate JSON
	AggregateFile string // aggregate filename within OutputFolder
	XLSXPath      string
	ParquetPath   string // empty: skip the Parquet writer
	PatternsPath  string
	FilePath      string // single PDF for inspect
	LogFormat     string // "text" or "json"
	Debug         bool

	ExtraPatterns map[string][]string `yaml:"extra_patterns"` // field name -> appended fallback patterns
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	ExtraPatterns map[string][]string `yaml:"extra_patterns"`
}

// LoadFromFile reads a YAML patterns file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read patterns file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse patterns file: %w", err)
	}
	c.ExtraPatterns = yc.ExtraPatterns
	return c.validateExtraPatterns()
}

// validateExtraPatterns checks that every overlay key names a known pattern
// field and that every expression compiles case-insensitively with exactly
// one capture group.
func (c *Config) validateExtraPatterns() error {
	for name, exprs := range c.ExtraPatterns {
		if _, ok := model.PatternFieldByName(name); !ok {
			return fmt.Errorf("unknown pattern field %q in patterns file", name)
		}
		for _, expr := range exprs {
			re, err := regexp.Compile(`(?i)` + expr)
			if err != nil {
				return fmt.Errorf("pattern field %q: %w", name, err)
			}
			if n := re.NumSubexp(); n != 1 {
				return fmt.Errorf("pattern field %q: %q has %d capture groups, want 1", name, expr, n)
			}
		}
	}
	return nil
}

// Validate checks fields every subcommand needs.
func (c *Config) Validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("--log-format must be %q or %q", "text", "json")
	}
	return nil
}

// ValidateExtract checks the fields the extract pipeline needs.
func (c *Config) ValidateExtract() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.InputFolder == "" {
		return fmt.Errorf("--folder is required")
	}
	if c.OutputFolder == "" {
		return fmt.Errorf("--output-folder is required")
	}
	if c.AggregateFile == "" {
		return fmt.Errorf("--output is required")
	}
	return nil
}

// ValidateExport checks the fields the export pipeline needs.
func (c *Config) ValidateExport() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputFolder == "" {
		return fmt.Errorf("--input-folder is required")
	}
	if c.XLSXPath == "" {
		return fmt.Errorf("--output is required")
	}
	return nil
}

// ValidateWithDSN additionally requires a database DSN.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or CTDOSE_DB_URL is required")
	}
	return nil
}
