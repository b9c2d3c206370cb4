package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileName is the project-local config file looked up by Resolve.
const FileName = "payoff.yaml"

// Config represents the top-level payoff.yaml configuration.
type Config struct {
	Loan   LoanConfig   `yaml:"loan" toml:"loan"`
	Report ReportConfig `yaml:"report" toml:"report"`
	Chart  ChartConfig  `yaml:"chart" toml:"chart"`
}

// LoanConfig seeds the input fields. Values are kept as text and go through
// the same permissive parsing as typed input.
type LoanConfig struct {
	HomePrice           string `yaml:"home_price" toml:"home_price"`
	DownPaymentPercent  string `yaml:"down_payment_percent" toml:"down_payment_percent"`
	DownPaymentAmount   string `yaml:"down_payment_amount,omitempty" toml:"down_payment_amount,omitempty"`
	AnnualRatePercent   string `yaml:"annual_rate_percent" toml:"annual_rate_percent"`
	TermYears           string `yaml:"term_years" toml:"term_years"`
	ExtraMonthlyPayment string `yaml:"extra_monthly_payment" toml:"extra_monthly_payment"`
}

// ReportConfig controls the generated PDF.
type ReportConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Author string `yaml:"author,omitempty" toml:"author,omitempty"`
}

// ChartConfig controls the terminal chart. Width 0 means terminal width.
type ChartConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Load reads a config file from disk. Files ending in .toml are decoded as
// TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if isTOML(path) {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to path, as TOML or YAML depending on the extension.
func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		data = []byte(b.String())
	} else {
		var err error
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config describing a typical 30-year purchase.
func Default() *Config {
	return &Config{
		Loan: LoanConfig{
			HomePrice:           "375000",
			DownPaymentPercent:  "20",
			AnnualRatePercent:   "6.85",
			TermYears:           "30",
			ExtraMonthlyPayment: "0",
		},
		Report: ReportConfig{
			Title: "Mortgage Payoff Report",
		},
		Chart: ChartConfig{
			Height: 12,
		},
	}
}

// Resolve loads the config named by explicit, or the first of ./payoff.yaml
// and $XDG_CONFIG_HOME/payoff/config.yaml that exists. With no explicit path
// and no file found it returns Default().
func Resolve(explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicit, nil
	}
	for _, path := range []string{FileName, DefaultPath()} {
		cfg, err := Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	return Default(), "", nil
}

// DefaultPath returns the user-level config path.
func DefaultPath() string {
	return filepath.Join(xdgConfigHome(), "payoff", "config.yaml")
}

func xdgConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
