package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// FileName is the default configuration file name.
const FileName = "fintrack.yaml"

// Config represents the top-level fintrack.yaml configuration.
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Categories CategoriesConfig `yaml:"categories"`
	Charts     ChartsConfig     `yaml:"charts"`
	Log        LogConfig        `yaml:"log"`
}

// DataConfig locates the record table.
type DataConfig struct {
	Path string `yaml:"path"` // .csv or .xlsx
}

// CategoriesConfig names the income column and the category columns.
type CategoriesConfig struct {
	Income   string   `yaml:"income"`
	Expenses []string `yaml:"expenses"`
	Savings  []string `yaml:"savings"`
}

// ChartsConfig controls PNG chart output.
type ChartsConfig struct {
	OutputDir string `yaml:"output_dir"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Bins      int    `yaml:"bins"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a fintrack.yaml file from disk. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path if it exists and falls back to Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// CategorySet returns the configured categories.
func (c *Config) CategorySet() model.CategorySet {
	return model.CategorySet{
		Income:   c.Categories.Income,
		Expenses: c.Categories.Expenses,
		Savings:  c.Categories.Savings,
	}
}

// Validate checks the category set and chart settings.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return errors.New("data.path is not set")
	}
	if err := c.CategorySet().Validate(); err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("charts: size %dx%d must be positive", c.Charts.Width, c.Charts.Height)
	}
	if c.Charts.Bins <= 0 {
		return fmt.Errorf("charts: bins must be positive, got %d", c.Charts.Bins)
	}
	return nil
}

// Default returns a Config for the personal finance dataset layout.
// An empty dataPath selects DataPFT.csv.
func Default(dataPath string) *Config {
	if dataPath == "" {
		dataPath = "DataPFT.csv"
	}
	return &Config{
		Data: DataConfig{
			Path: dataPath,
		},
		Categories: CategoriesConfig{
			Income:   "Income",
			Expenses: DefaultExpenses(),
			Savings:  DefaultSavings(),
		},
		Charts: ChartsConfig{
			OutputDir: "charts",
			Width:     1200,
			Height:    600,
			Bins:      30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultExpenses returns the expense category columns in display order.
func DefaultExpenses() []string {
	return []string{
		"Rent",
		"Loan_Repayment",
		"Insurance",
		"Groceries",
		"Transport",
		"Eating_Out",
		"Entertainment",
		"Utilities",
		"Healthcare",
		"Education",
		"Miscellaneous",
	}
}

// DefaultSavings returns the potential-savings category columns in display order.
func DefaultSavings() []string {
	return []string{
		"Potential_Savings_Groceries",
		"Potential_Savings_Transport",
		"Potential_Savings_Eating_Out",
		"Potential_Savings_Entertainment",
		"Potential_Savings_Utilities",
		"Potential_Savings_Healthcare",
		"Potential_Savings_Education",
		"Potential_Savings_Miscellaneous",
	}
}
