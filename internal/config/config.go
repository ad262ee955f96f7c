// =============================================================================
// Escheatment Mailing Preparation - Configuration Module
// =============================================================================
//
// Loads the application configuration from a YAML file, applies defaults
// and validates it. The configuration is loaded once at startup and passed
// into the pipeline entry point; there are no runtime-global settings.
//
// The letter code (mailing-template selection) may be given a default here
// and overridden per run with the --letter-code flag; the original
// interactive prompt is gone.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// OutputDir is where the output artifacts are written.
	// Empty means the directory of the input file.
	OutputDir string `yaml:"output_dir"`

	// ArchiveInputs moves the input file into InputArchiveDir after a
	// successful run.
	ArchiveInputs bool `yaml:"archive_inputs"`

	// InputArchiveDir is where processed input files are moved when
	// ArchiveInputs is set.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// StaticDataFile is the name of the full-record delimited output.
	// Default: "StaticData.dat"
	StaticDataFile string `yaml:"static_data_file"`

	// AddressDataFile is the name of the mailing-block delimited output.
	// Default: "AddressData.csv"
	AddressDataFile string `yaml:"address_data_file"`

	// CountsFile is the name of the per-category counts report.
	// Default: "COUNTS.txt"
	CountsFile string `yaml:"counts_file"`

	// WorkbookNameFormat is the name format for the revision workbook.
	// Placeholders: {stem} (input file name without extension),
	// {timestamp} (YYYYMMDD_HHMMSS), {uuid}.
	// Default: "{stem}_rev.xlsx"
	WorkbookNameFormat string `yaml:"workbook_name_format"`

	// WorkbookSheet is the sheet name in the revision workbook.
	// Default: "Records"
	WorkbookSheet string `yaml:"workbook_sheet"`

	// LetterCode is the default mailing-template code, one of
	// A, AC, FA, FC, R, RC. The --letter-code flag overrides it.
	LetterCode string `yaml:"letter_code"`
}

// Default returns the configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file. A missing file is not an
// error: the defaults apply, so the tool runs without any config file at
// all.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.InputArchiveDir == "" {
		cfg.InputArchiveDir = "./input_archive"
	}
	if cfg.StaticDataFile == "" {
		cfg.StaticDataFile = "StaticData.dat"
	}
	if cfg.AddressDataFile == "" {
		cfg.AddressDataFile = "AddressData.csv"
	}
	if cfg.CountsFile == "" {
		cfg.CountsFile = "COUNTS.txt"
	}
	if cfg.WorkbookNameFormat == "" {
		cfg.WorkbookNameFormat = "{stem}_rev.xlsx"
	}
	if cfg.WorkbookSheet == "" {
		cfg.WorkbookSheet = "Records"
	}
}

// validate rejects configuration values the pipeline cannot act on.
func validate(cfg *Config) error {
	if cfg.LetterCode != "" && !schema.ValidLetterCode(cfg.LetterCode) {
		return fmt.Errorf("letter_code %q is not one of %v", cfg.LetterCode, schema.LetterCodes)
	}
	return nil
}
